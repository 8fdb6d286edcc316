package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radebe49/studywbuddy/internal/config"
	"github.com/radebe49/studywbuddy/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveCatalog string
	serveUploads string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for exam upload, analysis, and progress tracking.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a taxonomy catalog JSON file (default: built-in)")
	serveCmd.Flags().StringVar(&serveUploads, "uploads", "", "Directory for uploaded exam files (default: system temp)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfig != "" {
		fileCfg, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		fileCfg.MergeEnv()
		cfg = fileCfg
	}

	// Flags override both file and environment.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveCatalog != "" {
		cfg.CatalogPath = serveCatalog
	}
	if serveUploads != "" {
		cfg.UploadDir = serveUploads
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		GeminiAPIKey: cfg.GeminiAPIKey,
		CatalogPath:  cfg.CatalogPath,
		UploadDir:    cfg.UploadDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
