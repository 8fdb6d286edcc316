package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radebe49/studywbuddy/internal/taxonomy"
)

var (
	classifyCatalog string
	classifySpec    string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [subject]...",
	Short: "Classify subject strings into the exam taxonomy",
	Long:  `Classify one or more free-text subject strings into the Industriemeister taxonomy and print the resulting coordinates as JSON lines.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyCatalog, "catalog", "", "Path to a taxonomy catalog JSON file (default: built-in)")
	classifyCmd.Flags().StringVar(&classifySpec, "spec", "None", "Specialization to filter against")
	rootCmd.AddCommand(classifyCmd)
}

type classifyResult struct {
	Input      string              `json:"input"`
	Coordinate taxonomy.Coordinate `json:"coordinate"`
	Rule       string              `json:"rule,omitempty"`
	Included   bool                `json:"included"`
}

func runClassify(_ *cobra.Command, args []string) error {
	catalog := taxonomy.DefaultCatalog()
	if classifyCatalog != "" {
		var err error
		catalog, err = taxonomy.LoadCatalog(classifyCatalog)
		if err != nil {
			return err
		}
	}
	classifier := taxonomy.NewClassifier(catalog, nil)
	spec := taxonomy.ParseSpecialization(classifySpec)

	enc := json.NewEncoder(os.Stdout)
	for _, input := range args {
		coord, rule := classifier.Explain(input)
		result := classifyResult{
			Input:      input,
			Coordinate: coord,
			Rule:       rule,
			Included:   taxonomy.ShouldInclude(coord, input, spec),
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}
