package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radebe49/studywbuddy/internal/ingestion"
	"github.com/radebe49/studywbuddy/internal/llm"
	"github.com/radebe49/studywbuddy/internal/observability"
	"github.com/radebe49/studywbuddy/internal/pipeline"
)

var analyzeVerbose bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local exam file and print the study plan",
	Long:  `Extract text from a local exam file (pdf, txt, or html), run the Gemini analysis, and print the generated study plan as markdown. Nothing is persisted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print an analysis summary before the plan")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return fmt.Errorf("text extraction failed: %w", err)
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.GenerateJSON(ctx, llm.BuildAnalysisPrompt(text), llm.TierStandard)
	if err != nil {
		return fmt.Errorf("exam analysis failed: %w", err)
	}

	analysis, err := llm.ParseExamAnalysis(response)
	if err != nil {
		return err
	}
	if err := analysis.Validate(); err != nil {
		return err
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(analysis)
	}

	fmt.Println(pipeline.BuildMarkdownPlan(analysis))
	return nil
}
