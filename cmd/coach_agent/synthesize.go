package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/synthesis"
	"github.com/jonathan/interview-coach/internal/types"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize core stories from an answer bank",
	Long:  "Deterministically selects the strongest answers per theme, composes 3-4 STAR core stories, and renders persona variants, producing a SynthesisOutput JSON.",
	RunE:  runSynthesize,
}

var (
	synthAnswers   string
	synthThemes    string
	synthPersona   string
	synthMin       int
	synthMax       int
	synthEmbellish bool
	synthOutput    string
	synthVerbose   bool
)

func init() {
	synthesizeCmd.Flags().StringVarP(&synthAnswers, "answers", "a", "", "Path to input AnswerBank JSON file (required)")
	synthesizeCmd.Flags().StringVarP(&synthThemes, "themes", "t", "", "Comma-separated target themes (required)")
	synthesizeCmd.Flags().StringVarP(&synthPersona, "persona", "p", "hiring-manager", "Persona to emphasize in the rationale")
	synthesizeCmd.Flags().IntVar(&synthMin, "min-stories", 0, "Minimum number of stories (default 3)")
	synthesizeCmd.Flags().IntVar(&synthMax, "max-stories", 0, "Maximum number of stories (default 4)")
	synthesizeCmd.Flags().BoolVar(&synthEmbellish, "embellish", false, "Polish variant prose with the LLM (requires GEMINI_API_KEY)")
	synthesizeCmd.Flags().StringVarP(&synthOutput, "out", "o", "", "Path to output SynthesisOutput JSON file (required)")
	synthesizeCmd.Flags().BoolVarP(&synthVerbose, "verbose", "v", false, "Print formatted story and coverage summaries")

	if err := synthesizeCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("themes"); err != nil {
		panic(fmt.Sprintf("failed to mark themes flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(_ *cobra.Command, _ []string) error {
	persona := types.Persona(synthPersona)
	if !persona.IsValid() {
		return fmt.Errorf("unknown persona %q (expected recruiter, hiring-manager, or peer)", synthPersona)
	}

	answersContent, err := os.ReadFile(synthAnswers)
	if err != nil {
		return fmt.Errorf("failed to read answers file %s: %w", synthAnswers, err)
	}

	var bank types.AnswerBank
	if err := json.Unmarshal(answersContent, &bank); err != nil {
		return fmt.Errorf("failed to unmarshal answer bank JSON: %w", err)
	}

	themes := splitThemes(synthThemes)
	if len(themes) == 0 {
		return fmt.Errorf("no themes given")
	}

	output, err := synthesis.Synthesize(types.SynthesisInput{
		Answers:    bank.Answers,
		Themes:     themes,
		Persona:    persona,
		MinStories: synthMin,
		MaxStories: synthMax,
	})
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	if synthEmbellish {
		if err := embellishOutput(output); err != nil {
			// Embellishment is best-effort; the templated variants stand.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: embellishment skipped: %v\n", err)
		}
	}

	jsonOutput, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal synthesis output to JSON: %w", err)
	}

	if err := writeOutputFile(synthOutput, jsonOutput); err != nil {
		return err
	}

	validateAgainstSchema("schemas/core_stories.schema.json", synthOutput)

	if synthVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintStorySet(output)
		printer.PrintCoverage(output.CoverageMap)
		printer.PrintRationale(output.Rationale)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Synthesized %d core stories to %s\n", len(output.CoreStories), synthOutput)
	return nil
}

// embellishOutput runs the LLM polishing pass over the synthesized stories.
func embellishOutput(output *types.SynthesisOutput) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	embellisher := llm.NewGeminiEmbellisher(client)
	output.CoreStories = synthesis.EmbellishStories(ctx, embellisher, output.CoreStories)
	return nil
}

func splitThemes(raw string) []string {
	var themes []string
	for _, theme := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(theme); trimmed != "" {
			themes = append(themes, trimmed)
		}
	}
	return themes
}
