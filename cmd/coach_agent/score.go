package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one answer under an interviewer persona",
	Long:  "Deterministically scores an answer against the rubric: per-dimension scores, red-flag penalties, and ceiling rules, producing a ScoreResult JSON.",
	RunE:  runScore,
}

var (
	scoreAnswer  string
	scorePersona string
	scoreConfig  string
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswer, "answer", "a", "", "Path to input AnswerItem JSON file (required)")
	scoreCmd.Flags().StringVarP(&scorePersona, "persona", "p", "hiring-manager", "Interviewer persona: recruiter, hiring-manager, or peer")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to rubric config overlay JSON (default: built-in rubric)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreResult JSON file (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted evaluation summary")

	if err := scoreCmd.MarkFlagRequired("answer"); err != nil {
		panic(fmt.Sprintf("failed to mark answer flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	persona := types.Persona(scorePersona)
	if !persona.IsValid() {
		return fmt.Errorf("unknown persona %q (expected recruiter, hiring-manager, or peer)", scorePersona)
	}

	answerContent, err := os.ReadFile(scoreAnswer)
	if err != nil {
		return fmt.Errorf("failed to read answer file %s: %w", scoreAnswer, err)
	}

	var answer types.AnswerItem
	if err := json.Unmarshal(answerContent, &answer); err != nil {
		return fmt.Errorf("failed to unmarshal answer JSON: %w", err)
	}

	cfg := rubric.Default()
	if scoreConfig != "" {
		cfg, err = rubric.Load(scoreConfig)
		if err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid built-in rubric: %w", err)
	}

	result := scoring.Score(scoring.Context{
		Answer:  answer,
		Persona: persona,
		Config:  cfg,
	})

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score result to JSON: %w", err)
	}

	if err := writeOutputFile(scoreOutput, jsonOutput); err != nil {
		return err
	}

	// Output validation is a safety check, not a requirement.
	validateAgainstSchema("schemas/score_result.schema.json", scoreOutput)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreResult(&result, persona)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored answer %s: %d/100 (%s)\n", answer.ID, result.Overall, scoreOutput)
	return nil
}

// writeOutputFile writes JSON output, creating the parent directory if needed.
func writeOutputFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateAgainstSchema validates an output file against a schema when the
// schema can be found; failures warn and never fail the command.
func validateAgainstSchema(schemaRelPath, outputPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
