package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/schemas"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a rubric config overlay file",
	Long:  "Checks a rubric config overlay against the JSON schema and the semantic rules: dimension weights, persona weights, red-flag penalty bounds.",
	RunE:  runValidateConfig,
}

var validateConfigPath string

func init() {
	validateConfigCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to rubric config JSON file (required)")

	if err := validateConfigCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(_ *cobra.Command, _ []string) error {
	// Schema first for field-level messages, then the semantic rules.
	if schemaPath := schemas.ResolveSchemaPath("schemas/rubric_config.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, validateConfigPath); err != nil {
			return fmt.Errorf("schema validation failed: %w", err)
		}
	}

	cfg, err := rubric.Load(validateConfigPath)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Config %s is valid (version %s, %d dimensions, %d red flags)\n",
		validateConfigPath, cfg.Version, len(cfg.Dimensions), len(cfg.RedFlags))
	return nil
}
