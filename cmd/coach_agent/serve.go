package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, synthesis, and evaluation history endpoints.`,
	RunE:  runServe,
}

var (
	servePort   int
	serveConfig string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: PORT env or 8080)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to rubric config overlay JSON (default: built-in rubric)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	serverCfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	port := serverCfg.Port
	if servePort > 0 {
		port = servePort
	}

	var rubricCfg *rubric.Config
	if serveConfig != "" {
		rubricCfg, err = rubric.Load(serveConfig)
		if err != nil {
			return err
		}
	}

	cfg := server.Config{
		Port:           port,
		DatabaseURL:    databaseURL,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"), // optional
		AllowedOrigins: serverCfg.AllowedOrigins,
		RubricConfig:   rubricCfg,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
