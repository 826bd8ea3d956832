package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server settings read from the environment.
type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// NewServerConfig builds a server configuration from environment variables:
// PORT (default 8080) and CORS_ALLOWED_ORIGINS (comma-separated, default "*").
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		if len(origins) == 0 {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS is set but contains no origins")
		}
	}

	return &ServerConfig{
		Port:            port,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  origins,
	}, nil
}

// Addr returns the listen address for the configured port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
