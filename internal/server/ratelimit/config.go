package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a per-endpoint rate limit. Paths ending in "/" match by prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// LoadConfig reads limiter settings from the environment:
// RATE_LIMIT_ENABLED (default true), RATE_LIMIT_DEFAULT_LIMIT (default 600
// per minute), RATE_LIMIT_DEFAULT_WINDOW, RATE_LIMIT_CLEANUP_INTERVAL.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the built-in per-endpoint limits. Scoring and
// synthesis are the expensive operations; auth endpoints are limited to slow
// down credential stuffing.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/synthesize", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/password", Method: "PUT", Limit: 10, Window: time.Minute, Burst: 3},
	}
}

// matchRule finds the rule for a path and method, exact match before prefix.
// The health endpoint is always unlimited.
func matchRule(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == "GET" {
		return &Rule{Limit: 0}
	}

	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}
	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
