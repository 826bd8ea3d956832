package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	}
}

func TestTokenBucket_ConsumesUntilEmpty(t *testing.T) {
	// Slow refill so the test window cannot replenish tokens.
	bucket := newTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.take(), "take %d", i)
	}
	assert.False(t, bucket.take())
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 1000) // effectively instant refill
	require.True(t, bucket.take())

	time.Sleep(5 * time.Millisecond)
	assert.True(t, bucket.take())
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(5, 0.001)
	remaining, reset := bucket.status()
	assert.Equal(t, 5, remaining)
	assert.False(t, reset.After(time.Now().Add(time.Second)))

	require.True(t, bucket.take())
	remaining, reset = bucket.status()
	assert.Equal(t, 4, remaining)
	assert.True(t, reset.After(time.Now()))
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// /synthesize allows a burst of 5.
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/synthesize", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 20, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/synthesize", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 20, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		limiter.Allow("10.0.0.1", "/synthesize", "POST")
	}
	allowed, _ := limiter.Allow("10.0.0.1", "/synthesize", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/synthesize", "POST")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/synthesize", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_UnmatchedPathFallsBackToDefault(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 2
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/rubric", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
}

func TestMatchRule(t *testing.T) {
	rules := []Rule{
		{Path: "/score", Method: "POST", Limit: 60},
		{Path: "/admin/", Method: "GET", Limit: 5},
	}

	exact := matchRule("/score", "POST", rules)
	require.NotNil(t, exact)
	assert.Equal(t, 60, exact.Limit)

	assert.Nil(t, matchRule("/score", "GET", rules))

	prefix := matchRule("/admin/settings", "GET", rules)
	require.NotNil(t, prefix)
	assert.Equal(t, 5, prefix.Limit)

	assert.Nil(t, matchRule("/unknown", "POST", rules))
}

func TestDefaultRules_CoverExpensiveEndpoints(t *testing.T) {
	rules := DefaultRules()

	byPath := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		byPath[rule.Path+" "+rule.Method] = rule
	}

	score, ok := byPath["/score POST"]
	require.True(t, ok)
	assert.Equal(t, 60, score.Limit)

	synth, ok := byPath["/synthesize POST"]
	require.True(t, ok)
	assert.Equal(t, 20, synth.Limit)
	assert.Less(t, synth.Limit, score.Limit)

	for _, path := range []string{"/auth/register POST", "/auth/login POST", "/auth/password PUT"} {
		_, ok := byPath[path]
		assert.True(t, ok, "missing rule for %s", path)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_CLEANUP_INTERVAL", "1m")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.Equal(t, time.Minute, cfg.CleanupInterval)
	assert.NotEmpty(t, cfg.Rules)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLimiter_EvictStale(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/score", "POST")
	key := "10.0.0.1:/score:POST"

	limiter.accessMu.Lock()
	limiter.lastAccess[key] = time.Now().Add(-2 * time.Hour)
	limiter.accessMu.Unlock()

	limiter.evictStale()

	limiter.mu.RLock()
	_, exists := limiter.buckets[key]
	limiter.mu.RUnlock()
	assert.False(t, exists)
}

func TestLimiter_ConcurrentAccessIsSafe(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			client := fmt.Sprintf("10.0.0.%d", g)
			for i := 0; i < 50; i++ {
				limiter.Allow(client, "/score", "POST")
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
