package config

import (
	"strconv"
	"time"
)

// CacheConfig defines settings for the response cache middleware that
// fronts the read-only overview and statistics endpoints.  When Enabled
// is false or no Redis client is configured, caching is disabled.
type CacheConfig struct {
	Enabled      bool          // master switch
	TTL          time.Duration // lifetime of cache entries
	Prefix       string        // key namespace inside Redis
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads the CACHE_* environment variables, applying
// defaults when unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", ""), 1<<20),
	}
}

// atoi falls back to def on a malformed value.  A zero byte limit would
// silently stop every response from being cached.
func atoi(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
