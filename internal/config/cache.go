package config

import (
    "os"
    "strconv"
    "time"
)

// defaultMaxBodyBytes caps cacheable response bodies at 1 MiB.
const defaultMaxBodyBytes = 1 << 20

// CacheConfig controls the report response cache. With Enabled false, or no
// Redis client available, caching is a passthrough.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from the environment with defaults
// suited to a dashboard that tolerates slightly stale numbers.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:       getenv("CACHE_PREFIX", "report"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", ""), defaultMaxBodyBytes),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return 30 * time.Second
    }
    return d
}

// atoi falls back to def on malformed or non-positive values so a typo in
// the environment cannot silently disable the body-size cap.
func atoi(s string, def int) int {
    n, err := strconv.Atoi(s)
    if err != nil || n <= 0 {
        return def
    }
    return n
}
