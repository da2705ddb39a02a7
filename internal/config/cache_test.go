package config

import (
    "testing"
    "time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
    t.Setenv("CACHE_ENABLED", "")
    t.Setenv("CACHE_TTL", "")
    t.Setenv("CACHE_PREFIX", "")
    t.Setenv("CACHE_MAX_BODY_BYTES", "")

    cfg := LoadCacheConfig()

    if !cfg.Enabled {
        t.Error("cache should be enabled by default")
    }
    if cfg.TTL != 30*time.Second {
        t.Errorf("TTL = %v, want 30s", cfg.TTL)
    }
    if cfg.Prefix != "report" {
        t.Errorf("Prefix = %q, want report", cfg.Prefix)
    }
    if cfg.MaxBodyBytes != defaultMaxBodyBytes {
        t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, defaultMaxBodyBytes)
    }
}

func TestLoadCacheConfigMaxBodyBytes(t *testing.T) {
    tests := []struct {
        name  string
        value string
        want  int
    }{
        {"explicit value", "4096", 4096},
        {"malformed value keeps the cap", "lots", defaultMaxBodyBytes},
        {"zero keeps the cap", "0", defaultMaxBodyBytes},
        {"negative keeps the cap", "-1", defaultMaxBodyBytes},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            t.Setenv("CACHE_MAX_BODY_BYTES", tt.value)
            if got := LoadCacheConfig().MaxBodyBytes; got != tt.want {
                t.Errorf("MaxBodyBytes = %d, want %d", got, tt.want)
            }
        })
    }
}

func TestLoadCacheConfigMalformedTTL(t *testing.T) {
    t.Setenv("CACHE_TTL", "soon")
    if got := LoadCacheConfig().TTL; got != 30*time.Second {
        t.Errorf("TTL = %v, want 30s fallback", got)
    }
}
