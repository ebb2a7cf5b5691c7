package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Server captures the demo shell's process-level configuration. Plugin
// configuration arrives per initialize call; this only covers the server
// around it.
type Server struct {
	Env  string
	Addr string

	// RedisURL enables the durable token-cache store when set; empty keeps
	// the session-scoped in-memory store.
	RedisURL      string
	CacheTTL      time.Duration
	ProviderDebug bool
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file is honored when present.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Env:           env("AUTHBRIDGE_ENV", "dev"),
		Addr:          env("AUTHBRIDGE_ADDR", ":8080"),
		RedisURL:      env("AUTHBRIDGE_REDIS_URL", ""),
		CacheTTL:      duration("AUTHBRIDGE_CACHE_TTL", 0),
		ProviderDebug: env("AUTHBRIDGE_PROVIDER_DEBUG", "") == "true",
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
