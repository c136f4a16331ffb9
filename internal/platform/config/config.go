package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	MetricsAddr string

	MongoURI      string
	MongoDatabase string

	RedisURL string

	JWTSigningKey string
	TokenTTL      time.Duration

	MapCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:          getEnv("TALENTMAP_ADDR", ":8080"),
		MetricsAddr:   getEnv("TALENTMAP_METRICS_ADDR", ":9090"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "talentmap"),
		RedisURL:      os.Getenv("REDIS_URL"),
		// Default for development - must be overridden in production.
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		TokenTTL:      getDuration("TOKEN_TTL_MINUTES", 60) * time.Minute,
		MapCacheTTL:   getDuration("MAP_CACHE_TTL_SECONDS", 30) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
