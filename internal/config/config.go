package config

import (
	"os"
	"strings"
)

// Config holds environment-driven settings for the dashboard service
type Config struct {
	Port           string
	APIBasePath    string   // path prefix the edge proxy rewrites, default "/api"
	UpstreamOrigin string   // origin of the TMS REST API, e.g. http://localhost:8000
	CORSOrigins    []string
	ReleaseMode    bool // GIN_MODE=release; controls the Secure cookie flag
}

// Load reads configuration from environment variables with development defaults
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		APIBasePath:    getEnv("API_BASE_URL", "/api"),
		UpstreamOrigin: getEnv("UPSTREAM_ORIGIN", "http://localhost:8000"),
		ReleaseMode:    os.Getenv("GIN_MODE") == "release",
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
