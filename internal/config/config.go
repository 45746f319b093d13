package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App captures all tunable parameters for the admin client. Values come
// from the environment (optionally seeded from a .env file) with defaults
// that let the binary run against a local backend without setup.
type App struct {
	// Backend
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:5000/api/admin"`

	// Token storage: file under the user config dir unless Redis is configured.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	TokenKey      string `envconfig:"TOKEN_KEY" default:"userToken"`

	// Export
	ExportDir string `envconfig:"EXPORT_DIR"`

	// Observability
	MetricsAddr string `envconfig:"METRICS_ADDR"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env if present, then the process environment.
func Load() (App, error) {
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.APIBaseURL == "" {
		return c, fmt.Errorf("API_BASE_URL must not be empty")
	}
	return c, nil
}
