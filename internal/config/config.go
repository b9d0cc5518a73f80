package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the application configuration, loaded from environment
// variables. A .env file is honored when present so local development
// matches the container setup.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"3000"`

	// DatabaseURL is the portfolios Postgres DSN. Empty leaves the
	// server running without persistence (best-effort mode).
	DatabaseURL string `env:"DATABASE_URL"`

	// RedisURL enables the generated-site cache when set.
	RedisURL string `env:"REDIS_URL"`

	// ChromePath overrides the Chrome binary used for thumbnail
	// snapshots.
	ChromePath string `env:"CHROME_PATH"`

	// IsDev loosens logging formatting in development.
	IsDev bool `env:"DEV" envDefault:"false"`

	Deploy DeployConfig `envPrefix:"DEPLOY_"`
}

// DeployConfig configures the deployment collaborator client.
type DeployConfig struct {
	// BaseURL of the hosting provider API.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.vercel.com"`

	// Token authenticates API calls. Empty disables deployment.
	Token string `env:"TOKEN"`

	// TeamID scopes requests to a provider team when set.
	TeamID string `env:"TEAM_ID"`

	Timeout    time.Duration `env:"TIMEOUT" envDefault:"60s"`
	RetryLimit int           `env:"RETRY_LIMIT" envDefault:"2"`
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	if c.Port == "" {
		c.Port = "3000"
	}
	if c.Deploy.Timeout <= 0 {
		c.Deploy.Timeout = 60 * time.Second
	}
	if c.Deploy.RetryLimit < 0 {
		c.Deploy.RetryLimit = 0
	}
}

// Load reads configuration from the environment, honoring a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.Sanitize()
	return cfg, nil
}
