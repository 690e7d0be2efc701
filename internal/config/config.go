// Package config centralizes runtime configuration. It is parsed once in
// main and handed to constructors; business logic never reads the
// environment directly.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is the fallback signing secret used when JWT_SECRET is
// unset. It is public knowledge and only acceptable for local development.
const DefaultJWTSecret = "taskdeck-insecure-dev-secret"

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"1m"`
	ReminderLead     time.Duration `env:"REMINDER_LEAD" envDefault:"24h"`
	DiscordWebhook   string        `env:"DISCORD_WEBHOOK"`
	SlackWebhook     string        `env:"SLACK_WEBHOOK"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		log.Println("WARNING: JWT_SECRET is not set, using the built-in development secret. Do not deploy like this.")
	}

	return cfg, nil
}
