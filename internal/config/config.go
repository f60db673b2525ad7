package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client-side settings for talking to the AlpenLuce API.
// Values are read from the environment; a local .env file is honoured when
// present so development setups don't have to export anything.
type Config struct {
	AppName     string        `env:"APP_NAME" envDefault:"AlpenLuce"`
	BaseURL     string        `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
	SessionFile string        `env:"SESSION_FILE" envDefault:"alpenluce-auth.json"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	Env         string        `env:"ENV" envDefault:"development"`
}

// New loads configuration from the environment. A missing .env file is not
// an error.
func New() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
