// Package config loads engine configuration from the environment. A
// .env file in the working directory is honored when present.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the tunable settings of the judge engine.
type Config struct {
	DatabasePath string `env:"WOLFJUDGE_DB_PATH" envDefault:"data/wolfjudge.db"`
	HistorySize  int    `env:"WOLFJUDGE_HISTORY_SIZE" envDefault:"20"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
