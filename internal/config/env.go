package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can come from the environment. Command line
// flags win over these.
type Env struct {
	DB         string `env:"BRICKBREAKER_DB"`
	Config     string `env:"BRICKBREAKER_CONFIG"`
	LogLevel   string `env:"BRICKBREAKER_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"BRICKBREAKER_LOG_FILE"`
	Sound      bool   `env:"BRICKBREAKER_SOUND"`
	Difficulty string `env:"BRICKBREAKER_DIFFICULTY"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
