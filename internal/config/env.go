package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides for command-line defaults.
// Flags given explicitly on the command line still win.
type Env struct {
	DBPath     string `env:"SCRATCHCAT_DB" envDefault:"~/.scratchcat/scores.db"`
	FPS        int    `env:"SCRATCHCAT_FPS" envDefault:"60"`
	Difficulty string `env:"SCRATCHCAT_DIFFICULTY" envDefault:"normal"`
	ArtDir     string `env:"SCRATCHCAT_ART_DIR"`
	LogLevel   string `env:"SCRATCHCAT_LOG_LEVEL" envDefault:"info"`
	SSHAddr    string `env:"SCRATCHCAT_SSH_ADDR" envDefault:":23234"`
}

// LoadEnv parses the SCRATCHCAT_* environment variables.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return e, nil
}
