package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env carries process-level settings; command flags still win over these.
type Env struct {
	ConfigPath string `env:"LANENAV_CONFIG" envDefault:"lanenav.yaml"`
	Verbose    bool   `env:"LANENAV_VERBOSE"`
	DraftDir   string `env:"LANENAV_DRAFT_DIR"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
