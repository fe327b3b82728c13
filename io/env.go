package io

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Env holds settings which may be overridden from the environment.
type Env struct {
	LogLevel string `env:"STEFFEN_LOG_LEVEL" envDefault:"info"`
	// Threads overrides the config file's Threads value when positive.
	Threads int `env:"STEFFEN_THREADS" envDefault:"0"`
}

// ReadEnv reads Env from environment variables.
func ReadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Apply overrides values in con which were set in the environment.
func (e *Env) Apply(con *InterpolateConfig) {
	if e.Threads > 0 {
		con.Threads = e.Threads
	}
}
