package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if MUDRA_CONFIG is set
//  3. env (prefix MUDRA_)
func Load() (*Config, error) {
	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MUDRA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MUDRA_ADDR, MUDRA_TICK_RATE, ...
	// Keys keep their underscores so MUDRA_TICK_RATE maps to tick_rate,
	// matching the koanf tags on the struct.
	envProvider := env.Provider("MUDRA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mudra_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal over a copy of the defaults so unset keys keep their values
	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.IdleFPS <= 0 || cfg.ActiveFPS <= 0 {
		return nil, errors.New("idle_fps and active_fps must be positive")
	}
	if cfg.TickRate <= 0 {
		return nil, errors.New("tick_rate must be positive")
	}
	return &cfg, nil
}
