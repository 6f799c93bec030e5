// Package config loads runtime settings from the environment.
package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the blockfall binaries.
type Config struct {
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed     uint64 `env:"BLOCKFALL_SEED" envDefault:"0"`
	CellSize int    `env:"BLOCKFALL_CELL_SIZE" envDefault:"24"`
	DebugUI  bool   `env:"BLOCKFALL_DEBUG_UI" envDefault:"false"`
	TPS      int    `env:"BLOCKFALL_TPS" envDefault:"60"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a fresh one from crypto/rand
// when none is set.
func (c Config) ResolveSeed() (uint64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return NewSeed()
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
