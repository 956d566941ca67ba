package life

import (
	"strconv"

	"lifegrid/pkg/core"
)

// Config controls the dimensions and initial pattern of a Universe.
type Config struct {
	Width  uint32
	Height uint32
	// Seed names a registered seeder.
	Seed string
	// RNG seeds the "random" and "sparse" patterns.
	RNG int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Seed: "default", RNG: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Height = uint32(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok && v != "" {
		c.Seed = v
	}
	if v, ok := cfg["rng"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RNG = parsed
		}
	}
	return c
}

// Seeder resolves the configured pattern. Unknown names fall back to
// DefaultSeed.
func (c Config) Seeder() Seeder {
	switch c.Seed {
	case "random":
		return Random(c.RNG)
	case "sparse":
		return Sparse(c.RNG, 5)
	}
	if s, ok := core.Seeders()[c.Seed]; ok {
		return s
	}
	return DefaultSeed
}

// NewWithConfig constructs a Universe from cfg.
func NewWithConfig(cfg Config) *Universe {
	return New(cfg.Width, cfg.Height, cfg.Seeder())
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
