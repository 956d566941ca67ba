package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Width     uint32
	Height    uint32
	Pattern   string
	RNG       int64
	Templates string

	Scale       int
	TPS         int
	Steps       int
	Interactive bool
	Color       bool

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     life.DefaultWidth,
		Height:    life.DefaultHeight,
		Pattern:   "default",
		RNG:       42,
		Scale:     8,
		TPS:       15,
		Steps:     100,
		Color:     true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.UInt32(&c.Width, "x", "width", "Width of the grid in cells")
	p.UInt32(&c.Height, "y", "height", "Height of the grid in cells")
	p.String(&c.Pattern, "p", "pattern", "Initial pattern ["+strings.Join(core.SeederNames(), "|")+"]")
	p.Int64(&c.RNG, "r", "rng", "Seed for the random and sparse patterns")
	p.String(&c.Templates, "t", "templates", "YAML file with extra named patterns")
	p.Int(&c.Scale, "s", "scale", "Pixel scale multiplier (GUI)")
	p.Int(&c.TPS, "", "tps", "Generations per second")
	p.Int(&c.Steps, "n", "steps", "Generations to run in batch mode, 0 runs until interrupted")
	p.Bool(&c.Interactive, "i", "interactive", "Start the interactive terminal view")
	p.Bool(&c.Color, "c", "color", "Colourise terminal output")
	p.String(&c.LogLevel, "", "log-level", "Log level [debug|info|warn|error]")
	p.String(&c.LogFormat, "", "log-format", "Log format [text|json]")
}

// Validate reports configuration values no host can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	}
	if c.Pattern == "" {
		errs = append(errs, errors.New("pattern must not be empty"))
	} else if _, ok := core.Seeders()[c.Pattern]; !ok {
		errs = append(errs, fmt.Errorf("unknown pattern %q", c.Pattern))
	}
	return errors.Join(errs...)
}

// SimConfig converts the host flags into the key/value form accepted by
// registered simulation factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":    strconv.FormatUint(uint64(c.Width), 10),
		"h":    strconv.FormatUint(uint64(c.Height), 10),
		"seed": c.Pattern,
		"rng":  strconv.FormatInt(c.RNG, 10),
	}
}

// NewSim builds the life simulation described by c.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()["life"]
	if !ok {
		return nil, errors.New("life simulation is not registered")
	}
	return factory(c.SimConfig()), nil
}

// Seeder resolves the configured pattern, for hosts that reseed at runtime.
func (c *Config) Seeder() core.Seeder {
	return life.FromMap(c.SimConfig()).Seeder()
}

// WindowSize returns the window dimensions in pixels for a grid of size
// cells. A zero-sized axis still gets one cell of space.
func (c *Config) WindowSize(size core.Size) (int, int) {
	return max(size.W, 1) * c.Scale, max(size.H, 1) * c.Scale
}
