package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/caarlos0/env/v11"

	"lifestage/pkg/stage"
)

// Config represents the parameters of the stageinfo tool. Environment
// variables supply defaults and command-line flags override them.
type Config struct {
	Width    int     `env:"LIFESTAGE_WIDTH" envDefault:"8"`
	Height   int     `env:"LIFESTAGE_HEIGHT" envDefault:"8"`
	Goal     string  `env:"LIFESTAGE_GOAL" envDefault:"MORE"`
	LastGen  int     `env:"LIFESTAGE_LAST_GEN" envDefault:"10"`
	Seed     int64   `env:"LIFESTAGE_SEED" envDefault:"42"`
	Density  float64 `env:"LIFESTAGE_DENSITY" envDefault:"0.3"`
	LogLevel string  `env:"LIFESTAGE_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.StringVar(&c.Goal, "goal", c.Goal, "goal as a number (1-8) or name (MORE, LESS, ...)")
	fs.IntVar(&c.LastGen, "last-gen", c.LastGen, "generation at which the stage ends")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells in [0, 1]")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// LoadConfig reads the environment, then parses args with fs.
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	c := &Config{}
	if err := ParseEnv(c); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if c.Density < 0 || c.Density > 1 {
		return nil, fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	return c, nil
}

// GoalValue resolves the configured goal, accepting either its number or name.
func (c *Config) GoalValue() (stage.Goal, error) {
	if n, err := strconv.Atoi(c.Goal); err == nil {
		return stage.NewGoal(n)
	}
	return stage.ParseGoal(c.Goal)
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
