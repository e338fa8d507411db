// Package app builds a stage from tool configuration and describes it.
package app

import (
	"context"
	"fmt"
	"io"

	"lifestage/internal/ctxlog"
	"lifestage/pkg/core"
	"lifestage/pkg/stage"
)

// Build constructs the stage described by cfg. The initial cells are drawn
// from cfg.Seed and cfg.Density.
func Build(ctx context.Context, cfg *Config) (*stage.Data, error) {
	log := ctxlog.FromContext(ctx)

	goal, err := cfg.GoalValue()
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	log.Debug("building stage",
		"width", cfg.Width, "height", cfg.Height, "goal", goal,
		"last_gen", cfg.LastGen, "seed", cfg.Seed, "density", cfg.Density)

	cells := core.RandomCells(cfg.Seed, cfg.Width*cfg.Height, cfg.Density)
	d, err := stage.New(cfg.Width, cfg.Height, goal.Int(), cfg.LastGen, cells)
	if err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}
	log.Info("stage built", "size", d.Size(), "goal", d.Goal(), "alive", d.Grid().Count(true))
	return d, nil
}

// Describe writes the stage parameters followed by the grid.
func Describe(w io.Writer, d *stage.Data) error {
	for _, g := range d.Parameters().Groups {
		if _, err := fmt.Fprintf(w, "%s\n", g.Name); err != nil {
			return err
		}
		for _, p := range g.Params {
			if _, err := fmt.Fprintf(w, "  %-16s %s\n", p.Label, p.Value); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "Goal: %s\n\n", d.Goal().Description()); err != nil {
		return err
	}
	_, err := io.WriteString(w, d.Grid().String())
	return err
}

// Run builds the configured stage and describes it to w.
func Run(ctx context.Context, cfg *Config, w io.Writer) error {
	d, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	return Describe(w, d)
}
