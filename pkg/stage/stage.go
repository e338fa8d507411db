// Package stage holds the per-level configuration and play progress of a
// puzzle stage.
//
// A Data value fixes its dimensions, goal and last generation when it is
// built; only the grid cells and the Moves and Gen counters change after
// that. Nothing here advances Gen or stops play at LastGen: the stepping and
// input components own those decisions. Data is not safe for concurrent
// writes.
package stage

import (
	"strconv"

	"lifestage/pkg/core"
)

// Data describes one stage and the progress made on it.
type Data struct {
	goal    Goal
	lastGen int
	grid    *core.Grid

	// Moves counts player actions. The input handler increments it.
	Moves int
	// Gen is the current generation. The stepping component increments it.
	Gen int
}

// New builds a stage from level data. goal must be a valid Goal value and
// cells must hold exactly width*height entries.
func New(width, height, goal, lastGen int, cells []bool) (*Data, error) {
	g, err := NewGoal(goal)
	if err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(width, height, cells)
	if err != nil {
		return nil, err
	}
	return &Data{
		goal:    g,
		lastGen: lastGen,
		grid:    grid,
	}, nil
}

// Width returns the number of grid columns.
func (d *Data) Width() int { return d.grid.Width() }

// Height returns the number of grid rows.
func (d *Data) Height() int { return d.grid.Height() }

// Size returns the grid dimensions.
func (d *Data) Size() core.Size { return d.grid.Size() }

// Goal returns the stage's win condition.
func (d *Data) Goal() Goal { return d.goal }

// LastGen returns the generation at which the stage ends.
func (d *Data) LastGen() int { return d.lastGen }

// Grid returns the stage's playing field. Cells may be changed through it;
// the grid itself cannot be replaced.
func (d *Data) Grid() *core.Grid { return d.grid }

// Parameters snapshots the stage for diagnostics.
func (d *Data) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Stage",
				Params: []core.Parameter{
					intParam("w", "Width", d.Width()),
					intParam("h", "Height", d.Height()),
					{Key: "goal", Label: "Goal", Type: core.ParamTypeString, Value: d.goal.String()},
					intParam("last_gen", "Last generation", d.lastGen),
				},
			},
			{
				Name: "Progress",
				Params: []core.Parameter{
					intParam("moves", "Moves", d.Moves),
					intParam("gen", "Generation", d.Gen),
					intParam("alive", "Live cells", d.grid.Count(true)),
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
