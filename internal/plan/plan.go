// Package plan turns a goal map into the ordered list of creation actions
// needed to reproduce it. Every remote call is deferred behind the Creator
// interface, so a plan can be listed, executed, or tested in isolation.
package plan

import (
	"context"
	"fmt"

	"github.com/vk/stargridgo/internal/grid"
)

// Action is one pending creation call. Label names the object and its
// coordinates for logs and dry runs; Run performs the call when invoked.
type Action struct {
	Label string
	Run   func(ctx context.Context) error
}

// Build derives the grid dimensions from the goal matrix and translates every
// non-empty cell into an Action, in row-major order. The first unrecognized
// token aborts the build. Cells in ragged rows that fall outside the grid
// derived from the first row are skipped.
func Build(goal [][]string, svc Creator) (grid.Grid, []Action, error) {
	g, err := grid.New(len(goal), widthOf(goal))
	if err != nil {
		return grid.Grid{}, nil, fmt.Errorf("invalid goal map: %w", err)
	}

	var actions []Action
	for r, row := range goal {
		for c, token := range row {
			cell, err := grid.ParseToken(token)
			if err != nil {
				return grid.Grid{}, nil, fmt.Errorf("goal cell (%d,%d): %w", r, c, err)
			}
			if cell.Kind == grid.Empty {
				continue
			}
			at := grid.Point{Row: r, Column: c}
			if !g.Contains(at) {
				continue
			}
			actions = append(actions, newAction(svc, at, cell))
		}
	}
	return g, actions, nil
}

// Labels lists the action labels in execution order, for dry runs and logs.
func Labels(actions []Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	return labels
}

func newAction(svc Creator, at grid.Point, cell grid.Cell) Action {
	var run func(ctx context.Context) error
	switch cell.Kind {
	case grid.Polyanet:
		run = func(ctx context.Context) error { return svc.CreatePolyanet(ctx, at) }
	case grid.Soloon:
		color := cell.Color
		run = func(ctx context.Context) error { return svc.CreateSoloon(ctx, at, color) }
	case grid.Cometh:
		direction := cell.Direction
		run = func(ctx context.Context) error { return svc.CreateCometh(ctx, at, direction) }
	}
	return Action{
		Label: fmt.Sprintf("%s @ %s", cell.Label(), at),
		Run:   run,
	}
}

func widthOf(goal [][]string) int {
	if len(goal) == 0 {
		return 0
	}
	return len(goal[0])
}
