// Package grid defines the spatial model of a goal map: the bounding box of
// the map, positions inside it, and the decoded meaning of individual goal
// tokens. The package is pure; it performs no I/O and holds no mutable state.
package grid

import "fmt"

// Point identifies one cell position on a Grid, in row-major coordinates.
type Point struct {
	Row    int
	Column int
}

// String renders the stable "(row,column)" form used in action labels and logs.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Grid is the bounding box of a goal map. It stores no cells; it only answers
// membership queries.
type Grid struct {
	Height int
	Width  int
}

// New validates the dimensions and returns the bounding box. Both dimensions
// must be positive.
func New(height, width int) (Grid, error) {
	if height < 1 || width < 1 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", height, width)
	}
	return Grid{Height: height, Width: width}, nil
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Column >= 0 && p.Column < g.Width
}
