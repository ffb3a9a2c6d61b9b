package grid

import (
	"errors"
	"fmt"
	"strings"
)

// CellKind discriminates the variants of a parsed goal cell.
type CellKind int

const (
	// Empty marks a cell that requires no action.
	Empty CellKind = iota
	// Polyanet marks a plain astral object with no parameters.
	Polyanet
	// Soloon marks a colored astral object; Cell.Color holds the color.
	Soloon
	// Cometh marks a directed astral object; Cell.Direction holds the direction.
	Cometh
)

// Cell is the decoded meaning of a single goal-map token. Cells are produced
// only by ParseToken and are never mutated afterwards.
type Cell struct {
	Kind      CellKind
	Color     string // soloons only, lowercase
	Direction string // comeths only, lowercase
}

// ErrUnrecognizedToken marks goal-map tokens outside the known grammar.
var ErrUnrecognizedToken = errors.New("unrecognized goal token")

// ParseToken decodes one goal-map token into a Cell. The grammar is closed:
// "SPACE", "POLYANET", "<COLOR>_SOLOON" with COLOR one of BLUE|RED|PURPLE|WHITE,
// and "<DIR>_COMETH" with DIR one of UP|DOWN|LEFT|RIGHT. Any other token fails
// with ErrUnrecognizedToken.
func ParseToken(token string) (Cell, error) {
	switch token {
	case "SPACE":
		return Cell{Kind: Empty}, nil
	case "POLYANET":
		return Cell{Kind: Polyanet}, nil
	}

	if color, ok := strings.CutSuffix(token, "_SOLOON"); ok {
		switch color {
		case "BLUE", "RED", "PURPLE", "WHITE":
			return Cell{Kind: Soloon, Color: strings.ToLower(color)}, nil
		}
	}
	if direction, ok := strings.CutSuffix(token, "_COMETH"); ok {
		switch direction {
		case "UP", "DOWN", "LEFT", "RIGHT":
			return Cell{Kind: Cometh, Direction: strings.ToLower(direction)}, nil
		}
	}

	return Cell{}, fmt.Errorf("%w: %q", ErrUnrecognizedToken, token)
}

// Label renders the canonical uppercase token for the cell, including any
// color or direction qualifier. Empty cells have no label.
func (c Cell) Label() string {
	switch c.Kind {
	case Polyanet:
		return "POLYANET"
	case Soloon:
		return strings.ToUpper(c.Color) + "_SOLOON"
	case Cometh:
		return strings.ToUpper(c.Direction) + "_COMETH"
	default:
		return ""
	}
}
