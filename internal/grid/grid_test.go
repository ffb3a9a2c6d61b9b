package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		height int
		width  int
	}{
		{"zero height", 0, 5},
		{"zero width", 5, 0},
		{"both zero", 0, 0},
		{"negative height", -1, 3},
		{"negative width", 3, -2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.height, tc.width)
			require.Error(t, err, "New(%d, %d) should have failed", tc.height, tc.width)
		})
	}
}

func TestGrid_Contains(t *testing.T) {
	t.Parallel()

	g, err := New(3, 4)
	require.NoError(t, err)

	cases := []struct {
		name  string
		point Point
		want  bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{2, 3}, true},
		{"row past edge", Point{3, 0}, false},
		{"column past edge", Point{0, 4}, false},
		{"negative row", Point{-1, 0}, false},
		{"negative column", Point{0, -1}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, g.Contains(tc.point))
		})
	}
}

func TestPoint_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(2,7)", Point{Row: 2, Column: 7}.String())
}
