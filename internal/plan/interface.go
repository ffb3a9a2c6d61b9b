package plan

import (
	"context"

	"github.com/vk/stargridgo/internal/grid"
)

// Creator is the remote surface a plan needs, one call per object kind.
// Binding actions to an interface instead of a concrete client keeps plans
// listable and testable without a live API.
type Creator interface {
	CreatePolyanet(ctx context.Context, at grid.Point) error
	CreateSoloon(ctx context.Context, at grid.Point, color string) error
	CreateCometh(ctx context.Context, at grid.Point, direction string) error
}
