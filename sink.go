package surface

import (
	"context"

	"github.com/grindlemire/go-surface/internal/draw"
)

// Sink is a presentation target. The Pipeline calls Present once per commit
// with the flattened commands and Close exactly once when it stops.
type Sink interface {
	Present(ctx context.Context, cmds []draw.Command) error
	Close() error
}

// Ticker is implemented by sinks that render on a fixed-interval frame timer
// instead of on every Present.
type Ticker interface {
	Tick(ctx context.Context) error
}

// Resizer is implemented by sinks that must react to viewport changes.
type Resizer interface {
	Resize(width, height int) error
}

// Sizer is implemented by sinks that know their own viewport size.
type Sizer interface {
	Size() (width, height int)
}
