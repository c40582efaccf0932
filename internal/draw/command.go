// Package draw turns a geometry tree into the flat, painter's-order list of
// primitive paint operations consumed by every presenter.
package draw

import (
	"fmt"

	"github.com/grindlemire/go-surface/internal/layout"
)

// Color is an opaque color value carried from the scene style to the
// presenter. The empty Color means "unset".
type Color string

// Command is a single clipped paint operation: either a solid rectangle fill
// (Text empty) or a one-row text run that may carry its own background.
type Command struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	Bg   Color  `json:"bg,omitempty"`
	Text string `json:"text,omitempty"`
	Fg   Color  `json:"fg,omitempty"`
}

// IsText reports whether c is a text run.
func (c Command) IsText() bool {
	return c.Text != ""
}

// Rect returns the command's rectangle.
func (c Command) Rect() layout.Rect {
	return layout.Rect{X: c.X, Y: c.Y, Width: c.W, Height: c.H}
}

func (c Command) String() string {
	if c.IsText() {
		return fmt.Sprintf("text(%d,%d %dx%d %q fg=%s bg=%s)", c.X, c.Y, c.W, c.H, c.Text, c.Fg, c.Bg)
	}
	return fmt.Sprintf("fill(%d,%d %dx%d bg=%s)", c.X, c.Y, c.W, c.H, c.Bg)
}
