package surface

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/grindlemire/go-surface/internal/debug"
	"github.com/grindlemire/go-surface/internal/draw"
)

// Renderer is the terminal Sink. Present only records the latest commands
// and marks the renderer dirty; the frame timer calls Tick, which rasterizes
// the commands into a screen buffer and writes the minimal diff against the
// previously presented buffer.
type Renderer struct {
	out io.Writer
	enc *Encoder

	// front is what the terminal currently shows; nil forces a full render.
	front *Buffer
	// back is rebuilt from cmds on every render.
	back *Buffer

	cmds  []draw.Command
	dirty atomic.Bool

	restore func() error
	closed  bool
	frames  int
}

var (
	_ Sink    = (*Renderer)(nil)
	_ Ticker  = (*Renderer)(nil)
	_ Resizer = (*Renderer)(nil)
	_ Sizer   = (*Renderer)(nil)
)

// NewRenderer creates a Renderer of the given size writing to out.
func NewRenderer(out io.Writer, width, height int) *Renderer {
	return &Renderer{
		out:  out,
		enc:  NewEncoder(),
		back: NewBuffer(width, height),
	}
}

// Size returns the screen dimensions in cells.
func (r *Renderer) Size() (width, height int) {
	return r.back.Size()
}

// Present records cmds as the next frame. Commands replace any frame not yet
// rendered.
func (r *Renderer) Present(_ context.Context, cmds []draw.Command) error {
	r.cmds = cmds
	r.MarkDirty()
	return nil
}

// MarkDirty forces the next Tick to render.
func (r *Renderer) MarkDirty() {
	r.dirty.Store(true)
}

// Tick renders once if a newer frame arrived since the last tick.
// Ticks with nothing new are no-ops.
func (r *Renderer) Tick(_ context.Context) error {
	if !r.dirty.Swap(false) {
		return nil
	}
	return r.render()
}

func (r *Renderer) render() error {
	r.back.Clear()
	Apply(r.back, r.cmds)

	var out []byte
	if r.front == nil {
		out = r.enc.Full(r.back)
	} else {
		out = r.enc.Diff(r.front, r.back)
	}

	if len(out) > 0 {
		if _, err := r.out.Write(out); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
	r.frames++

	// The rendered buffer becomes the front; the old front is reused as the
	// next back buffer.
	if r.front == nil {
		r.front = NewBuffer(r.back.Size())
	}
	r.front, r.back = r.back, r.front
	return nil
}

// Resize discards the previous screen state. The next render repaints every
// cell at the new size.
func (r *Renderer) Resize(width, height int) error {
	debug.Log("surface: renderer resize to %dx%d", width, height)
	r.front = nil
	r.back = NewBuffer(width, height)
	r.MarkDirty()
	return nil
}

// Frames returns the number of renders performed.
func (r *Renderer) Frames() int {
	return r.frames
}

// Screen returns a copy of the buffer last written to the terminal, or nil
// before the first render.
func (r *Renderer) Screen() *Buffer {
	if r.front == nil {
		return nil
	}
	return r.front.Clone()
}

// Close restores the terminal when the renderer was created by a Terminal.
// It is safe to call more than once.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.restore != nil {
		return r.restore()
	}
	return nil
}
