package surface

import (
	"github.com/grindlemire/go-surface/internal/layout"
	"github.com/grindlemire/go-surface/internal/palette"
)

// Encoder turns screen buffers into ANSI byte sequences. It owns a color
// parse cache and a reusable output buffer, so an Encoder must not be shared
// between goroutines.
type Encoder struct {
	colors *palette.Cache
	esc    *escBuilder

	// Per-frame cursor and color tracking.
	lastX, lastY   int
	lastFg, lastBg palette.Value
	colorsSet      bool
}

// NewEncoder creates an Encoder with an empty color cache.
func NewEncoder() *Encoder {
	return &Encoder{
		colors: palette.NewCache(),
		esc:    newEscBuilder(4096),
	}
}

// RenderFull returns the bytes that paint every cell of buf.
func RenderFull(buf *Buffer) []byte {
	return NewEncoder().Full(buf)
}

// RenderDiff returns the bytes that turn a screen showing prev into next.
// It is empty when nothing changed.
func RenderDiff(prev, next *Buffer) []byte {
	return NewEncoder().Diff(prev, next)
}

// Full paints every cell of buf, repositioning the cursor at the start of
// each row. The returned slice is only valid until the next call.
func (e *Encoder) Full(buf *Buffer) []byte {
	e.begin()
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			e.cell(x, y, buf.cells[y*buf.width+x])
		}
	}
	return e.end()
}

// Diff paints only the cells of next whose glyph, foreground, background or
// width differ from prev. Buffers of different sizes cannot be diffed and
// produce a full render of next. The returned slice is only valid until the
// next call.
func (e *Encoder) Diff(prev, next *Buffer) []byte {
	if prev == nil || prev.width != next.width || prev.height != next.height {
		return e.Full(next)
	}

	e.begin()
	w := next.width
	for y := 0; y < next.height; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			c := next.cells[i]
			if c.IsContinuation() {
				continue
			}
			changed := c != prev.cells[i]
			// A wide rune is redrawn if either of its halves changed.
			if !changed && c.Width == 2 && x+1 < w {
				changed = next.cells[i+1] != prev.cells[i+1]
			}
			if changed {
				e.cell(x, y, c)
			}
		}
	}
	return e.end()
}

func (e *Encoder) begin() {
	e.esc.Reset()
	e.lastX, e.lastY = -1, -1
	e.colorsSet = false
}

func (e *Encoder) end() []byte {
	if e.esc.Len() == 0 {
		return nil
	}
	e.esc.ResetStyle()
	return e.esc.Bytes()
}

// cell emits one cell, moving the cursor only when it is not already there
// and changing colors only when they differ from the last emitted ones.
func (e *Encoder) cell(x, y int, c Cell) {
	if c.IsContinuation() {
		return
	}
	if y != e.lastY || x != e.lastX+1 {
		e.esc.MoveTo(x, y)
	}

	fg, bg := e.colors.Get(string(c.Fg)), e.colors.Get(string(c.Bg))
	if !e.colorsSet || fg != e.lastFg {
		e.esc.SetFg(fg)
		e.lastFg = fg
	}
	if !e.colorsSet || bg != e.lastBg {
		e.esc.SetBg(bg)
		e.lastBg = bg
	}
	e.colorsSet = true

	// Anything the terminal would not print as one cell becomes a blank so
	// the cursor stays where the next cell expects it.
	if r := c.Rune; layout.IsPrintable(r) {
		e.esc.WriteRune(r)
	} else {
		e.esc.WriteRune(' ')
	}

	e.lastX, e.lastY = x, y
	if c.Width > 1 {
		e.lastX = x + int(c.Width) - 1
	}
}
