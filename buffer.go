package surface

import (
	"strings"

	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/layout"
)

// Buffer is a 2D grid of cells sized to the terminal's columns and rows.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the specified dimensions filled with blanks.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return layout.NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// Clear resets every cell to a blank.
func (b *Buffer) Clear() {
	blank := BlankCell()
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the buffer dimensions. Content is not preserved; a resized
// buffer is blank and is expected to be repainted in full.
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width, b.height = width, height
	if cap(b.cells) >= width*height {
		b.cells = b.cells[:width*height]
	} else {
		b.cells = make([]Cell, width*height)
	}
	b.Clear()
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		cells:  append([]Cell(nil), b.cells...),
		width:  b.width,
		height: b.height,
	}
}

// Equal reports whether both buffers have the same size and cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Fill sets the background of every cell in rect. Glyphs and foregrounds
// are left alone so a later text run composes over the fill.
func (b *Buffer) Fill(rect Rect, bg draw.Color) {
	area := rect.Intersect(b.Rect())
	for y := area.Y; y < area.Bottom(); y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := area.X; x < area.Right(); x++ {
			row[x].Bg = bg
		}
	}
}

// SetString writes s starting at (x, y), stopping at limit (exclusive) or the
// buffer edge without wrapping. Each rune replaces the glyph and foreground
// of its cells; the background is replaced only when bg is non-empty.
// Control and zero-width runes are dropped. Returns the display width
// written.
func (b *Buffer) SetString(x, y int, s string, fg, bg draw.Color, limit int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	limit = min(limit, b.width)

	curX, written := x, 0
	for _, r := range s {
		if !layout.IsPrintable(r) {
			continue
		}
		w := RuneWidth(r)
		if curX+w > limit {
			break
		}
		if curX < 0 {
			curX += w
			continue
		}
		b.setRune(curX, y, r, w, fg, bg)
		curX += w
		written += w
	}
	return written
}

// setRune places r at (x, y) and repairs any wide character it overlaps.
func (b *Buffer) setRune(x, y int, r rune, w int, fg, bg draw.Color) {
	row := b.cells[y*b.width : (y+1)*b.width]

	// Overwriting half of a wide character blanks the other half.
	if row[x].IsContinuation() && x > 0 {
		row[x-1].Rune, row[x-1].Width = ' ', 1
	}
	end := x + w - 1
	if row[end].Width == 2 && end+1 < b.width {
		row[end+1].Rune, row[end+1].Width = ' ', 1
	}

	put := func(c *Cell, r rune, width uint8) {
		c.Rune, c.Width, c.Fg = r, width, fg
		if bg != "" {
			c.Bg = bg
		}
	}
	put(&row[x], r, uint8(w))
	if w == 2 {
		put(&row[x+1], 0, 0)
	}
}

// String renders the buffer to a string for debugging. Each row is separated
// by a newline. Continuation cells are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Apply paints cmds onto buf in order. Every command is clamped to the
// buffer bounds. Fills update backgrounds; text runs overwrite glyphs and
// foregrounds, and backgrounds only when the command carries one.
func Apply(buf *Buffer, cmds []draw.Command) {
	for _, c := range cmds {
		if c.IsText() {
			buf.SetString(c.X, c.Y, c.Text, c.Fg, c.Bg, c.X+c.W)
			continue
		}
		if c.Bg != "" {
			buf.Fill(c.Rect(), c.Bg)
		}
	}
}
