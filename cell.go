package surface

import (
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-surface/internal/draw"
)

// Cell represents a single character cell in the terminal buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune       // The character (0 for continuation cells)
	Fg    draw.Color // Foreground, "" for the terminal default
	Bg    draw.Color // Background, "" for the terminal default
	Width uint8      // Display width (1 or 2; 0 for continuation)
}

// BlankCell is a space in default colors.
func BlankCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, fg, bg draw.Color) Cell {
	return Cell{Rune: r, Fg: fg, Bg: bg, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// RuneWidth returns the display width of a rune in terminal cells, 1 or 2.
// Zero-width and control runes are given one cell so they can be addressed.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w == 2 {
		return 2
	}
	return 1
}
