package layout

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// IsPrintable reports whether r takes at least one column on its own.
// Control runes and zero-width runes such as combining marks do not, and
// grid targets drop them rather than give them a cell.
func IsPrintable(r rune) bool {
	return !unicode.IsControl(r) && runewidth.RuneWidth(r) > 0
}

// Truncate cuts s to at most width display columns. No wrapping is done.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// SliceColumns returns the runes of s that fall entirely within the column
// range [start, start+width). Wide runes straddling either edge are dropped.
func SliceColumns(s string, start, width int) string {
	if width <= 0 {
		return ""
	}
	if start <= 0 {
		return Truncate(s, width)
	}

	end := start + width
	col := 0
	out := make([]rune, 0, width)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col >= end {
			break
		}
		if col >= start && col+w <= end {
			out = append(out, r)
		}
		col += w
	}
	return string(out)
}
