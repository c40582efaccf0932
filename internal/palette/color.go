// Package palette parses the color values found in scene styles and maps them
// onto what a target can display: 24-bit RGB, the 256-color terminal palette,
// or a fixed integer palette.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind distinguishes between color representations.
type Kind uint8

const (
	// KindDefault is the target's default color (nothing set).
	KindDefault Kind = iota
	// KindIndexed is a palette index (0-255).
	KindIndexed
	// KindRGB is a 24-bit color.
	KindRGB
)

// Value is a parsed color. The zero value is the default color.
type Value struct {
	Kind    Kind
	Index   uint8
	R, G, B uint8
}

// Default returns the default color.
func Default() Value {
	return Value{}
}

// Indexed returns a palette color.
func Indexed(i uint8) Value {
	return Value{Kind: KindIndexed, Index: i}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Value {
	return Value{Kind: KindRGB, R: r, G: g, B: b}
}

// IsDefault reports whether v is the default color.
func (v Value) IsDefault() bool {
	return v.Kind == KindDefault
}

// Parse interprets a raw style color. Supported forms are decimal palette
// indices ("0".."255"), "#rgb", "#rrggbb", "rgb(r, g, b)", and CSS basic
// color names. An empty string or "default" is the default color.
// ok is false for anything unrecognised, which also yields the default color.
func Parse(raw string) (v Value, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "" || s == "default" || s == "inherit":
		return Default(), true

	case s[0] == '#':
		c, err := colorful.Hex(s)
		if err != nil || (len(s) != 4 && len(s) != 7) {
			return Default(), false
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), true

	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseFunctional(s)

	case s[0] >= '0' && s[0] <= '9':
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return Default(), false
		}
		return Indexed(uint8(n)), true
	}

	if hex, found := names[s]; found {
		return Parse(hex)
	}
	return Default(), false
}

// parseFunctional handles rgb(r, g, b) and rgba(r, g, b, a). Alpha is ignored.
func parseFunctional(s string) (Value, bool) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") || open < 0 {
		return Default(), false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Default(), false
	}

	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Default(), false
		}
		rgb[i] = uint8(n)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), true
}

// names maps CSS basic color keywords to hex.
var names = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
}

// ansi16RGB maps palette colors 0-15 to approximate RGB values.
// These are typical terminal color values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// ToRGB returns the red, green, and blue components of any color.
// Palette indices are approximated with the xterm 256-color layout.
// The default color reports (0, 0, 0).
func (v Value) ToRGB() (r, g, b uint8) {
	switch v.Kind {
	case KindRGB:
		return v.R, v.G, v.B
	case KindIndexed:
		idx := v.Index
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 color cube: index = 16 + 36*r + 6*g + b
			idx -= 16
			return cubeLevel(idx / 36), cubeLevel((idx % 36) / 6), cubeLevel(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// cubeLevel converts a 0-5 cube coordinate to its RGB channel value.
func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

// Colorful converts v to a go-colorful color.
func (v Value) Colorful() colorful.Color {
	r, g, b := v.ToRGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex formats v as "#rrggbb". The default color formats as "".
func (v Value) Hex() string {
	if v.IsDefault() {
		return ""
	}
	r, g, b := v.ToRGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
