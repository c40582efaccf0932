package layout

import (
	"strings"

	"github.com/grindlemire/go-surface/internal/scene"
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Column Direction = iota // Children laid out top-to-bottom
	Row                     // Children laid out left-to-right
)

// Style keys understood by the engine.
const (
	KeyWidth           = "width"
	KeyHeight          = "height"
	KeyPadding         = "padding"
	KeyPaddingTop      = "paddingTop"
	KeyPaddingRight    = "paddingRight"
	KeyPaddingBottom   = "paddingBottom"
	KeyPaddingLeft     = "paddingLeft"
	KeyGap             = "gap"
	KeyFlexDirection   = "flexDirection"
	KeyFlexGrow        = "flexGrow"
	KeyDisplay         = "display"
	KeyBackgroundColor = "backgroundColor"
	KeyBackground      = "background"
	KeyColor           = "color"
)

// Style contains the resolved layout and paint properties for a node.
type Style struct {
	Width     Value
	Height    Value
	Padding   Edges
	Gap       int
	Direction Direction
	FlexGrow  float64

	// Hidden is set by display:none. Hidden nodes get no box and no children.
	Hidden bool

	// Background and Foreground are raw color values ("" when unset).
	Background string
	Foreground string
}

// ResolveStyle converts a raw style map into a Style.
// Invalid values degrade to their defaults; resolution never fails.
func ResolveStyle(s scene.Style) Style {
	style := Style{
		Width:  StyleValue(s, KeyWidth),
		Height: StyleValue(s, KeyHeight),
		Gap:    nonNegativeInt(s, KeyGap),
	}

	all := nonNegativeInt(s, KeyPadding)
	style.Padding = Edges{
		Top:    sideOr(s, KeyPaddingTop, all),
		Right:  sideOr(s, KeyPaddingRight, all),
		Bottom: sideOr(s, KeyPaddingBottom, all),
		Left:   sideOr(s, KeyPaddingLeft, all),
	}

	if dir, ok := s.String(KeyFlexDirection); ok && strings.EqualFold(dir, "row") {
		style.Direction = Row
	}

	if grow, ok := s.Float(KeyFlexGrow); ok && grow > 0 {
		// Capped so the sum of sibling weights stays finite.
		style.FlexGrow = min(grow, maxGrow)
	}

	if display, ok := s.String(KeyDisplay); ok && strings.EqualFold(display, "none") {
		style.Hidden = true
	}

	if bg, ok := s.String(KeyBackgroundColor); ok {
		style.Background = bg
	} else if bg, ok := s.String(KeyBackground); ok {
		style.Background = bg
	}
	if fg, ok := s.String(KeyColor); ok {
		style.Foreground = fg
	}

	return style
}

// maxGrow bounds a flexGrow weight.
const maxGrow = 1e9

// nonNegativeInt reads key as a rounded integer, clamping negatives to 0.
func nonNegativeInt(s scene.Style, key string) int {
	f, ok := s.Float(key)
	if !ok {
		return 0
	}
	return roundClamp(f, maxCells)
}

// sideOr reads a per-side override, falling back to the shorthand.
func sideOr(s scene.Style, key string, fallback int) int {
	f, ok := s.Float(key)
	if !ok {
		return fallback
	}
	return roundClamp(f, maxCells)
}
