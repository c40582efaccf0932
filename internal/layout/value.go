package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-surface/internal/scene"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Unset: use the fallback
	UnitFixed               // Absolute cells or pixels
	UnitPercent             // Percentage of the available dimension
)

// Value represents a dimension that can be fixed, percentage, or unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns an unset Value.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsAuto returns true if this value is unset.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve computes the integer size given the available space.
// Fixed values round to nearest, percentages resolve against available, and
// unset values use fallback. The result is clamped to [0, available].
func (v Value) Resolve(available, fallback int) int {
	available = max(0, available)

	switch v.Unit {
	case UnitFixed:
		return roundClamp(v.Amount, available)
	case UnitPercent:
		return roundClamp(float64(available)*v.Amount/100.0, available)
	}
	return min(max(0, fallback), available)
}

// maxCells bounds sizes that have nothing to be clamped against, such as
// padding and gap.
const maxCells = 1 << 20

// roundClamp rounds f to the nearest integer in [0, limit]. The clamp
// happens before the conversion so huge values saturate instead of
// overflowing.
func roundClamp(f float64, limit int) int {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= float64(limit):
		return limit
	}
	return min(int(math.Round(f)), limit)
}

// StyleValue reads a dimension from a style map.
// Numbers and numeric strings are fixed sizes, strings ending in "%" are
// percentages, and everything else (including missing keys) is unset.
func StyleValue(s scene.Style, key string) Value {
	raw, ok := s.Get(key)
	if !ok {
		return Auto()
	}
	if str, ok := raw.(string); ok {
		if p, found := strings.CutSuffix(strings.TrimSpace(str), "%"); found {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return Auto()
			}
			return Percent(f)
		}
	}
	if f, ok := s.Float(key); ok {
		return Fixed(f)
	}
	return Auto()
}
