package palette

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Xterm16 is the standard 16-color terminal palette as hex strings.
var Xterm16 = func() []string {
	out := make([]string, len(ansi16RGB))
	for i := range ansi16RGB {
		out[i] = Indexed(uint8(i)).Hex()
	}
	return out
}()

// Quantizer maps arbitrary colors onto a fixed palette, for targets that can
// only address colors by integer index.
type Quantizer struct {
	entries []colorful.Color
	memo    map[string]string
}

// NewQuantizer builds a Quantizer over the given palette entries.
func NewQuantizer(entries []string) (*Quantizer, error) {
	if len(entries) == 0 {
		return nil, errors.New("palette: empty palette")
	}
	if len(entries) > 256 {
		return nil, fmt.Errorf("palette: %d entries exceeds 256", len(entries))
	}

	q := &Quantizer{
		entries: make([]colorful.Color, len(entries)),
		memo:    make(map[string]string),
	}
	for i, e := range entries {
		v, ok := Parse(e)
		if !ok || v.IsDefault() {
			return nil, fmt.Errorf("palette: entry %d: invalid color %q", i, e)
		}
		q.entries[i] = v.Colorful()
	}
	return q, nil
}

// Len returns the number of palette entries.
func (q *Quantizer) Len() int {
	return len(q.entries)
}

// Map returns the decimal index of the palette entry nearest to raw in CIE
// Lab space. Default and unrecognised colors map to "". Indices already
// inside the palette are kept as they are.
func (q *Quantizer) Map(raw string) string {
	if out, ok := q.memo[raw]; ok {
		return out
	}

	v, _ := Parse(raw)
	var out string
	switch {
	case v.IsDefault():
		out = ""
	case v.Kind == KindIndexed && int(v.Index) < len(q.entries):
		out = strconv.Itoa(int(v.Index))
	default:
		out = strconv.Itoa(q.Nearest(v.Colorful()))
	}

	q.memo[raw] = out
	return out
}

// Nearest returns the index of the entry closest to c.
func (q *Quantizer) Nearest(c colorful.Color) int {
	best := 0
	bestDist := c.DistanceLab(q.entries[0])
	for i := 1; i < len(q.entries); i++ {
		if d := c.DistanceLab(q.entries[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
