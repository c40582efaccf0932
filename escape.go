package surface

import (
	"strconv"
	"unicode/utf8"

	"github.com/grindlemire/go-surface/internal/palette"
)

// escBuilder appends control sequences and text to a reusable byte slice.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset empties the builder, keeping its capacity.
func (e *escBuilder) Reset() { e.buf = e.buf[:0] }

func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) Len() int { return len(e.buf) }

// csi appends ESC [ followed by the numeric parameters joined by ';' and
// the final byte.
func (e *escBuilder) csi(final byte, params ...int) {
	e.buf = append(e.buf, '\x1b', '[')
	for i, p := range params {
		if i > 0 {
			e.buf = append(e.buf, ';')
		}
		e.buf = strconv.AppendInt(e.buf, int64(p), 10)
	}
	e.buf = append(e.buf, final)
}

// privateMode toggles a DEC private mode (ESC [ ? n h / l).
func (e *escBuilder) privateMode(mode int, on bool) {
	e.buf = append(e.buf, '\x1b', '[', '?')
	e.buf = strconv.AppendInt(e.buf, int64(mode), 10)
	if on {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// MoveTo positions the cursor at zero-based cell (x, y). The sequence
// itself is one-based, row first.
func (e *escBuilder) MoveTo(x, y int) { e.csi('H', y+1, x+1) }

func (e *escBuilder) ClearScreen() { e.csi('J', 2) }

func (e *escBuilder) ResetStyle() { e.csi('m', 0) }

func (e *escBuilder) HideCursor() { e.privateMode(25, false) }

func (e *escBuilder) ShowCursor() { e.privateMode(25, true) }

func (e *escBuilder) EnterAltScreen() { e.privateMode(1049, true) }

func (e *escBuilder) ExitAltScreen() { e.privateMode(1049, false) }

// SetFg selects the foreground: 39 for the terminal default, 38;5;n for a
// palette index, 38;2;r;g;b for true color.
func (e *escBuilder) SetFg(c palette.Value) { e.sgrColor(c, 38, 39) }

// SetBg is SetFg for the background (48 and 49).
func (e *escBuilder) SetBg(c palette.Value) { e.sgrColor(c, 48, 49) }

func (e *escBuilder) sgrColor(c palette.Value, extended, def int) {
	switch c.Kind {
	case palette.KindIndexed:
		e.csi('m', extended, 5, int(c.Index))
	case palette.KindRGB:
		e.csi('m', extended, 2, int(c.R), int(c.G), int(c.B))
	default:
		e.csi('m', def)
	}
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}
