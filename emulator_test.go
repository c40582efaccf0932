package surface

import (
	"strconv"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-surface/internal/palette"
)

// screenCell is what a terminal shows at one position.
type screenCell struct {
	r      rune
	fg, bg palette.Value
}

// emulator interprets the subset of ANSI output the renderer produces:
// cursor positioning, SGR colors and printable runes.
type emulator struct {
	width, height int
	cells         []screenCell
	row, col      int
	fg, bg        palette.Value

	// stray holds control runes that reached the screen outside a sequence.
	stray []rune
}

func newEmulator(width, height int) *emulator {
	e := &emulator{width: width, height: height, cells: make([]screenCell, width*height)}
	for i := range e.cells {
		e.cells[i] = screenCell{r: ' '}
	}
	return e
}

func (e *emulator) Write(p []byte) (int, error) {
	s := string(p)
	for len(s) > 0 {
		if strings.HasPrefix(s, "\x1b[") {
			end := strings.IndexFunc(s[2:], func(r rune) bool { return r >= '@' && r <= '~' })
			if end < 0 {
				break
			}
			e.csi(s[2:2+end], s[2+end])
			s = s[3+end:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		e.put(r)
		s = s[size:]
	}
	return len(p), nil
}

func (e *emulator) csi(params string, final byte) {
	if strings.HasPrefix(params, "?") {
		return
	}
	var nums []int
	if params != "" {
		for _, f := range strings.Split(params, ";") {
			n, _ := strconv.Atoi(f)
			nums = append(nums, n)
		}
	}
	switch final {
	case 'H':
		e.row, e.col = 0, 0
		if len(nums) == 2 {
			e.row, e.col = nums[0]-1, nums[1]-1
		}
	case 'm':
		e.sgr(nums)
	case 'J':
		for i := range e.cells {
			e.cells[i] = screenCell{r: ' '}
		}
	}
}

func (e *emulator) sgr(nums []int) {
	if len(nums) == 0 {
		nums = []int{0}
	}
	for i := 0; i < len(nums); i++ {
		switch n := nums[i]; {
		case n == 0:
			e.fg, e.bg = palette.Default(), palette.Default()
		case n == 39:
			e.fg = palette.Default()
		case n == 49:
			e.bg = palette.Default()
		case (n == 38 || n == 48) && i+2 < len(nums) && nums[i+1] == 5:
			v := palette.Indexed(uint8(nums[i+2]))
			e.setColor(n, v)
			i += 2
		case (n == 38 || n == 48) && i+4 < len(nums) && nums[i+1] == 2:
			v := palette.RGB(uint8(nums[i+2]), uint8(nums[i+3]), uint8(nums[i+4]))
			e.setColor(n, v)
			i += 4
		}
	}
}

func (e *emulator) setColor(base int, v palette.Value) {
	if base == 38 {
		e.fg = v
	} else {
		e.bg = v
	}
}

func (e *emulator) put(r rune) {
	if unicode.IsControl(r) {
		e.stray = append(e.stray, r)
		return
	}
	// Zero-width runes combine with the previous cell and take no column.
	if runewidth.RuneWidth(r) == 0 {
		return
	}
	if e.row < 0 || e.row >= e.height || e.col < 0 || e.col >= e.width {
		return
	}
	e.cells[e.row*e.width+e.col] = screenCell{r: r, fg: e.fg, bg: e.bg}
	e.col += RuneWidth(r)
}

// assertShows fails the test if the emulated screen differs from buf.
func (e *emulator) assertShows(t *testing.T, buf *Buffer) {
	t.Helper()
	if len(e.stray) > 0 {
		t.Errorf("raw control runes written to the screen: %q", string(e.stray))
	}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			want := screenCell{r: c.Rune}
			if want.r == 0 {
				want.r = ' '
			}
			want.fg, _ = palette.Parse(string(c.Fg))
			want.bg, _ = palette.Parse(string(c.Bg))
			if got := e.cells[y*e.width+x]; got != want {
				t.Errorf("screen(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}
