// Package cellscreen presents frames on a tcell screen. It is an alternative
// local grid target to the built-in ANSI renderer, and its simulation screen
// makes frames inspectable in tests.
package cellscreen

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-surface/internal/debug"
	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/layout"
	"github.com/grindlemire/go-surface/internal/palette"
)

// Sink paints the latest frame on a tcell.Screen once per dirty tick.
type Sink struct {
	screen tcell.Screen
	colors *palette.Cache
	cmds   []draw.Command
	dirty  bool
}

// Open creates and initializes a screen on the controlling terminal.
func Open() (*Sink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Sink {
	screen.HideCursor()
	return &Sink{screen: screen, colors: palette.NewCache()}
}

// Size returns the screen dimensions in cells.
func (s *Sink) Size() (width, height int) {
	return s.screen.Size()
}

// Present records cmds as the next frame.
func (s *Sink) Present(_ context.Context, cmds []draw.Command) error {
	s.cmds = cmds
	s.dirty = true
	return nil
}

// Tick repaints the screen if a newer frame arrived since the last tick.
// tcell performs its own diff against the physical screen in Show.
func (s *Sink) Tick(_ context.Context) error {
	if !s.dirty {
		return nil
	}
	s.dirty = false

	s.screen.Clear()
	for _, c := range s.cmds {
		if c.IsText() {
			s.text(c)
		} else if c.Bg != "" {
			s.fill(c)
		}
	}
	s.screen.Show()
	return nil
}

func (s *Sink) fill(c draw.Command) {
	bg := s.color(c.Bg)
	w, h := s.screen.Size()
	for y := max(0, c.Y); y < min(h, c.Y+c.H); y++ {
		for x := max(0, c.X); x < min(w, c.X+c.W); x++ {
			r, comb, style, _ := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y, r, comb, style.Background(bg))
		}
	}
}

func (s *Sink) text(c draw.Command) {
	w, _ := s.screen.Size()
	limit := min(w, c.X+c.W)
	x := c.X
	for _, r := range c.Text {
		if !layout.IsPrintable(r) {
			continue
		}
		rw := runewidth.RuneWidth(r)
		if x+rw > limit {
			break
		}
		if x >= 0 {
			_, _, style, _ := s.screen.GetContent(x, c.Y)
			style = style.Foreground(s.color(c.Fg))
			if c.Bg != "" {
				style = style.Background(s.color(c.Bg))
			}
			s.screen.SetContent(x, c.Y, r, nil, style)
		}
		x += rw
	}
}

// Resize resynchronizes the screen after the terminal changed size.
func (s *Sink) Resize(width, height int) error {
	debug.Log("cellscreen: resize to %dx%d", width, height)
	s.screen.Sync()
	s.dirty = true
	return nil
}

// Close restores the terminal.
func (s *Sink) Close() error {
	s.screen.Fini()
	return nil
}

// color converts a style color to a tcell color.
func (s *Sink) color(c draw.Color) tcell.Color {
	v := s.colors.Get(string(c))
	switch v.Kind {
	case palette.KindIndexed:
		return tcell.PaletteColor(int(v.Index))
	case palette.KindRGB:
		return tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
	}
	return tcell.ColorDefault
}

// Watch polls screen events until the screen is finalized. Resize events
// are reported through onResize; Escape and Ctrl+C call onQuit.
func (s *Sink) Watch(onResize func(width, height int), onQuit func()) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			w, h := ev.Size()
			onResize(w, h)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				onQuit()
			}
		}
	}
}
