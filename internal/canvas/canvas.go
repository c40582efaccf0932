// Package canvas presents frames in a game-engine window using raylib.
// Grid coordinates from the layout are scaled by a fixed cell size.
package canvas

import (
	"context"
	"errors"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/grindlemire/go-surface/internal/debug"
	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/palette"
)

// ErrWindowClosed is returned by Tick once the user closes the window.
var ErrWindowClosed = errors.New("canvas: window closed")

// Config describes the window.
type Config struct {
	Title      string
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	FontSize   int
	FPS        int
	Background string
	Foreground string
}

// DefaultConfig returns an 80x24 grid of 10x20 pixel cells.
func DefaultConfig() Config {
	return Config{
		Title:      "surface",
		Columns:    80,
		Rows:       24,
		CellWidth:  10,
		CellHeight: 20,
		FontSize:   18,
		FPS:        60,
		Background: "#000000",
		Foreground: "#ffffff",
	}
}

// Sink draws the latest frame into a raylib window on every tick. The
// window is opened lazily on the first tick, and every raylib call happens
// on the goroutine running the pipeline, which is locked to its OS thread.
type Sink struct {
	cfg    Config
	colors *palette.Cache
	cmds   []draw.Command
	opened bool
}

// New creates a Sink. Zero fields of cfg take their DefaultConfig values.
func New(cfg Config) *Sink {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Columns <= 0 {
		cfg.Columns = def.Columns
	}
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = def.CellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = def.CellHeight
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.FPS <= 0 {
		cfg.FPS = def.FPS
	}
	if cfg.Background == "" {
		cfg.Background = def.Background
	}
	if cfg.Foreground == "" {
		cfg.Foreground = def.Foreground
	}
	return &Sink{cfg: cfg, colors: palette.NewCache()}
}

// Size returns the grid size in cells.
func (s *Sink) Size() (width, height int) {
	return s.cfg.Columns, s.cfg.Rows
}

// Present records cmds as the frame drawn by subsequent ticks.
func (s *Sink) Present(_ context.Context, cmds []draw.Command) error {
	s.cmds = cmds
	return nil
}

// Tick draws the current frame. The whole frame is redrawn every tick since
// raylib also pumps window events from EndDrawing.
func (s *Sink) Tick(_ context.Context) error {
	if !s.opened {
		s.open()
	}
	if rl.WindowShouldClose() {
		return ErrWindowClosed
	}

	rl.BeginDrawing()
	rl.ClearBackground(s.color(draw.Color(s.cfg.Background)))
	for _, op := range s.plan(s.cmds) {
		if op.text != "" {
			rl.DrawText(op.text, op.x, op.y, op.fontSize, op.color)
			continue
		}
		rl.DrawRectangle(op.x, op.y, op.w, op.h, op.color)
	}
	rl.EndDrawing()
	return nil
}

func (s *Sink) open() {
	runtime.LockOSThread()
	w, h := s.pixels(s.cfg.Columns, s.cfg.Rows)
	rl.InitWindow(w, h, s.cfg.Title)
	rl.SetTargetFPS(int32(s.cfg.FPS))
	s.opened = true
	debug.Log("canvas: opened %dx%d window", w, h)
}

// Resize changes the grid size and the window with it.
func (s *Sink) Resize(width, height int) error {
	s.cfg.Columns, s.cfg.Rows = width, height
	if s.opened {
		w, h := s.pixels(width, height)
		rl.SetWindowSize(int(w), int(h))
	}
	return nil
}

// Close closes the window if it was opened.
func (s *Sink) Close() error {
	if s.opened && rl.IsWindowReady() {
		rl.CloseWindow()
		runtime.UnlockOSThread()
	}
	s.opened = false
	return nil
}

func (s *Sink) pixels(cols, rows int) (int32, int32) {
	return int32(cols * s.cfg.CellWidth), int32(rows * s.cfg.CellHeight)
}

func (s *Sink) color(c draw.Color) rl.Color {
	v := s.colors.Get(string(c))
	r, g, b := v.ToRGB()
	return rl.NewColor(r, g, b, 255)
}

// op is one raylib draw call in pixel space.
type op struct {
	x, y, w, h int32
	text       string
	fontSize   int32
	color      rl.Color
}

// plan converts grid commands to pixel-space draw calls in painter's order.
// Text backgrounds become a rectangle drawn under the text.
func (s *Sink) plan(cmds []draw.Command) []op {
	out := make([]op, 0, len(cmds))
	cw, ch := int32(s.cfg.CellWidth), int32(s.cfg.CellHeight)
	for _, c := range cmds {
		x, y := int32(c.X)*cw, int32(c.Y)*ch
		w, h := int32(c.W)*cw, int32(c.H)*ch
		if c.Bg != "" {
			out = append(out, op{x: x, y: y, w: w, h: h, color: s.color(c.Bg)})
		}
		if c.IsText() {
			fg := c.Fg
			if fg == "" {
				fg = draw.Color(s.cfg.Foreground)
			}
			// Center the glyphs vertically in the cell row.
			pad := max(0, (ch-int32(s.cfg.FontSize))/2)
			out = append(out, op{x: x, y: y + pad, text: c.Text, fontSize: int32(s.cfg.FontSize), color: s.color(fg)})
		}
	}
	return out
}
