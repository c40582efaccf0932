package surface

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/grindlemire/go-surface/internal/debug"
)

// ErrNotTerminal is returned when the output is not a terminal.
var ErrNotTerminal = errors.New("surface: output is not a terminal")

// Terminal is a full-screen session on a local ANSI terminal. Start enters
// the alternate screen with the cursor hidden and keyboard echo off; Restore
// undoes all of it and must run on every exit path.
type Terminal struct {
	out io.Writer
	fd  int

	mu      sync.Mutex
	saved   *termState
	started bool
}

// OpenTerminal prepares a session on f, usually os.Stdout.
func OpenTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &Terminal{out: f, fd: fd}, nil
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return width, height, nil
}

// Start switches the terminal into full-screen mode.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}

	saved, err := disableEcho(t.fd)
	if err != nil {
		// Echo stays on; rendering still works.
		debug.Log("surface: disabling echo: %v", err)
	}
	t.saved = saved

	esc := newEscBuilder(32)
	esc.EnterAltScreen()
	esc.HideCursor()
	esc.ClearScreen()
	if _, err := t.out.Write(esc.Bytes()); err != nil {
		restoreState(t.fd, t.saved)
		return fmt.Errorf("entering alternate screen: %w", err)
	}
	t.started = true
	return nil
}

// Restore resets colors, shows the cursor, leaves the alternate screen and
// restores the saved terminal mode. It is a no-op if Start was not called.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return nil
	}
	t.started = false

	esc := newEscBuilder(32)
	esc.ResetStyle()
	esc.ShowCursor()
	esc.ExitAltScreen()
	_, werr := t.out.Write(esc.Bytes())

	rerr := restoreState(t.fd, t.saved)
	t.saved = nil
	return errors.Join(werr, rerr)
}

// Renderer returns a Renderer sized to the terminal whose Close restores it.
func (t *Terminal) Renderer() (*Renderer, error) {
	w, h, err := t.Size()
	if err != nil {
		return nil, err
	}
	r := NewRenderer(t.out, w, h)
	r.restore = t.Restore
	return r, nil
}
