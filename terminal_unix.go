//go:build linux || darwin

package surface

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

type termState struct {
	termios unix.Termios
}

// disableEcho turns off ECHO and canonical input on fd and returns the
// previous state. Signals stay enabled so Ctrl+C still interrupts.
func disableEcho(fd int) (*termState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	state := &termState{termios: *termios}

	termios.Lflag &^= unix.ECHO | unix.ICANON
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// restoreState puts back the termios saved by disableEcho.
func restoreState(fd int, state *termState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &state.termios)
}

// WatchResize calls fn with the new size each time the terminal attached to
// f is resized, until ctx is done.
func WatchResize(ctx context.Context, f *os.File, fn func(width, height int)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
				if err != nil {
					continue
				}
				fn(int(ws.Col), int(ws.Row))
			}
		}
	}()
}
