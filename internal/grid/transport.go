package grid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrClosed is returned by Send after the transport has been closed.
var ErrClosed = errors.New("grid: transport closed")

// Transport delivers encoded frames to a remote grid.
type Transport interface {
	Send(ctx context.Context, frame []byte) error
	Close() error
}

// LineTransport writes one frame per line to an io.Writer, typically the
// standard output of a process hosted by a native shell.
type LineTransport struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

// NewLineTransport creates a LineTransport writing to w.
func NewLineTransport(w io.Writer) *LineTransport {
	return &LineTransport{w: w}
}

// Send writes frame followed by a newline. Write failures such as a broken
// pipe are returned to the caller.
func (t *LineTransport) Send(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}

	line := make([]byte, 0, len(frame)+1)
	line = append(line, frame...)
	line = append(line, '\n')
	if _, err := t.w.Write(line); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close marks the transport closed. If the writer is an io.Closer it is
// closed as well.
func (t *LineTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
