package grid

import (
	"context"
	"fmt"

	"github.com/grindlemire/go-surface/internal/draw"
)

// Sink presents each commit by encoding it as one frame and sending it over
// a Transport. Unlike the terminal renderer it has no frame timer: every
// Present is sent immediately.
type Sink struct {
	transport Transport
	frames    int
}

// NewSink creates a Sink sending over t.
func NewSink(t Transport) *Sink {
	return &Sink{transport: t}
}

// Present encodes cmds and sends the frame. Transport failures are returned.
func (s *Sink) Present(ctx context.Context, cmds []draw.Command) error {
	frame, err := EncodeFrame(cmds)
	if err != nil {
		return err
	}
	if err := s.transport.Send(ctx, frame); err != nil {
		return fmt.Errorf("sending frame %d: %w", s.frames, err)
	}
	s.frames++
	return nil
}

// Frames returns the number of frames sent successfully.
func (s *Sink) Frames() int {
	return s.frames
}

// Close closes the underlying transport.
func (s *Sink) Close() error {
	return s.transport.Close()
}
