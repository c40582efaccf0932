package surface

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-surface/internal/draw"
)

// PipelineOption is a functional option for configuring a Pipeline.
type PipelineOption func(*Pipeline) error

// WithFrameRate sets the frame timer rate used for Ticker sinks.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) PipelineOption {
	return func(p *Pipeline) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		p.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithViewport sets the size the root node is laid out against. Without it
// the size comes from a Sizer sink, or 80x24.
func WithViewport(width, height int) PipelineOption {
	return func(p *Pipeline) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("viewport %dx%d must not be negative", width, height)
		}
		p.width, p.height = width, height
		p.viewportSet = true
		return nil
	}
}

// WithCoordBase offsets the layout origin. Use 1 for targets that address
// cells from one. Default is 0.
func WithCoordBase(base int) PipelineOption {
	return func(p *Pipeline) error {
		if base != 0 && base != 1 {
			return fmt.Errorf("coordinate base must be 0 or 1, got %d", base)
		}
		p.coordBase = base
		return nil
	}
}

// WithColorMapper rewrites every emitted color, for targets with a fixed
// palette.
func WithColorMapper(m draw.ColorMapper) PipelineOption {
	return func(p *Pipeline) error {
		if m == nil {
			return fmt.Errorf("color mapper must not be nil")
		}
		p.flattenOpts = append(p.flattenOpts, draw.WithColorMapper(m))
		return nil
	}
}

// WithDefaultForeground sets the color used for text without its own color.
func WithDefaultForeground(c draw.Color) PipelineOption {
	return func(p *Pipeline) error {
		p.flattenOpts = append(p.flattenOpts, draw.WithDefaultForeground(c))
		return nil
	}
}
