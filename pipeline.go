package surface

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grindlemire/go-surface/internal/debug"
	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/layout"
	"github.com/grindlemire/go-surface/internal/scene"
)

// Pipeline runs Layout, Flatten and Present for each committed snapshot.
//
// Commit and Resize may be called from any goroutine. Everything else happens
// on the goroutine running Run, so at most one layout is ever in flight.
// Commits that arrive while a frame is being produced are coalesced: only
// the newest snapshot is laid out.
type Pipeline struct {
	sink          Sink
	frameDuration time.Duration
	width, height int
	viewportSet   bool
	coordBase     int
	flattenOpts   []draw.Option

	mu        sync.Mutex
	pending   *scene.Node
	hasCommit bool
	size      [2]int
	hasResize bool
	coalesced int
	wake      chan struct{}
	flush     chan chan error

	// Owned by Run.
	current *scene.Node
	tree    *layout.Tree
	frames  int
}

// NewPipeline creates a Pipeline presenting to sink.
func NewPipeline(sink Sink, opts ...PipelineOption) (*Pipeline, error) {
	if sink == nil {
		return nil, errors.New("surface: nil sink")
	}

	p := &Pipeline{
		sink:          sink,
		frameDuration: time.Second / 60,
		width:         80,
		height:        24,
		wake:          make(chan struct{}, 1),
		flush:         make(chan chan error),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if s, ok := sink.(Sizer); ok && !p.viewportSet {
		p.width, p.height = s.Size()
	}
	return p, nil
}

// Commit hands the pipeline a new snapshot. It never blocks. A snapshot not
// yet picked up by Run is replaced.
func (p *Pipeline) Commit(root *scene.Node) {
	p.mu.Lock()
	if p.hasCommit {
		p.coalesced++
		debug.Log("surface: commit coalesced (%d total)", p.coalesced)
	}
	p.pending = root
	p.hasCommit = true
	p.mu.Unlock()
	p.signal()
}

// Resize changes the viewport. The last snapshot is laid out again at the
// new size.
func (p *Pipeline) Resize(width, height int) {
	p.mu.Lock()
	p.size = [2]int{max(0, width), max(0, height)}
	p.hasResize = true
	p.mu.Unlock()
	p.signal()
}

func (p *Pipeline) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Coalesced returns how many commits were replaced before being rendered.
func (p *Pipeline) Coalesced() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.coalesced
}

// Run processes commits until ctx is done or the sink fails. The sink is
// closed on every exit path. Cancellation is not an error.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := p.sink.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing sink: %w", cerr))
		}
	}()

	var tick <-chan time.Time
	ticker, isTicker := p.sink.(Ticker)
	if isTicker {
		t := time.NewTicker(p.frameDuration)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			debug.Log("surface: pipeline stopped after %d frames", p.frames)
			return nil

		case <-p.wake:
			if err := p.drain(ctx); err != nil {
				debug.Log("surface: %v", err)
				return err
			}

		case <-tick:
			if err := ticker.Tick(ctx); err != nil {
				debug.Log("surface: tick: %v", err)
				return fmt.Errorf("tick: %w", err)
			}

		case done := <-p.flush:
			err := p.drain(ctx)
			if err == nil && isTicker {
				if err = ticker.Tick(ctx); err != nil {
					err = fmt.Errorf("tick: %w", err)
				}
			}
			done <- err
			if err != nil {
				return err
			}
		}
	}
}

// Flush blocks until every snapshot committed before the call has been
// presented and, for Ticker sinks, rendered. Run must be active.
func (p *Pipeline) Flush(ctx context.Context) error {
	done := make(chan error, 1)
	select {
	case p.flush <- done:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drain applies the pending resize and commit, if any.
func (p *Pipeline) drain(ctx context.Context) error {
	p.mu.Lock()
	root, hasCommit := p.pending, p.hasCommit
	size, hasResize := p.size, p.hasResize
	p.pending, p.hasCommit, p.hasResize = nil, false, false
	p.mu.Unlock()

	if hasResize {
		p.width, p.height = size[0], size[1]
		if r, ok := p.sink.(Resizer); ok {
			if err := r.Resize(p.width, p.height); err != nil {
				return fmt.Errorf("resizing sink: %w", err)
			}
		}
	}
	if hasCommit {
		p.current = root
	}
	if !hasCommit && !hasResize {
		return nil
	}
	return p.present(ctx)
}

// present lays out and flattens the current snapshot and hands the commands
// to the sink.
func (p *Pipeline) present(ctx context.Context) error {
	p.tree = layout.Calculate(p.current, p.width, p.height, p.coordBase)
	cmds := draw.Flatten(p.tree, p.flattenOpts...)
	p.frames++
	debug.Log("surface: frame %d: %d nodes, %d commands", p.frames, p.tree.Len(), len(cmds))

	if err := p.sink.Present(ctx, cmds); err != nil {
		return fmt.Errorf("presenting frame %d: %w", p.frames, err)
	}
	return nil
}
