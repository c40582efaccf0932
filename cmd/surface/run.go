package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	surface "github.com/grindlemire/go-surface"
	"github.com/grindlemire/go-surface/internal/canvas"
	"github.com/grindlemire/go-surface/internal/cellscreen"
	"github.com/grindlemire/go-surface/internal/debug"
	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/grid"
	"github.com/grindlemire/go-surface/internal/palette"
	"github.com/grindlemire/go-surface/internal/scene"
)

// shutdownTimeout bounds how long the ws target waits for the HTTP server.
const shutdownTimeout = 2 * time.Second

func runRun(args []string) error {
	cfg, err := parseRunFlags(args)
	if err != nil {
		return err
	}
	defer debug.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, os.Stdin, os.Stdout)
}

// target is an opened presentation target. start, if set, launches the
// target's background work once the pipeline exists.
type target struct {
	sink  surface.Sink
	start func(ctx context.Context, g *errgroup.Group, p *surface.Pipeline, cancel context.CancelFunc)
}

// serve renders snapshots read from in until ctx is done, the input ends
// (when configured to exit on EOF) or the target fails.
func serve(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t, err := openTarget(cfg, out)
	if err != nil {
		return err
	}

	opts, err := pipelineOptions(cfg)
	if err != nil {
		t.sink.Close()
		return err
	}
	p, err := surface.NewPipeline(t.sink, opts...)
	if err != nil {
		t.sink.Close()
		return err
	}
	debug.Log("surface: serving %s target", cfg.Target)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.Run(ctx)
	})
	if t.start != nil {
		t.start(ctx, g, p, cancel)
	}
	g.Go(func() error {
		return feed(ctx, cfg, in, p, cancel)
	})

	err = g.Wait()
	if errors.Is(err, canvas.ErrWindowClosed) {
		return nil
	}
	return err
}

func openTarget(cfg Config, out io.Writer) (target, error) {
	switch cfg.Target {
	case targetTerminal:
		return openTerminal(out)

	case targetStdio:
		return target{sink: grid.NewSink(grid.NewLineTransport(out))}, nil

	case targetWS:
		return openHub(cfg), nil

	case targetTcell:
		s, err := cellscreen.Open()
		if err != nil {
			return target{}, err
		}
		return target{
			sink: s,
			start: func(_ context.Context, _ *errgroup.Group, p *surface.Pipeline, cancel context.CancelFunc) {
				// Returns once the pipeline closes the screen.
				go s.Watch(p.Resize, cancel)
			},
		}, nil

	case targetCanvas:
		return target{sink: canvas.New(canvas.Config{
			Title:      cfg.Canvas.Title,
			Columns:    cfg.Width,
			Rows:       cfg.Height,
			CellWidth:  cfg.Canvas.CellWidth,
			CellHeight: cfg.Canvas.CellHeight,
			FontSize:   cfg.Canvas.FontSize,
			FPS:        cfg.FrameRate,
			Background: cfg.Canvas.Background,
			Foreground: cfg.Foreground,
		})}, nil
	}
	return target{}, fmt.Errorf("unknown target %q", cfg.Target)
}

func openTerminal(out io.Writer) (target, error) {
	f, ok := out.(*os.File)
	if !ok {
		return target{}, surface.ErrNotTerminal
	}
	term, err := surface.OpenTerminal(f)
	if err != nil {
		return target{}, err
	}
	if err := term.Start(); err != nil {
		return target{}, err
	}
	r, err := term.Renderer()
	if err != nil {
		term.Restore()
		return target{}, err
	}
	return target{
		sink: r,
		start: func(ctx context.Context, _ *errgroup.Group, p *surface.Pipeline, _ context.CancelFunc) {
			surface.WatchResize(ctx, f, p.Resize)
		},
	}, nil
}

// openHub serves frames to WebSocket clients at /frames.
func openHub(cfg Config) target {
	hub := grid.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/frames", hub)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return target{
		sink: grid.NewSink(hub),
		start: func(ctx context.Context, g *errgroup.Group, _ *surface.Pipeline, _ context.CancelFunc) {
			g.Go(func() error {
				debug.Log("surface: listening on %s", cfg.Listen)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serving frames: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
		},
	}
}

func pipelineOptions(cfg Config) ([]surface.PipelineOption, error) {
	opts := []surface.PipelineOption{
		surface.WithFrameRate(cfg.FrameRate),
		surface.WithCoordBase(cfg.CoordBase),
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		opts = append(opts, surface.WithViewport(cfg.Width, cfg.Height))
	}
	if cfg.Foreground != "" {
		opts = append(opts, surface.WithDefaultForeground(draw.Color(cfg.Foreground)))
	}
	if len(cfg.Palette) > 0 {
		q, err := palette.NewQuantizer(cfg.Palette)
		if err != nil {
			return nil, err
		}
		opts = append(opts, surface.WithColorMapper(draw.StringMapper(q.Map)))
	}
	return opts, nil
}

// feed commits every snapshot read from in. Malformed snapshots are logged
// and skipped. Reading happens on a separate goroutine since a blocked read
// on stdin cannot be interrupted.
func feed(ctx context.Context, cfg Config, in io.Reader, p *surface.Pipeline, cancel context.CancelFunc) error {
	snaps := make(chan *scene.Node)
	readErr := make(chan error, 1)
	go func() {
		r := scene.NewReader(in)
		for {
			n, err := r.Next()
			if errors.Is(err, scene.ErrMalformed) || errors.Is(err, scene.ErrEmptySnapshot) {
				debug.Log("surface: skipping snapshot: %v", err)
				continue
			}
			if err != nil {
				readErr <- err
				return
			}
			select {
			case snaps <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case n := <-snaps:
			p.Commit(n)

		case err := <-readErr:
			if !errors.Is(err, io.EOF) {
				return err
			}
			debug.Log("surface: input closed")
			if !cfg.exitOnEOF() {
				<-ctx.Done()
				return nil
			}
			if err := p.Flush(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			cancel()
			return nil
		}
	}
}
