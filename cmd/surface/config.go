package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-surface/internal/palette"
)

// Target names.
const (
	targetTerminal = "terminal"
	targetStdio    = "stdio"
	targetWS       = "ws"
	targetTcell    = "tcell"
	targetCanvas   = "canvas"
)

// Config is the run configuration. It is read from an optional TOML file;
// command-line flags override individual fields.
type Config struct {
	Target     string   `toml:"target"`
	Listen     string   `toml:"listen"`
	FrameRate  int      `toml:"frame_rate"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	CoordBase  int      `toml:"coord_base"`
	Foreground string   `toml:"foreground"`
	Palette    []string `toml:"palette"`
	ExitOnEOF  *bool    `toml:"exit_on_eof"`

	Canvas CanvasConfig `toml:"canvas"`
}

// CanvasConfig configures the canvas target window.
type CanvasConfig struct {
	Title      string `toml:"title"`
	CellWidth  int    `toml:"cell_width"`
	CellHeight int    `toml:"cell_height"`
	FontSize   int    `toml:"font_size"`
	Background string `toml:"background"`
}

func defaultConfig() Config {
	return Config{
		Target:    targetTerminal,
		Listen:    "127.0.0.1:7070",
		FrameRate: 60,
	}
}

// loadConfig reads path into cfg. Unknown keys are rejected so typos do not
// pass silently.
func loadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// parseRunFlags builds the run configuration from defaults, the optional
// config file and the flags that were set explicitly, in that order.
func parseRunFlags(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	target := fs.String("target", cfg.Target, "presentation target")
	listen := fs.String("listen", cfg.Listen, "WebSocket listen address")
	fps := fs.Int("fps", cfg.FrameRate, "terminal frame rate")
	width := fs.Int("width", 0, "viewport width")
	height := fs.Int("height", 0, "viewport height")
	coordBase := fs.Int("coord-base", 0, "coordinate origin (0 or 1)")
	fg := fs.String("fg", "", "default text color")
	pal := fs.String("palette", "", `"xterm16" or comma-separated palette colors`)
	exitOnEOF := fs.Bool("exit-on-eof", false, "stop once stdin is exhausted")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			cfg.Target = *target
		case "listen":
			cfg.Listen = *listen
		case "fps":
			cfg.FrameRate = *fps
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "coord-base":
			cfg.CoordBase = *coordBase
		case "fg":
			cfg.Foreground = *fg
		case "palette":
			cfg.Palette, err = parsePalette(*pal)
		case "exit-on-eof":
			cfg.ExitOnEOF = exitOnEOF
		}
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// parsePalette expands the palette flag value.
func parsePalette(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil, nil
	case "xterm16":
		return palette.Xterm16, nil
	}
	var out []string
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if _, ok := palette.Parse(c); !ok || c == "" {
			return nil, fmt.Errorf("invalid palette color %q", c)
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Config) validate() error {
	switch c.Target {
	case targetTerminal, targetStdio, targetWS, targetTcell, targetCanvas:
	default:
		return fmt.Errorf("unknown target %q", c.Target)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("viewport %dx%d must not be negative", c.Width, c.Height)
	}
	if c.CoordBase != 0 && c.CoordBase != 1 {
		return fmt.Errorf("coord_base must be 0 or 1, got %d", c.CoordBase)
	}
	// Local targets address their cells from zero.
	if c.CoordBase != 0 && (c.Target == targetTerminal || c.Target == targetTcell || c.Target == targetCanvas) {
		return fmt.Errorf("coord_base %d is not supported by the %s target", c.CoordBase, c.Target)
	}
	if c.Target == targetWS && c.Listen == "" {
		return fmt.Errorf("ws target needs a listen address")
	}
	return nil
}

// exitOnEOF reports whether the run should end when input is exhausted.
// Only the stdio target does so unless configured otherwise.
func (c Config) exitOnEOF() bool {
	if c.ExitOnEOF != nil {
		return *c.ExitOnEOF
	}
	return c.Target == targetStdio
}
