// Package config loads placeview settings from a TOML file.
//
// Every field is optional; unset fields keep their defaults. Example:
//
//	script = "./test/plotter_script.scr"
//	root   = "./test"
//
//	[style]
//	terminal_fill  = "#0000ff"
//	terminal_edge  = "#000000"
//	terminal_alpha = 0.6
//	edge_width     = 1.0
//	cell_color     = "#000000"
//	cell_alpha     = 0.3
//	marker_size    = 1.0
//
//	[canvas]
//	width  = 1000
//	height = 1000
//
//	[serve]
//	addr = "127.0.0.1:8080"
package config

import (
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/script"
)

const appName = "placeview"

// Config is the file-level configuration.
type Config struct {
	Script string `toml:"script"`
	Root   string `toml:"root"`
	Style  Style  `toml:"style"`
	Canvas Canvas `toml:"canvas"`
	Serve  Serve  `toml:"serve"`
}

// Style holds colors as hex strings.
type Style struct {
	TerminalFill  string  `toml:"terminal_fill"`
	TerminalEdge  string  `toml:"terminal_edge"`
	TerminalAlpha float64 `toml:"terminal_alpha"`
	EdgeWidth     float64 `toml:"edge_width"`
	CellColor     string  `toml:"cell_color"`
	CellAlpha     float64 `toml:"cell_alpha"`
	MarkerSize    float64 `toml:"marker_size"`
}

// Canvas is the raster size for file and server output.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Serve struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Script: script.DefaultPath,
		Root:   script.DefaultRoot,
		Style: Style{
			TerminalFill:  "#0000ff",
			TerminalEdge:  "#000000",
			TerminalAlpha: 0.6,
			EdgeWidth:     1,
			CellColor:     "#000000",
			CellAlpha:     0.3,
			MarkerSize:    1,
		},
		Canvas: Canvas{Width: 1000, Height: 1000},
		Serve:  Serve{Addr: "127.0.0.1:8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/placeview/config.toml, falling back
// to ~/.config/placeview/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means the
// default location, where a missing file is not an error. An explicit path
// that does not exist fails with CONFIG_MISSING.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeConfigMissing, err, "config file missing: %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if _, err := c.RenderStyle(); err != nil {
		return err
	}
	alphas := []struct {
		key string
		v   float64
	}{
		{"style.terminal_alpha", c.Style.TerminalAlpha},
		{"style.cell_alpha", c.Style.CellAlpha},
	}
	for _, a := range alphas {
		if !(a.v >= 0 && a.v <= 1) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be within [0, 1], got %g", a.key, a.v)
		}
	}
	if !finiteNonNegative(c.Style.EdgeWidth) || !finiteNonNegative(c.Style.MarkerSize) {
		return errors.New(errors.ErrCodeInvalidConfig, "style sizes must be finite and not negative")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// RenderStyle converts the hex colors into a render.Style.
func (c Config) RenderStyle() (render.Style, error) {
	st := render.DefaultStyle()
	var err error
	if st.Terminal.Fill, err = render.ParseColor(c.Style.TerminalFill); err != nil {
		return st, err
	}
	if st.Terminal.Edge, err = render.ParseColor(c.Style.TerminalEdge); err != nil {
		return st, err
	}
	if st.Cell.Color, err = render.ParseColor(c.Style.CellColor); err != nil {
		return st, err
	}
	st.Terminal.Alpha = c.Style.TerminalAlpha
	st.Terminal.EdgeWidth = c.Style.EdgeWidth
	st.Cell.Alpha = c.Style.CellAlpha
	st.Cell.Size = c.Style.MarkerSize
	return st, nil
}

// ScriptOptions returns the locator options implied by the configuration.
func (c Config) ScriptOptions() []script.Option {
	var opts []script.Option
	if c.Root != "" {
		opts = append(opts, script.WithRoot(c.Root))
	}
	if c.Script != "" {
		opts = append(opts, script.WithDefaultPath(c.Script))
	}
	return opts
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
