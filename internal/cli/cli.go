package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/placeview/pkg/bookshelf"
	"github.com/matzehuels/placeview/pkg/buildinfo"
	"github.com/matzehuels/placeview/pkg/config"
	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/observability"
	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/render/window"
	"github.com/matzehuels/placeview/pkg/scene"
	"github.com/matzehuels/placeview/pkg/script"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "placeview"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// NewViewer creates the on-screen sink used by the root command.
	// Tests replace it to avoid opening a window.
	NewViewer func(title string) render.Sink

	configPath string
	root       string
	detail     bool
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		NewViewer: func(title string) render.Sink {
			return window.New(window.WithTitle(title), window.WithExit(exitAfterWindow))
		},
		cfg: config.Default(),
	}
}

// SetLogLevel updates the logger's level. Caller reporting follows debug.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportCaller(level <= log.DebugLevel)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it shows the layout in a window.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   script.Usage,
		Short: "placeview draws the placement of a circuit",
		Long: `placeview reads a plotter script naming a circuit, parses its Bookshelf .nodes and
_solution.pl files and draws terminals as rectangles and standard cells as points.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		Args:              maxOneScript,
		ValidArgsFunction: completeScript,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			observability.SetPipelineHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/placeview/config.toml)")
	root.PersistentFlags().StringVar(&c.root, "root", "", "directory holding one subdirectory per circuit (default ./test)")
	root.PersistentFlags().BoolVar(&c.detail, "detail", false, "draw every object as a rectangle")
	_ = root.MarkPersistentFlagFilename("config", "toml")
	_ = root.MarkPersistentFlagDirname("root")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// maxOneScript rejects more than one positional argument with a USAGE error.
func maxOneScript(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New(errors.ErrCodeUsage, "too many arguments. Usage: %s", script.Usage)
	}
	return nil
}

// =============================================================================
// Circuit Loading
// =============================================================================

// circuit is everything a command needs after parsing.
type circuit struct {
	Script   string
	Config   script.Config
	Geometry *bookshelf.Geometry
	Scene    scene.Scene
}

// Name returns the circuit name derived from the node file.
func (ci *circuit) Name() string {
	return strings.TrimSuffix(filepath.Base(ci.Config.DimensionsFile), ".nodes")
}

// load locates the script, prints the resolved file names, parses both
// geometry files and builds the scene. Count mismatches are logged as
// warnings.
func (c *CLI) load(ctx context.Context, args []string) (*circuit, error) {
	logger := loggerFromContext(ctx)

	opts := c.cfg.ScriptOptions()
	if c.root != "" {
		opts = append(opts, script.WithRoot(c.root))
	}
	cfg, path, err := script.Locate(args, opts...)
	if err != nil {
		return nil, err
	}
	if c.detail {
		cfg.DetailMode = true
	}
	logger.Debug("script located", "path", path, "detail", cfg.DetailMode)

	printFile(cfg.DimensionsFile)
	printFile(cfg.PlacementFile)

	spinner := newSpinnerWithContext(ctx, "Reading geometry...")
	spinner.Start()
	prog := newProgress(logger)
	g, err := bookshelf.ReadContext(ctx, cfg)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Parsed geometry", geometryFields(g)...)

	sc := scene.Build(g)
	warnMismatches(logger, sc.Mismatches)
	logger.Debug("scene built", "terminals", len(sc.Terminals), "cells", len(sc.Cells))

	return &circuit{Script: path, Config: cfg, Geometry: g, Scene: sc}, nil
}

// style returns the render style from the loaded configuration.
func (c *CLI) style() (render.Style, error) {
	return c.cfg.RenderStyle()
}
