// Package cli implements the placeview command-line interface.
//
// The root command locates a plotter script, parses the circuit it names,
// and shows the layout in a window. Subcommands render the same scene to
// files, print statistics, or serve it over HTTP. The CLI is built using
// cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - placeview [plot_script]: show the layout in a window
//   - export: write SVG, PNG, PDF or JSON files
//   - stats: print counts, cell averages, bounds and viewport
//   - serve: serve the layout over HTTP until interrupted
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so library calls stay free of globals.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/placeview/pkg/bookshelf"
	"github.com/matzehuels/placeview/pkg/scene"
)

// newLogger returns a logger writing to w at level with "HH:MM:SS.ms"
// timestamps. Debug loggers also report the caller.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one loading step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Parsed geometry (12ms)".
// keyvals are appended as structured fields.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(fmt.Sprintf("%s (%s)", msg, elapsed), keyvals...)
}

// geometryFields summarizes parsed geometry for a log line.
func geometryFields(g *bookshelf.Geometry) []any {
	return []any{
		"terminals", len(g.TerminalSizes),
		"cells", len(g.CellSizes),
		"detail", g.DetailMode,
	}
}

// warnMismatches logs one warning per class whose size and anchor counts
// differ. Drawing continues with the paired prefix.
func warnMismatches(l *log.Logger, ms []scene.Mismatch) {
	for _, m := range ms {
		l.Warn("record count mismatch, pairing by position",
			"class", m.Class, "sizes", m.Sizes, "anchors", m.Anchors,
			"dropped", max(m.Sizes, m.Anchors)-min(m.Sizes, m.Anchors))
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
