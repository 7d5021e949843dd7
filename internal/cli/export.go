package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/render/sink"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string   // output file (single format) or base path
	formats []string // svg, png, pdf, json
	width   int      // canvas width in pixels, 0 = config
	height  int      // canvas height in pixels, 0 = config
}

// exportCommand writes the drawn layout to files instead of a window.
func (c *CLI) exportCommand() *cobra.Command {
	var formatsStr string
	var opts exportOpts

	cmd := &cobra.Command{
		Use:               "export [plot_script]",
		Short:             "Render the layout to SVG, PNG, PDF or JSON files",
		Args:              maxOneScript,
		ValidArgsFunction: completeScript,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := sink.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default: circuit name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.MarkFlagFilename("output", sink.Formats...)

	return cmd
}

func (c *CLI) runExport(ctx context.Context, args []string, opts exportOpts) error {
	ci, err := c.load(ctx, args)
	if err != nil {
		return err
	}
	st, err := c.style()
	if err != nil {
		return err
	}

	width, height := c.cfg.Canvas.Width, c.cfg.Canvas.Height
	if opts.width > 0 && opts.height > 0 {
		width, height = opts.width, opts.height
	}
	base := opts.output
	if base == "" {
		base = ci.Name()
	}

	logger := loggerFromContext(ctx)
	var points int
	for _, format := range opts.formats {
		enc, err := sink.ByFormat(format, sink.WithSize(width, height), sink.WithTitle(ci.Name()))
		if err != nil {
			return err
		}
		sum, err := render.Render(ctx, ci.Scene, enc, st)
		if err != nil {
			return err
		}
		points = sum.Points

		data, err := enc.Bytes(ctx)
		if err != nil {
			return err
		}
		path := outputPath(base, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		logger.Debug("wrote output", "format", format, "bytes", len(data))
		printFile(path)
	}

	printInfo("%d standard cells", points)
	return nil
}

// outputPath returns the file for one format. A single-format export keeps
// an output name that already carries the extension; otherwise the extension
// is appended to the base with any existing one removed.
func outputPath(base, format string, multiple bool) string {
	ext := "." + strings.ToLower(format)
	if !multiple && strings.EqualFold(filepath.Ext(base), ext) {
		return base
	}
	if multiple {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + ext
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	if len(out) == 0 {
		return []string{sink.FormatSVG}
	}
	return out
}
