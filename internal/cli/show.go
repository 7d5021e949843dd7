package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/matzehuels/placeview/pkg/render"
)

// runShow draws the circuit into the viewer and shows it. With the Gio
// viewer this does not return; the process exits when the window closes.
func (c *CLI) runShow(ctx context.Context, args []string) error {
	ci, err := c.load(ctx, args)
	if err != nil {
		return err
	}
	st, err := c.style()
	if err != nil {
		return err
	}

	viewer := c.NewViewer(appName + " - " + ci.Name())
	sum, err := render.DrawContext(ctx, ci.Scene, viewer, st)
	if err != nil {
		return err
	}
	printInfo("%d standard cells", sum.Points)
	loggerFromContext(ctx).Debug("viewport", "xmin", sum.Viewport.XMin, "xmax", sum.Viewport.XMax,
		"ymin", sum.Viewport.YMin, "ymax", sum.Viewport.YMax)

	return viewer.Show(ctx)
}

// exitAfterWindow ends the process once the viewer window is gone, using the
// same exit codes as main.
func exitAfterWindow(err error) {
	switch {
	case err == nil:
		os.Exit(0)
	case stderrors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
