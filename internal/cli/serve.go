package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/render/web"
)

// serveCommand serves the drawn layout over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:               "serve [plot_script]",
		Short:             "Serve the layout as SVG, PNG and JSON over HTTP",
		Args:              maxOneScript,
		ValidArgsFunction: completeScript,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+web.DefaultAddr+")")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, args []string, addr string) error {
	ci, err := c.load(ctx, args)
	if err != nil {
		return err
	}
	st, err := c.style()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = c.cfg.Serve.Addr
	}

	logger := loggerFromContext(ctx)
	srv := web.New(
		web.WithAddr(addr),
		web.WithTitle(ci.Name()),
		web.WithSize(c.cfg.Canvas.Width, c.cfg.Canvas.Height),
		web.WithLogger(logger),
		web.WithReady(func(bound string) {
			printSuccess("Serving %s", StyleLink.Render("http://"+bound))
			printDetail("press Ctrl+C to stop")
		}),
	)

	sum, err := render.DrawContext(ctx, ci.Scene, srv, st)
	if err != nil {
		return err
	}
	printInfo("%d standard cells", sum.Points)

	if err := srv.Show(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
