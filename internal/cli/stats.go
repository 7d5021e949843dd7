package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/placeview/pkg/scene"
)

// statsCommand prints counts, cell averages and the derived viewport.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "stats [plot_script]",
		Short:             "Show circuit statistics without drawing",
		Args:              maxOneScript,
		ValidArgsFunction: completeScript,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print statistics as JSON")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, args []string, asJSON bool) error {
	ci, err := c.load(ctx, args)
	if err != nil {
		return err
	}
	st := scene.Summarize(ci.Geometry, ci.Scene)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	printNewline()
	printKeyValue("Circuit", StyleHighlight.Render(ci.Name()))
	printKeyValue("Detail", fmt.Sprint(ci.Config.DetailMode))
	printKeyValue("Objects", fmt.Sprintf("%d (%d marked terminal, %d fixed)", st.Objects, st.MarkedTerminals, st.FixedPlacements))
	printKeyValue("Terminals", StyleNumber.Render(fmt.Sprint(st.Terminals)))
	printKeyValue("Cells", StyleNumber.Render(fmt.Sprint(st.Cells)))
	printKeyValue("Avg cell", fmt.Sprintf("%.3g x %.3g (area %.3g)", st.AvgCellWidth, st.AvgCellHeight, st.AvgCellArea))
	if st.Bounds != nil {
		b, vp := st.Bounds, st.Viewport
		printKeyValue("Bounds", fmt.Sprintf("x [%g, %g]  y [%g, %g]", b.XMin, b.XMax, b.YMin, b.YMax))
		printKeyValue("Viewport", fmt.Sprintf("x [%g, %g]  y [%g, %g]", vp.XMin, vp.XMax, vp.YMin, vp.YMax))
	} else {
		printWarning("no terminals: nothing to draw")
	}
	for _, m := range ci.Scene.Mismatches {
		printWarning("%s: %d sizes, %d anchors", m.Class, m.Sizes, m.Anchors)
	}
	return nil
}
