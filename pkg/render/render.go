package render

import (
	"context"
	"time"

	"github.com/matzehuels/placeview/pkg/observability"
	"github.com/matzehuels/placeview/pkg/scene"
)

// Summary reports what Draw emitted.
type Summary struct {
	Viewport  scene.Viewport `json:"viewport"`
	Terminals int            `json:"terminals"`
	Points    int            `json:"points"`
}

// Draw emits the scene into sink without showing it. It fails with
// EMPTY_SCENE before any call on sink when there are no terminals.
func Draw(s scene.Scene, sink Sink, st Style) (Summary, error) {
	return DrawContext(context.Background(), s, sink, st)
}

// DrawContext is Draw with a context passed to the observability hooks.
func DrawContext(ctx context.Context, s scene.Scene, sink Sink, st Style) (Summary, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, len(s.Terminals), len(s.Cells))
	start := time.Now()
	sum, err := draw(s, sink, st)
	hooks.OnRenderComplete(ctx, sum.Points, time.Since(start), err)
	return sum, err
}

func draw(s scene.Scene, sink Sink, st Style) (Summary, error) {
	b, err := s.Bounds()
	if err != nil {
		return Summary{}, err
	}
	vp := b.Square()
	sink.SetViewport(vp)

	for _, t := range s.Terminals {
		sink.DrawRect(t, st.Terminal)
	}

	centers := s.CellCenters()
	sink.DrawPoints(centers, st.Cell)

	return Summary{Viewport: vp, Terminals: len(s.Terminals), Points: len(centers)}, nil
}

// Render draws the scene and then shows it. The render hooks cover the draw
// calls only.
func Render(ctx context.Context, s scene.Scene, sink Sink, st Style) (Summary, error) {
	sum, err := DrawContext(ctx, s, sink, st)
	if err != nil {
		return sum, err
	}
	return sum, sink.Show(ctx)
}
