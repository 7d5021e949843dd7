package render

import (
	"context"

	"github.com/matzehuels/placeview/pkg/scene"
)

// Sink receives drawing calls. Coordinates are layout units; sinks choose
// their own pixel mapping, usually through a [Camera].
type Sink interface {
	// SetViewport fixes the visible region and is called before any draw.
	SetViewport(vp scene.Viewport)
	// DrawRect draws one filled, outlined rectangle.
	DrawRect(r scene.Rect, st RectStyle)
	// DrawPoints draws all markers of a layer in one batch.
	DrawPoints(pts []scene.Point, st PointStyle)
	// Show presents the drawing. Interactive sinks block until dismissed.
	Show(ctx context.Context) error
}
