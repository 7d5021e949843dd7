package render

import "github.com/matzehuels/placeview/pkg/scene"

// Camera maps layout coordinates onto a pixel canvas of Width x Height.
// The viewport is scaled uniformly to fit the shorter canvas side and
// centered; the y axis points up in layout space and down on screen.
type Camera struct {
	Viewport scene.Viewport
	Width    int
	Height   int
}

// NewCamera creates a camera for the given viewport and canvas size.
func NewCamera(vp scene.Viewport, width, height int) Camera {
	return Camera{Viewport: vp, Width: width, Height: height}
}

// Scale returns pixels per layout unit.
func (c Camera) Scale() float64 {
	span := c.Viewport.Span()
	if span <= 0 {
		return 1
	}
	return float64(min(c.Width, c.Height)) / span
}

// ToScreen converts a layout point to pixel coordinates.
func (c Camera) ToScreen(p scene.Point) (float64, float64) {
	s := c.Scale()
	center := c.Viewport.Center()
	x := (p.X-center.X)*s + float64(c.Width)/2
	y := float64(c.Height)/2 - (p.Y-center.Y)*s
	return x, y
}

// RectToScreen returns the top-left pixel corner and pixel size of r.
func (c Camera) RectToScreen(r scene.Rect) (x, y, w, h float64) {
	s := c.Scale()
	x, y = c.ToScreen(scene.Point{X: r.X, Y: r.Top()})
	return x, y, r.W * s, r.H * s
}
