package scene

import (
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/placeview/pkg/errors"
)

// Bounds is an axis-aligned region.
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Width returns the horizontal span.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical span.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint on both axes.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Viewport is a square region used to draw a scene at uniform scale.
type Viewport Bounds

// Span returns the common side length.
func (v Viewport) Span() float64 { return v.XMax - v.XMin }

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Point { return Bounds(v).Center() }

// Bounds returns the region covered by the terminal rectangles. Cells are
// not considered. A scene without terminals has no bounds.
func (s Scene) Bounds() (Bounds, error) {
	if len(s.Terminals) == 0 {
		return Bounds{}, errors.New(errors.ErrCodeEmptyScene, "no terminals to derive bounds from")
	}

	n := len(s.Terminals)
	left, right := make([]float64, n), make([]float64, n)
	bottom, top := make([]float64, n), make([]float64, n)
	for i, t := range s.Terminals {
		left[i], right[i] = t.X, t.Right()
		bottom[i], top[i] = t.Y, t.Top()
	}
	return Bounds{
		XMin: floats.Min(left),
		XMax: floats.Max(right),
		YMin: floats.Min(bottom),
		YMax: floats.Max(top),
	}, nil
}

// Square returns the viewport centered on b whose side is the larger of the
// two spans.
func (b Bounds) Square() Viewport {
	span := max(b.Width(), b.Height())
	c := b.Center()
	return Viewport{
		XMin: c.X - span/2,
		XMax: c.X + span/2,
		YMin: c.Y - span/2,
		YMax: c.Y + span/2,
	}
}
