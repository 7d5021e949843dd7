package scene

import (
	"github.com/matzehuels/placeview/pkg/bookshelf"
)

// Point is a position in layout coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by its lower-left corner and extent.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Center returns the center of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Mismatch records a class whose size and anchor counts differ.
type Mismatch struct {
	Class   bookshelf.Class `json:"class"`
	Sizes   int             `json:"sizes"`
	Anchors int             `json:"anchors"`
}

// Scene is the drawable content of a circuit. It is read-only once built.
type Scene struct {
	Terminals  []Rect     `json:"terminals"`
	Cells      []Rect     `json:"cells"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// Build pairs sizes with anchors by position. When a class has more sizes
// than anchors (or the reverse) the surplus is dropped and reported in
// Mismatches.
func Build(g *bookshelf.Geometry) Scene {
	var s Scene
	var m *Mismatch
	s.Terminals, m = pair(g.TerminalSizes, g.TerminalAnchors, bookshelf.Terminal)
	if m != nil {
		s.Mismatches = append(s.Mismatches, *m)
	}
	s.Cells, m = pair(g.CellSizes, g.CellAnchors, bookshelf.Cell)
	if m != nil {
		s.Mismatches = append(s.Mismatches, *m)
	}
	return s
}

func pair(sizes []bookshelf.Size, anchors []bookshelf.Point, c bookshelf.Class) ([]Rect, *Mismatch) {
	n := min(len(sizes), len(anchors))
	rects := make([]Rect, n)
	for i := range n {
		rects[i] = Rect{X: anchors[i].X, Y: anchors[i].Y, W: sizes[i].W, H: sizes[i].H}
	}
	if len(sizes) != len(anchors) {
		return rects, &Mismatch{Class: c, Sizes: len(sizes), Anchors: len(anchors)}
	}
	return rects, nil
}

// CellCenters returns the center of every cell, in order.
func (s Scene) CellCenters() []Point {
	pts := make([]Point, len(s.Cells))
	for i, c := range s.Cells {
		pts[i] = c.Center()
	}
	return pts
}
