// Package scene turns parsed circuit geometry into drawable shapes.
//
// A [Scene] holds terminal rectangles and cell rectangles in parse order.
// Only terminals define the drawing bounds: cells never extend them, however
// far away they are placed. [Bounds.Square] widens the shorter side of the
// bounds so the viewport has the same span on both axes and stays centered
// on the terminals.
//
//	s := scene.Build(geom)
//	b, err := s.Bounds()
//	if err != nil {
//	    return err // EMPTY_SCENE: no terminals
//	}
//	vp := b.Square()
package scene
