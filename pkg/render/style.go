package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/placeview/pkg/errors"
)

// RectStyle styles terminal rectangles. Alpha applies to fill and edge.
type RectStyle struct {
	Fill      color.NRGBA
	Edge      color.NRGBA
	Alpha     float64
	EdgeWidth float64 // pixels
}

// PointStyle styles cell markers. Size is the marker side in pixels.
type PointStyle struct {
	Color color.NRGBA
	Alpha float64
	Size  float64
}

// Style groups the styles of both layers.
type Style struct {
	Terminal RectStyle
	Cell     PointStyle
}

// DefaultStyle returns blue terminals with a black outline at 0.6 opacity and
// tiny faint black cell markers.
func DefaultStyle() Style {
	return Style{
		Terminal: RectStyle{
			Fill:      color.NRGBA{B: 0xff, A: 0xff},
			Edge:      color.NRGBA{A: 0xff},
			Alpha:     0.6,
			EdgeWidth: 1,
		},
		Cell: PointStyle{
			Color: color.NRGBA{A: 0xff},
			Alpha: 0.3,
			Size:  1,
		},
	}
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
