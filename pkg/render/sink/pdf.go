package sink

import (
	"context"

	"github.com/matzehuels/placeview/pkg/render"
)

// PDF renders through SVG and converts the result with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type PDF struct {
	*SVG
}

// NewPDF creates a PDF sink.
func NewPDF(opts ...Option) *PDF {
	return &PDF{SVG: NewSVG(opts...)}
}

// Bytes converts the accumulated SVG to PDF.
func (p *PDF) Bytes(ctx context.Context) ([]byte, error) {
	svg, err := p.SVG.Bytes(ctx)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
