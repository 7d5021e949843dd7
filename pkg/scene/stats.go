package scene

import (
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/placeview/pkg/bookshelf"
)

// Stats summarizes a parsed circuit.
type Stats struct {
	Objects         int `json:"objects"`
	MarkedTerminals int `json:"marked_terminals"`
	FixedPlacements int `json:"fixed_placements"`

	// Drawn counts follow the detail-mode classification.
	Terminals int `json:"terminals"`
	Cells     int `json:"cells"`

	// Averages over shapes not marked as terminals.
	AvgCellWidth  float64 `json:"avg_cell_width"`
	AvgCellHeight float64 `json:"avg_cell_height"`
	AvgCellArea   float64 `json:"avg_cell_area"`

	Bounds   *Bounds   `json:"bounds,omitempty"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

// Summarize computes statistics for g and its scene. Bounds and Viewport are
// nil when the scene has no terminals.
func Summarize(g *bookshelf.Geometry, s Scene) Stats {
	st := Stats{
		Objects:   len(g.Shapes),
		Terminals: len(s.Terminals),
		Cells:     len(s.Cells),
	}

	var ws, hs, areas []float64
	for _, r := range g.Shapes {
		if r.IsTerminal {
			st.MarkedTerminals++
			continue
		}
		ws = append(ws, r.Width)
		hs = append(hs, r.Height)
		areas = append(areas, r.Width*r.Height)
	}
	for _, p := range g.Placements {
		if p.IsFixed {
			st.FixedPlacements++
		}
	}
	if len(ws) > 0 {
		st.AvgCellWidth = stat.Mean(ws, nil)
		st.AvgCellHeight = stat.Mean(hs, nil)
		st.AvgCellArea = stat.Mean(areas, nil)
	}

	if b, err := s.Bounds(); err == nil {
		vp := b.Square()
		st.Bounds, st.Viewport = &b, &vp
	}
	return st
}
