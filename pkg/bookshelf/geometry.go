package bookshelf

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/observability"
	"github.com/matzehuels/placeview/pkg/script"
)

// Size is the extent of an object.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Point is a lower-left anchor.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry is the parsed content of a circuit: the raw records in file order
// and four ordered lists split by class. Entries of TerminalSizes and
// TerminalAnchors with the same index describe the same object, as do
// CellSizes and CellAnchors.
type Geometry struct {
	Shapes     []ShapeRecord     `json:"shapes"`
	Placements []PlacementRecord `json:"placements"`

	TerminalSizes   []Size  `json:"terminal_sizes"`
	TerminalAnchors []Point `json:"terminal_anchors"`
	CellSizes       []Size  `json:"cell_sizes"`
	CellAnchors     []Point `json:"cell_anchors"`

	DetailMode bool `json:"detail_mode"`
}

// NewGeometry splits classified records into the four ordered lists.
func NewGeometry(shapes []ShapeRecord, placements []PlacementRecord, detail bool) *Geometry {
	g := &Geometry{Shapes: shapes, Placements: placements, DetailMode: detail}
	for _, s := range shapes {
		sz := Size{W: s.Width, H: s.Height}
		if s.Class == Terminal {
			g.TerminalSizes = append(g.TerminalSizes, sz)
		} else {
			g.CellSizes = append(g.CellSizes, sz)
		}
	}
	for _, p := range placements {
		pt := Point{X: p.X, Y: p.Y}
		if p.Class == Terminal {
			g.TerminalAnchors = append(g.TerminalAnchors, pt)
		} else {
			g.CellAnchors = append(g.CellAnchors, pt)
		}
	}
	return g
}

// Read parses the node and placement files named by cfg. The node file is
// read completely before the placement file is opened.
func Read(cfg script.Config) (*Geometry, error) {
	return ReadContext(context.Background(), cfg)
}

// ReadContext is Read with a context passed to the observability hooks.
func ReadContext(ctx context.Context, cfg script.Config) (*Geometry, error) {
	shapes, err := readFile(ctx, cfg.DimensionsFile, "node", func(f *os.File) ([]ShapeRecord, error) {
		return ParseNodes(f, cfg.DimensionsFile, cfg.DetailMode)
	})
	if err != nil {
		return nil, err
	}
	placements, err := readFile(ctx, cfg.PlacementFile, "placement", func(f *os.File) ([]PlacementRecord, error) {
		return ParsePlacements(f, cfg.PlacementFile, cfg.DetailMode)
	})
	if err != nil {
		return nil, err
	}
	return NewGeometry(shapes, placements, cfg.DetailMode), nil
}

func readFile[T any](ctx context.Context, path, kind string, parse func(*os.File) ([]T, error)) ([]T, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, kind, path)
	start := time.Now()

	recs, err := func() ([]T, error) {
		f, err := openInput(path, kind)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parse(f)
	}()

	hooks.OnParseComplete(ctx, kind, path, len(recs), time.Since(start), err)
	return recs, err
}

func openInput(path, kind string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) || path == "" {
			return nil, errors.New(errors.ErrCodeInputFileMissing, "%s file missing: %s", kind, path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputFileMissing, err, "open %s file", kind)
	}
	if info, err := f.Stat(); err == nil && info.IsDir() {
		f.Close()
		return nil, errors.New(errors.ErrCodeInputFileMissing, "%s file missing: %s is a directory", kind, path)
	}
	return f, nil
}
