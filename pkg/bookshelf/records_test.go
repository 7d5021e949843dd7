package bookshelf

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/placeview/pkg/errors"
)

const sampleNodes = `UCLA nodes 1.0
# Created by hand

NumNodes : 3
NumTerminals : 1
	o0	8	12
	o1	40	40	terminal
	o2	4	6
`

const samplePlacements = `UCLA pl 1.0

o0	100	200	:	N
o1	0	0	:	N	/FIXED
o2	-4.5	7	:	N
`

func TestParseNodes(t *testing.T) {
	recs, err := ParseNodes(strings.NewReader(sampleNodes), "c.nodes", false)
	if err != nil {
		t.Fatalf("ParseNodes() error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}

	want := []ShapeRecord{
		{ID: "o0", Width: 8, Height: 12, Class: Cell, Line: 6},
		{ID: "o1", Width: 40, Height: 40, IsTerminal: true, Class: Terminal, Line: 7},
		{ID: "o2", Width: 4, Height: 6, Class: Cell, Line: 8},
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("recs[%d] = %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestParseNodesRecordShapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ShapeRecord
		skip bool
	}{
		{name: "leading id field", line: "id1 o 0 10 20 terminal", want: ShapeRecord{ID: "o", Width: 10, Height: 20, IsTerminal: true}},
		{name: "plain with extra numbers", line: "id2 o2 0 0 4 4", want: ShapeRecord{ID: "o2", Width: 4, Height: 4}},
		{name: "terminal_NI marker", line: "\to5\t3\t3\tterminal_NI", want: ShapeRecord{ID: "o5", Width: 3, Height: 3, IsTerminal: true}},
		{name: "space delimited", line: "  o7  2.5  9", want: ShapeRecord{ID: "o7", Width: 2.5, Height: 9}},
		{name: "header", line: "NumNodes : 211447", skip: true},
		{name: "comment mentioning objects", line: "# o1 on the left", skip: true},
		{name: "word starting with o", line: "object count 3 4", skip: true},
		{name: "blank", line: "   ", skip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := ParseNodes(strings.NewReader(tt.line), "x", false)
			if err != nil {
				t.Fatalf("ParseNodes() error: %v", err)
			}
			if tt.skip {
				if len(recs) != 0 {
					t.Errorf("got %d records, want line skipped", len(recs))
				}
				return
			}
			if len(recs) != 1 {
				t.Fatalf("got %d records, want 1", len(recs))
			}
			got := recs[0]
			if got.ID != tt.want.ID || got.Width != tt.want.Width || got.Height != tt.want.Height || got.IsTerminal != tt.want.IsTerminal {
				t.Errorf("record = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseNodesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"non-numeric width", "\to0\tabc\t12\n", 1},
		{"missing height", "header\n\to0\t8\n", 2},
		{"garbage before terminal", "\to0\t8\t12x\tterminal\n", 1},
		{"NaN width", "\to0\tNaN\t10\tterminal\n", 1},
		{"infinite height", "header\n\to1\t5\tInf\n", 2},
		{"infinity spelled out", "\to1\t-infinity\t5\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNodes(strings.NewReader(tt.input), "bad.nodes", false)
			if !errors.Is(err, errors.ErrCodeMalformedRecord) {
				t.Fatalf("ParseNodes() error = %v, want MALFORMED_RECORD", err)
			}
			var re *errors.RecordError
			if !asRecordError(err, &re) {
				t.Fatalf("error %v does not carry a RecordError", err)
			}
			if re.File != "bad.nodes" || re.Line != tt.line {
				t.Errorf("RecordError = %+v, want bad.nodes:%d", re, tt.line)
			}
		})
	}
}

func TestParsePlacements(t *testing.T) {
	recs, err := ParsePlacements(strings.NewReader(samplePlacements), "c.pl", false)
	if err != nil {
		t.Fatalf("ParsePlacements() error: %v", err)
	}

	want := []PlacementRecord{
		{ID: "o0", X: 100, Y: 200, Class: Cell, Line: 3},
		{ID: "o1", X: 0, Y: 0, IsFixed: true, Class: Terminal, Line: 4},
		{ID: "o2", X: -4.5, Y: 7, Class: Cell, Line: 5},
	}
	if len(recs) != len(want) {
		t.Fatalf("len(recs) = %d, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("recs[%d] = %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestParsePlacementsSkipsAndFails(t *testing.T) {
	t.Run("indented lines skipped", func(t *testing.T) {
		recs, err := ParsePlacements(strings.NewReader(" o1 0 0\n\to2 1 1\n"), "x", false)
		if err != nil {
			t.Fatalf("ParsePlacements() error: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("got %d records, want 0", len(recs))
		}
	})

	t.Run("bare FIXED marker", func(t *testing.T) {
		recs, err := ParsePlacements(strings.NewReader("o1 0 0 FIXED\n"), "x", false)
		if err != nil {
			t.Fatalf("ParsePlacements() error: %v", err)
		}
		if !recs[0].IsFixed {
			t.Error("IsFixed = false, want true")
		}
	})

	t.Run("bad coordinate", func(t *testing.T) {
		_, err := ParsePlacements(strings.NewReader("o1\t1\ty\n"), "bad.pl", false)
		if !errors.Is(err, errors.ErrCodeMalformedRecord) {
			t.Errorf("error = %v, want MALFORMED_RECORD", err)
		}
	})

	for _, in := range []string{"o0\t0\tNaN\t:\tN\t/FIXED\n", "o1\tInf\t1\n", "o2\t1\t-Inf\n"} {
		t.Run("non-finite coordinate "+strings.Fields(in)[0], func(t *testing.T) {
			_, err := ParsePlacements(strings.NewReader(in), "bad.pl", false)
			if !errors.Is(err, errors.ErrCodeMalformedRecord) {
				t.Errorf("error = %v, want MALFORMED_RECORD", err)
			}
		})
	}

	t.Run("too few fields", func(t *testing.T) {
		_, err := ParsePlacements(strings.NewReader("o1\t1\n"), "bad.pl", false)
		if !errors.Is(err, errors.ErrCodeMalformedRecord) {
			t.Errorf("error = %v, want MALFORMED_RECORD", err)
		}
	})
}

func TestParseIdempotent(t *testing.T) {
	a, err := ParseNodes(strings.NewReader(sampleNodes), "c.nodes", true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseNodes(strings.NewReader(sampleNodes), "c.nodes", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	shapes, _ := ParseNodes(strings.NewReader(sampleNodes), "c.nodes", false)
	placements, _ := ParsePlacements(strings.NewReader(samplePlacements), "c.pl", false)

	var nb, pb bytes.Buffer
	if err := WriteNodes(&nb, shapes); err != nil {
		t.Fatal(err)
	}
	if err := WritePlacements(&pb, placements); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pb.String(), "o1\t0\t0\t:\tN\t/FIXED\n") {
		t.Errorf("placement output = %q", pb.String())
	}

	shapes2, err := ParseNodes(&nb, "rt.nodes", false)
	if err != nil {
		t.Fatal(err)
	}
	placements2, err := ParsePlacements(&pb, "rt.pl", false)
	if err != nil {
		t.Fatal(err)
	}
	g1 := NewGeometry(shapes, placements, false)
	g2 := NewGeometry(shapes2, placements2, false)
	if len(g1.CellSizes) != len(g2.CellSizes) || len(g1.TerminalAnchors) != len(g2.TerminalAnchors) {
		t.Errorf("round trip changed classification: %+v vs %+v", g1, g2)
	}
	for i := range g1.CellAnchors {
		if g1.CellAnchors[i] != g2.CellAnchors[i] {
			t.Errorf("CellAnchors[%d] = %+v, want %+v", i, g2.CellAnchors[i], g1.CellAnchors[i])
		}
	}
}

func asRecordError(err error, target **errors.RecordError) bool {
	return stderrors.As(err, target)
}
