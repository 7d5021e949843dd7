package bookshelf

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/observability"
	"github.com/matzehuels/placeview/pkg/script"
)

func writeCircuit(t *testing.T, nodes, pl string) script.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := script.Config{
		DimensionsFile: filepath.Join(dir, "c.nodes"),
		PlacementFile:  filepath.Join(dir, "c_solution.pl"),
	}
	if err := os.WriteFile(cfg.DimensionsFile, []byte(nodes), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.PlacementFile, []byte(pl), 0644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRead(t *testing.T) {
	cfg := writeCircuit(t, sampleNodes, samplePlacements)

	g, err := Read(cfg)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(g.Shapes) != 3 || len(g.Placements) != 3 {
		t.Fatalf("records = %d/%d, want 3/3", len(g.Shapes), len(g.Placements))
	}
	if len(g.TerminalSizes) != 1 || len(g.TerminalAnchors) != 1 {
		t.Errorf("terminals = %d sizes, %d anchors, want 1/1", len(g.TerminalSizes), len(g.TerminalAnchors))
	}
	if len(g.CellSizes) != 2 || len(g.CellAnchors) != 2 {
		t.Errorf("cells = %d sizes, %d anchors, want 2/2", len(g.CellSizes), len(g.CellAnchors))
	}
	if g.CellSizes[1] != (Size{W: 4, H: 6}) {
		t.Errorf("CellSizes[1] = %+v", g.CellSizes[1])
	}
	if g.CellAnchors[1] != (Point{X: -4.5, Y: 7}) {
		t.Errorf("CellAnchors[1] = %+v", g.CellAnchors[1])
	}
}

func TestReadMissingFiles(t *testing.T) {
	cfg := writeCircuit(t, sampleNodes, samplePlacements)

	t.Run("node file", func(t *testing.T) {
		c := cfg
		c.DimensionsFile = filepath.Join(filepath.Dir(cfg.DimensionsFile), "none.nodes")
		_, err := Read(c)
		if !errors.Is(err, errors.ErrCodeInputFileMissing) {
			t.Fatalf("Read() error = %v, want INPUT_FILE_MISSING", err)
		}
		if !strings.Contains(err.Error(), "node file") {
			t.Errorf("error %q does not name the node file", err)
		}
	})

	t.Run("placement file", func(t *testing.T) {
		c := cfg
		c.PlacementFile = filepath.Join(filepath.Dir(cfg.PlacementFile), "none.pl")
		_, err := Read(c)
		if !errors.Is(err, errors.ErrCodeInputFileMissing) {
			t.Fatalf("Read() error = %v, want INPUT_FILE_MISSING", err)
		}
		if !strings.Contains(err.Error(), "placement file") {
			t.Errorf("error %q does not name the placement file", err)
		}
	})

	t.Run("unnamed circuit", func(t *testing.T) {
		_, err := Read(script.Config{})
		if !errors.Is(err, errors.ErrCodeInputFileMissing) {
			t.Errorf("Read() error = %v, want INPUT_FILE_MISSING", err)
		}
	})
}

func TestReadMalformedAborts(t *testing.T) {
	cfg := writeCircuit(t, "\to0\t8\tx\n", samplePlacements)
	g, err := Read(cfg)
	if !errors.Is(err, errors.ErrCodeMalformedRecord) {
		t.Fatalf("Read() error = %v, want MALFORMED_RECORD", err)
	}
	if g != nil {
		t.Error("Read() returned geometry alongside an error")
	}
}

func TestDetailModeReclassifies(t *testing.T) {
	aggregate := writeCircuit(t, sampleNodes, samplePlacements)
	detail := aggregate
	detail.DetailMode = true

	ga, err := Read(aggregate)
	if err != nil {
		t.Fatal(err)
	}
	gd, err := Read(detail)
	if err != nil {
		t.Fatal(err)
	}

	if len(gd.TerminalSizes) < len(ga.TerminalSizes) {
		t.Errorf("detail terminals %d < aggregate %d", len(gd.TerminalSizes), len(ga.TerminalSizes))
	}
	if len(gd.CellSizes) > len(ga.CellSizes) {
		t.Errorf("detail cells %d > aggregate %d", len(gd.CellSizes), len(ga.CellSizes))
	}
	if len(gd.CellSizes) != 0 || len(gd.CellAnchors) != 0 {
		t.Errorf("detail mode left %d cells", len(gd.CellSizes))
	}

	totalA := len(ga.TerminalSizes) + len(ga.CellSizes)
	totalD := len(gd.TerminalSizes) + len(gd.CellSizes)
	if totalA != totalD {
		t.Errorf("object count changed across modes: %d vs %d", totalA, totalD)
	}
	for i, s := range ga.Shapes {
		if s.IsTerminal != gd.Shapes[i].IsTerminal {
			t.Errorf("raw terminal flag of %s changed with detail mode", s.ID)
		}
	}
}

func TestPositionalCoupling(t *testing.T) {
	g, err := Read(writeCircuit(t, sampleNodes, samplePlacements))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.TerminalSizes) != len(g.TerminalAnchors) {
		t.Errorf("terminal sizes %d != anchors %d", len(g.TerminalSizes), len(g.TerminalAnchors))
	}
	if len(g.CellSizes) != len(g.CellAnchors) {
		t.Errorf("cell sizes %d != anchors %d", len(g.CellSizes), len(g.CellAnchors))
	}

	// Swapping the two cell lines in the placement file swaps the anchors;
	// identifiers are not used to pair them back up.
	swapped := "o2\t-4.5\t7\t:\tN\no1\t0\t0\t:\tN\t/FIXED\no0\t100\t200\t:\tN\n"
	gs, err := Read(writeCircuit(t, sampleNodes, swapped))
	if err != nil {
		t.Fatal(err)
	}
	if gs.CellAnchors[0] != g.CellAnchors[1] || gs.CellAnchors[1] != g.CellAnchors[0] {
		t.Errorf("anchors = %+v, want reversed %+v", gs.CellAnchors, g.CellAnchors)
	}
	if gs.CellSizes[0] != g.CellSizes[0] {
		t.Errorf("sizes moved: %+v vs %+v", gs.CellSizes, g.CellSizes)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		marked, detail bool
		want           Class
	}{
		{false, false, Cell},
		{true, false, Terminal},
		{false, true, Terminal},
		{true, true, Terminal},
	}
	for _, tt := range tests {
		if got := Classify(tt.marked, tt.detail); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.marked, tt.detail, got, tt.want)
		}
	}
}

type parseEvents struct {
	observability.NoopPipelineHooks
	events []string
}

func (p *parseEvents) OnParseStart(_ context.Context, kind, _ string) {
	p.events = append(p.events, "start "+kind)
}

func (p *parseEvents) OnParseComplete(_ context.Context, kind, _ string, records int, _ time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = string(errors.GetCode(err))
	}
	p.events = append(p.events, "done "+kind+" "+status+" "+strconv.Itoa(records))
}

func TestReadContextHooks(t *testing.T) {
	hooks := &parseEvents{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	cfg := writeCircuit(t, sampleNodes, samplePlacements)
	if _, err := ReadContext(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	cfg.PlacementFile += ".missing"
	if _, err := ReadContext(context.Background(), cfg); err == nil {
		t.Fatal("ReadContext() with missing placement file returned nil")
	}

	want := []string{
		"start node", "done node ok 3", "start placement", "done placement ok 3",
		"start node", "done node ok 3", "start placement", "done placement INPUT_FILE_MISSING 0",
	}
	if strings.Join(hooks.events, "|") != strings.Join(want, "|") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}
