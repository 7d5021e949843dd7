package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/scene"
)

// sample has one 10x20 terminal at the origin and one 4x4 cell at (5,5).
// Its square viewport is x [-5,15], y [0,20], so on a 1000px canvas one
// layout unit is 50px.
var sample = scene.Scene{
	Terminals: []scene.Rect{{X: 0, Y: 0, W: 10, H: 20}},
	Cells:     []scene.Rect{{X: 5, Y: 5, W: 4, H: 4}},
}

func drawScene(t *testing.T, e Encoder) []byte {
	t.Helper()
	ctx := context.Background()
	if _, err := render.Render(ctx, sample, e, render.DefaultStyle()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	data, err := e.Bytes(ctx)
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	return data
}

func TestByFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"PNG", false},
		{"pdf", false},
		{"json", false},
		{"gif", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := ByFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ByFormat(%q) error = %v, want INVALID_FORMAT", tt.format, err)
				}
				return
			}
			if err != nil || e == nil {
				t.Errorf("ByFormat(%q) = %v, %v", tt.format, e, err)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("ValidateFormats() error: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "bmp"}); err == nil {
		t.Error("ValidateFormats() accepted bmp")
	}
}

func TestFmtNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{250, "250"},
		{0.5, "0.5"},
		{1.234, "1.23"},
		{-0.001, "0"},
		{-12.5, "-12.5"},
	}
	for _, tt := range tests {
		if got := fmtNum(tt.in); got != tt.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSVG(t *testing.T) {
	svg := string(drawScene(t, NewSVG(WithTitle("ibm01 & co"))))

	for _, want := range []string{
		`viewBox="0 0 1000 1000"`,
		`<title>ibm01 &amp; co</title>`,
		`<rect x="250" y="0" width="500" height="1000" fill="#0000ff" stroke="#000000"`,
		`opacity="0.6"`,
		`d="M599.5 649.5h1v1h-1z"`,
		`fill-opacity="0.3"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q\n%s", want, svg)
		}
	}
	if n := strings.Count(svg, "<path"); n != 1 {
		t.Errorf("svg has %d <path> elements, want 1", n)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestSVGNoCellsNoPath(t *testing.T) {
	e := NewSVG()
	s := scene.Scene{Terminals: sample.Terminals}
	if _, err := render.Draw(s, e, render.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	data, _ := e.Bytes(context.Background())
	if strings.Contains(string(data), "<path") {
		t.Error("empty point batch produced a <path>")
	}
}

func TestPNG(t *testing.T) {
	data := drawScene(t, NewPNG(WithSize(200, 200)))

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("size = %v, want 200x200", b)
	}

	// Outside the terminal stays white.
	if r, g, b, _ := img.At(10, 100).RGBA(); r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("background pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
	// Inside the terminal is blue-tinted.
	r, _, b, _ := img.At(80, 60).RGBA()
	if b>>8 != 0xff || r>>8 >= 0xff {
		t.Errorf("terminal pixel = r%d b%d, want blue tint", r>>8, b>>8)
	}
}

func TestRecorderJSON(t *testing.T) {
	data := drawScene(t, NewRecorder())

	var out struct {
		Viewport scene.Viewport `json:"viewport"`
		Style    jsonStyle      `json:"style"`
		Rects    []scene.Rect   `json:"rects"`
		Points   []scene.Point  `json:"points"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Viewport != (scene.Viewport{XMin: -5, XMax: 15, YMin: 0, YMax: 20}) {
		t.Errorf("viewport = %+v", out.Viewport)
	}
	if len(out.Rects) != 1 || len(out.Points) != 1 || out.Points[0] != (scene.Point{X: 7, Y: 7}) {
		t.Errorf("rects = %v, points = %v", out.Rects, out.Points)
	}
	if out.Style.TerminalFill != "#0000ff" || out.Style.CellAlpha != 0.3 {
		t.Errorf("style = %+v", out.Style)
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	if _, err := render.Render(context.Background(), sample, r, render.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	if r.Shown != 1 || len(r.Rects) != 1 || len(r.Layers) != 1 || r.PointCount() != 1 {
		t.Errorf("recorder = %+v", r)
	}
}

func TestPDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	data := drawScene(t, NewPDF())
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("pdf header = %q", data[:min(8, len(data))])
	}
}

func TestRecorderReplay(t *testing.T) {
	rec := NewRecorder()
	if _, err := render.Draw(sample, rec, render.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	direct := string(drawScene(t, NewSVG()))

	replayed := NewSVG()
	rec.Replay(replayed)
	data, _ := replayed.Bytes(context.Background())
	if string(data) != direct {
		t.Errorf("replayed svg differs from direct render\n%s\n%s", data, direct)
	}
}
