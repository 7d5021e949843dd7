package sink

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/scene"
)

// Recorder keeps every drawing call. It backs the JSON format and is handy
// for inspecting what a renderer emitted.
type Recorder struct {
	Viewport scene.Viewport
	Rects    []RecordedRect
	Layers   []RecordedLayer
	Shown    int
}

// RecordedRect is one DrawRect call.
type RecordedRect struct {
	Rect  scene.Rect
	Style render.RectStyle
}

// RecordedLayer is one DrawPoints call.
type RecordedLayer struct {
	Points []scene.Point
	Style  render.PointStyle
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) SetViewport(vp scene.Viewport) { r.Viewport = vp }

func (r *Recorder) DrawRect(rect scene.Rect, st render.RectStyle) {
	r.Rects = append(r.Rects, RecordedRect{Rect: rect, Style: st})
}

func (r *Recorder) DrawPoints(pts []scene.Point, st render.PointStyle) {
	r.Layers = append(r.Layers, RecordedLayer{Points: append([]scene.Point(nil), pts...), Style: st})
}

func (r *Recorder) Show(context.Context) error {
	r.Shown++
	return nil
}

// PointCount returns the number of markers over all layers.
func (r *Recorder) PointCount() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Points)
	}
	return n
}

type jsonOutput struct {
	Viewport scene.Viewport `json:"viewport"`
	Style    jsonStyle      `json:"style"`
	Rects    []scene.Rect   `json:"rects"`
	Points   []scene.Point  `json:"points"`
}

type jsonStyle struct {
	TerminalFill  string  `json:"terminal_fill,omitempty"`
	TerminalEdge  string  `json:"terminal_edge,omitempty"`
	TerminalAlpha float64 `json:"terminal_alpha,omitempty"`
	CellColor     string  `json:"cell_color,omitempty"`
	CellAlpha     float64 `json:"cell_alpha,omitempty"`
	MarkerSize    float64 `json:"marker_size,omitempty"`
}

// Bytes encodes the recorded scene as indented JSON. Styles are taken from
// the first rectangle and the first point layer.
func (r *Recorder) Bytes(context.Context) ([]byte, error) {
	out := jsonOutput{
		Viewport: r.Viewport,
		Rects:    make([]scene.Rect, 0, len(r.Rects)),
		Points:   make([]scene.Point, 0, r.PointCount()),
	}
	for i, rr := range r.Rects {
		if i == 0 {
			out.Style.TerminalFill = render.Hex(rr.Style.Fill)
			out.Style.TerminalEdge = render.Hex(rr.Style.Edge)
			out.Style.TerminalAlpha = rr.Style.Alpha
		}
		out.Rects = append(out.Rects, rr.Rect)
	}
	for i, l := range r.Layers {
		if i == 0 {
			out.Style.CellColor = render.Hex(l.Style.Color)
			out.Style.CellAlpha = l.Style.Alpha
			out.Style.MarkerSize = l.Style.Size
		}
		out.Points = append(out.Points, l.Points...)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Replay issues the recorded calls on dst in their original order.
func (r *Recorder) Replay(dst render.Sink) {
	dst.SetViewport(r.Viewport)
	for _, rr := range r.Rects {
		dst.DrawRect(rr.Rect, rr.Style)
	}
	for _, l := range r.Layers {
		dst.DrawPoints(l.Points, l.Style)
	}
}
