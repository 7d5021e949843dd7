package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/scene"
)

// SVG accumulates a scene as SVG elements in pixel space.
type SVG struct {
	canvas
	cam  render.Camera
	body bytes.Buffer
}

// NewSVG creates an SVG sink.
func NewSVG(opts ...Option) *SVG {
	return &SVG{canvas: newCanvas(opts)}
}

func (s *SVG) SetViewport(vp scene.Viewport) {
	s.cam = render.NewCamera(vp, s.width, s.height)
}

func (s *SVG) DrawRect(r scene.Rect, st render.RectStyle) {
	x, y, w, h := s.cam.RectToScreen(r)
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s" opacity="%s"/>`+"\n",
		fmtNum(x), fmtNum(y), fmtNum(w), fmtNum(h),
		render.Hex(st.Fill), render.Hex(st.Edge), fmtNum(st.EdgeWidth), fmtNum(st.Alpha))
}

// DrawPoints writes all markers as subpaths of one <path> element.
func (s *SVG) DrawPoints(pts []scene.Point, st render.PointStyle) {
	if len(pts) == 0 {
		return
	}
	size := st.Size
	half := size / 2
	fmt.Fprintf(&s.body, `  <path class="cells" fill="%s" fill-opacity="%s" d="`, render.Hex(st.Color), fmtNum(st.Alpha))
	for i, p := range pts {
		x, y := s.cam.ToScreen(p)
		if i > 0 {
			s.body.WriteByte(' ')
		}
		fmt.Fprintf(&s.body, "M%s %sh%sv%sh-%sz", fmtNum(x-half), fmtNum(y-half), fmtNum(size), fmtNum(size), fmtNum(size))
	}
	s.body.WriteString("\"/>\n")
}

func (s *SVG) Show(context.Context) error { return nil }

// Bytes returns the complete SVG document.
func (s *SVG) Bytes(context.Context) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(s.title))
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
