package sink

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/vector"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/scene"
)

// PNG rasterizes the scene directly onto an RGBA canvas.
type PNG struct {
	canvas
	cam render.Camera
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewPNG creates a PNG sink with a white background.
func NewPNG(opts ...Option) *PNG {
	c := newCanvas(opts)
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &PNG{
		canvas: c,
		img:    img,
		z:      vector.NewRasterizer(c.width, c.height),
	}
}

func (p *PNG) SetViewport(vp scene.Viewport) {
	p.cam = render.NewCamera(vp, p.width, p.height)
}

func (p *PNG) DrawRect(r scene.Rect, st render.RectStyle) {
	x, y, w, h := p.cam.RectToScreen(r)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	p.z.Reset(p.width, p.height)
	p.box(x0, y0, x1, y1)
	p.fill(render.WithAlpha(st.Fill, st.Alpha))

	ew := float32(st.EdgeWidth)
	if ew <= 0 {
		return
	}
	half := ew / 2
	p.z.Reset(p.width, p.height)
	p.box(x0-half, y0-half, x1+half, y1+half)
	if x1-x0 > ew && y1-y0 > ew {
		// Inner box wound the other way leaves only the ring.
		p.hole(x0+half, y0+half, x1-half, y1-half)
	}
	p.fill(render.WithAlpha(st.Edge, st.Alpha))
}

// DrawPoints rasterizes every marker in a single pass.
func (p *PNG) DrawPoints(pts []scene.Point, st render.PointStyle) {
	if len(pts) == 0 {
		return
	}
	half := float32(st.Size / 2)
	p.z.Reset(p.width, p.height)
	for _, pt := range pts {
		x, y := p.cam.ToScreen(pt)
		cx, cy := float32(x), float32(y)
		p.box(cx-half, cy-half, cx+half, cy+half)
	}
	p.fill(render.WithAlpha(st.Color, st.Alpha))
}

func (p *PNG) Show(context.Context) error { return nil }

// Bytes PNG-encodes the canvas.
func (p *PNG) Bytes(context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "png encode")
	}
	return buf.Bytes(), nil
}

// Image returns the canvas drawn so far.
func (p *PNG) Image() image.Image { return p.img }

func (p *PNG) box(x0, y0, x1, y1 float32) {
	p.z.MoveTo(x0, y0)
	p.z.LineTo(x1, y0)
	p.z.LineTo(x1, y1)
	p.z.LineTo(x0, y1)
	p.z.ClosePath()
}

func (p *PNG) hole(x0, y0, x1, y1 float32) {
	p.z.MoveTo(x0, y0)
	p.z.LineTo(x0, y1)
	p.z.LineTo(x1, y1)
	p.z.LineTo(x1, y0)
	p.z.ClosePath()
}

func (p *PNG) fill(c color.NRGBA) {
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}
