// Package window shows a rendered layout in a native Gio window.
//
// A [Viewer] is a [render.Sink] that keeps the drawing calls and replays them
// on every frame, so the layout is rescaled when the window is resized. Show
// takes over the main goroutine the way Gio requires and does not return on
// desktop platforms: when the window is closed (or Esc/Q is pressed) the exit
// hook runs instead.
package window

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/matzehuels/placeview/pkg/render"
	"github.com/matzehuels/placeview/pkg/scene"
)

const (
	defaultWidth  = 900
	defaultHeight = 900
	defaultTitle  = "placeview"
)

var background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Option configures a Viewer.
type Option func(*Viewer)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(v *Viewer) { v.title = title }
}

// WithSize sets the initial window size in dp.
func WithSize(width, height int) Option {
	return func(v *Viewer) {
		if width > 0 && height > 0 {
			v.width, v.height = width, height
		}
	}
}

// WithExit replaces the hook run after the window closes. The default
// prints a non-nil error to stderr and exits the process.
func WithExit(fn func(error)) Option {
	return func(v *Viewer) { v.exit = fn }
}

type rect struct {
	r  scene.Rect
	st render.RectStyle
}

type layer struct {
	pts []scene.Point
	st  render.PointStyle
}

// Viewer is the on-screen sink.
type Viewer struct {
	title         string
	width, height int
	exit          func(error)

	vp     scene.Viewport
	rects  []rect
	layers []layer
}

// New creates a viewer.
func New(opts ...Option) *Viewer {
	v := &Viewer{
		title:  defaultTitle,
		width:  defaultWidth,
		height: defaultHeight,
		exit:   defaultExit,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func defaultExit(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func (v *Viewer) SetViewport(vp scene.Viewport) { v.vp = vp }

func (v *Viewer) DrawRect(r scene.Rect, st render.RectStyle) {
	v.rects = append(v.rects, rect{r: r, st: st})
}

func (v *Viewer) DrawPoints(pts []scene.Point, st render.PointStyle) {
	v.layers = append(v.layers, layer{pts: append([]scene.Point(nil), pts...), st: st})
}

// Show opens the window and runs the Gio main loop. Cancelling ctx closes
// the window.
func (v *Viewer) Show(ctx context.Context) error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title(v.title), app.Size(unit.Dp(v.width), unit.Dp(v.height)))
		stop := context.AfterFunc(ctx, func() { w.Perform(system.ActionClose) })
		err := v.run(w)
		stop()
		if err == nil {
			err = ctx.Err()
		}
		v.exit(err)
	}()
	app.Main()
	return nil
}

func (v *Viewer) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}
			if closeRequested(gtx) {
				return nil
			}
			v.Layout(gtx)
			e.Frame(&ops)
		}
	}
}

func closeRequested(gtx layout.Context) bool {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape}, key.Filter{Name: "Q"})
		if !ok {
			return false
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			return true
		}
	}
}

// Layout paints the recorded scene scaled to the constraints of gtx.
func (v *Viewer) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.Fill(gtx.Ops, background)

	cam := render.NewCamera(v.vp, size.X, size.Y)
	for _, r := range v.rects {
		x, y, w, h := cam.RectToScreen(r.r)
		x0, y0 := float32(x), float32(y)
		x1, y1 := float32(x+w), float32(y+h)

		paint.FillShape(gtx.Ops, render.WithAlpha(r.st.Fill, r.st.Alpha),
			clip.Outline{Path: box(gtx.Ops, x0, y0, x1, y1)}.Op())
		if r.st.EdgeWidth > 0 {
			paint.FillShape(gtx.Ops, render.WithAlpha(r.st.Edge, r.st.Alpha), clip.Stroke{
				Path:  box(gtx.Ops, x0, y0, x1, y1),
				Width: float32(r.st.EdgeWidth) * gtx.Metric.PxPerDp,
			}.Op())
		}
	}

	for _, l := range v.layers {
		if len(l.pts) == 0 {
			continue
		}
		half := max(float32(l.st.Size)*gtx.Metric.PxPerDp, 1) / 2
		var path clip.Path
		path.Begin(gtx.Ops)
		for _, p := range l.pts {
			x, y := cam.ToScreen(p)
			cx, cy := float32(x), float32(y)
			path.MoveTo(f32.Pt(cx-half, cy-half))
			path.LineTo(f32.Pt(cx+half, cy-half))
			path.LineTo(f32.Pt(cx+half, cy+half))
			path.LineTo(f32.Pt(cx-half, cy+half))
			path.Close()
		}
		paint.FillShape(gtx.Ops, render.WithAlpha(l.st.Color, l.st.Alpha), clip.Outline{Path: path.End()}.Op())
	}

	return layout.Dimensions{Size: size}
}

func box(ops *op.Ops, x0, y0, x1, y1 float32) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()
	return path.End()
}
