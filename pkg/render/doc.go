// Package render draws a [scene.Scene] into a [Sink].
//
// # Overview
//
// Rendering is a fixed sequence of calls on the sink:
//
//  1. SetViewport with the square viewport around the terminals
//  2. DrawRect once per terminal, in parse order
//  3. DrawPoints once, with the centers of all cells
//  4. Show, which may block until the operator closes the view
//
// [Draw] performs steps 1-3 and [Render] adds step 4. Nothing is drawn when
// the scene has no terminals.
//
// # Sinks
//
// Implementations live in subpackages:
//
//   - [sink]: Recorder/JSON, SVG, PNG and PDF output
//   - [window]: on-screen viewer
//   - [web]: HTTP server for the rendered artifacts
//
// [Camera] maps layout coordinates to pixels for the raster and vector
// sinks. [ToPDF] converts SVG output with rsvg-convert (from librsvg).
//
// [sink]: github.com/matzehuels/placeview/pkg/render/sink
// [window]: github.com/matzehuels/placeview/pkg/render/window
// [web]: github.com/matzehuels/placeview/pkg/render/web
package render
