// Package sink provides output format sinks for placement scenes.
//
// # Overview
//
// Every sink implements [render.Sink] and collects drawing calls; Bytes
// returns the encoded result once drawing is done. Show does not write
// anything, so the caller decides where the bytes go.
//
//   - [Recorder]: keeps the calls; JSON encodes them for external tools
//   - [SVG]: scalable vector output, one <rect> per terminal and a single
//     <path> holding every cell marker
//   - [PNG]: raster output drawn natively with golang.org/x/image/vector
//   - [PDF]: SVG converted by rsvg-convert (requires librsvg)
//
// Usage:
//
//	svg := sink.NewSVG(sink.WithSize(1000, 1000))
//	if _, err := render.Draw(s, svg, render.DefaultStyle()); err != nil {
//	    return err
//	}
//	data, err := svg.Bytes(ctx)
//
// # Adding New Formats
//
//  1. Implement render.Sink
//  2. Map coordinates with render.Camera from the viewport given to SetViewport
//  3. Register the format in [ByFormat] for CLI support
//
// [render.Sink]: github.com/matzehuels/placeview/pkg/render.Sink
package sink
