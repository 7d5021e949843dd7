// Package pkg provides the core libraries for placeview layout visualization.
//
// # Overview
//
// placeview draws the physical layout of a placed circuit: fixed terminals
// as outlined rectangles and movable standard cells as small markers. The
// pkg directory is organized into these areas:
//
//  1. [script] - Locate and parse the plotter script naming a circuit
//  2. [bookshelf] - Parse Bookshelf .nodes and _solution.pl files
//  3. [scene] - Pair sizes with anchors, derive bounds and viewport
//  4. [render] - Draw a scene into a sink (window, files, HTTP)
//  5. [config], [errors], [observability], [buildinfo] - Support code
//
// # Architecture
//
// The data flow through placeview:
//
//	plotter script
//	      ↓
//	  [script] package (circuit name, detail flag)
//	      ↓
//	  [bookshelf] package (shape and placement records, four ordered lists)
//	      ↓
//	  [scene] package (terminal rectangles, cell anchors, square viewport)
//	      ↓
//	  [render] package (Gio window, SVG/PNG/PDF/JSON, HTTP server)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/placeview/pkg/bookshelf"
//	    "github.com/matzehuels/placeview/pkg/render"
//	    "github.com/matzehuels/placeview/pkg/render/sink"
//	    "github.com/matzehuels/placeview/pkg/scene"
//	    "github.com/matzehuels/placeview/pkg/script"
//	)
//
//	cfg, _, _ := script.Locate(os.Args[1:])
//	g, _ := bookshelf.Read(cfg)
//	svg := sink.NewSVG()
//	render.Draw(scene.Build(g), svg, render.DefaultStyle())
//	data, _ := svg.Bytes(ctx)
//
// # Classification
//
// Every object is either a terminal or a cell. Objects marked "terminal" in
// the node file, or "/FIXED" in the placement file, are terminals. With
// plot_all_detail enabled in the script every object is a terminal.
// [bookshelf.Classify] is the single place this rule lives.
//
// [script]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/script
// [bookshelf]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/bookshelf
// [scene]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/placeview/pkg/buildinfo
package pkg
