// Package web serves a rendered layout over HTTP.
//
// [Server] is a [render.Sink]: the renderer draws into it like any other
// sink, and Show starts an HTTP server that re-encodes the recorded scene on
// each request. It is the headless alternative to the on-screen viewer.
//
// # Routes
//
//	GET /             HTML page embedding the SVG
//	GET /layout.svg   image/svg+xml
//	GET /layout.png   image/png
//	GET /layout.json  application/json (viewport, rectangles, points)
//	GET /health       "ok"
//
// # Usage
//
//	srv := web.New(web.WithAddr("127.0.0.1:8080"), web.WithTitle("ibm01"))
//	if _, err := render.Render(ctx, sc, srv, style); err != nil {
//	    return err
//	}
//
// Render returns once ctx is cancelled and the server has shut down.
package web
