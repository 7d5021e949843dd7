package web

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/observability"
	"github.com/matzehuels/placeview/pkg/render/sink"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithTitle sets the page and SVG title.
func WithTitle(title string) Option {
	return func(s *Server) { s.title = title }
}

// WithSize sets the canvas size of the SVG and PNG renditions.
func WithSize(width, height int) Option {
	return func(s *Server) { s.width, s.height = width, height }
}

// WithLogger enables request logging at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithReady registers a callback invoked with the bound address once the
// listener is open.
func WithReady(fn func(addr string)) Option {
	return func(s *Server) { s.ready = fn }
}

// Server records a scene and serves it.
type Server struct {
	*sink.Recorder

	addr          string
	title         string
	width, height int
	logger        *log.Logger
	ready         func(string)
}

// New creates a server sink.
func New(opts ...Option) *Server {
	s := &Server{Recorder: sink.NewRecorder(), addr: DefaultAddr, title: "placeview"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show serves the recorded scene until ctx is done.
func (s *Server) Show(ctx context.Context) error {
	return s.Serve(ctx)
}

// Handler returns the router, for tests or embedding.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Get("/layout.svg", s.handleEncoded(sink.FormatSVG, "image/svg+xml"))
	r.Get("/layout.png", s.handleEncoded(sink.FormatPNG, "image/png"))
	r.Get("/layout.json", s.handleEncoded(sink.FormatJSON, "application/json"))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// Serve listens on the configured address and blocks until ctx is done,
// then shuts the server down.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", s.addr)
	}
	if s.ready != nil {
		s.ready(ln.Addr().String())
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return errors.Wrap(errors.ErrCodeInternal, err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	<-errCh
	return nil
}

func (s *Server) encoderOptions() []sink.Option {
	opts := []sink.Option{sink.WithTitle(s.title)}
	if s.width > 0 && s.height > 0 {
		opts = append(opts, sink.WithSize(s.width, s.height))
	}
	return opts
}

func (s *Server) handleEncoded(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var enc sink.Encoder
		if format == sink.FormatJSON {
			enc = s.Recorder
		} else {
			e, err := sink.ByFormat(format, s.encoderOptions()...)
			if err != nil {
				http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
				return
			}
			s.Replay(e)
			enc = e
		}

		data, err := enc.Bytes(r.Context())
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		w.Write(data)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	title := html.EscapeString(s.title)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body { font-family: system-ui; margin: 2rem; }
        img { max-width: 100%%; border: 1px solid #ddd; }
        .info span { margin-right: 1.5rem; }
    </style>
</head>
<body>
    <h1>%s</h1>
    <div class="info"><span>%d terminals</span><span>%d standard cells</span></div>
    <p><a href="/layout.svg">svg</a> · <a href="/layout.png">png</a> · <a href="/layout.json">json</a></p>
    <img src="/layout.svg" alt="%s">
</body>
</html>
`, title, title, len(s.Rects), s.PointCount(), title)
}

// observe reports each request to the HTTP hooks and, with a logger, logs it
// at debug level.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		if s.logger != nil {
			s.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
				"status", ww.Status(), "bytes", ww.BytesWritten(), "elapsed", elapsed)
		}
	})
}
