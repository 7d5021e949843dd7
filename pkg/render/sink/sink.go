package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/placeview/pkg/errors"
	"github.com/matzehuels/placeview/pkg/render"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

const (
	defaultWidth  = 1000 // default canvas width in pixels
	defaultHeight = 1000 // default canvas height in pixels
)

// Encoder is a sink that produces a file.
type Encoder interface {
	render.Sink
	Bytes(ctx context.Context) ([]byte, error)
}

// Option configures canvas-based sinks.
type Option func(*canvas)

type canvas struct {
	width, height int
	title         string
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(c *canvas) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithTitle sets the document title where the format supports one.
func WithTitle(title string) Option {
	return func(c *canvas) { c.title = title }
}

func newCanvas(opts []Option) canvas {
	c := canvas{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Formats lists the formats ByFormat accepts.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ByFormat returns a fresh encoder for the named format.
func ByFormat(format string, opts ...Option) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatSVG:
		return NewSVG(opts...), nil
	case FormatPNG:
		return NewPNG(opts...), nil
	case FormatPDF:
		return NewPDF(opts...), nil
	case FormatJSON:
		return NewRecorder(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be one of %s)", format, strings.Join(Formats, ", "))
	}
}

// ValidateFormats checks that every requested format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := ByFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// fmtNum formats pixel values with at most two decimals.
func fmtNum(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
