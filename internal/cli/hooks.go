package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/placeview/pkg/observability"
)

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = logHooks{}

func (h logHooks) OnParseStart(_ context.Context, kind, path string) {
	h.logger.Debug("parsing", "kind", kind, "path", path)
}

func (h logHooks) OnParseComplete(_ context.Context, kind, path string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "kind", kind, "path", path, "err", err)
		return
	}
	h.logger.Debug("parsed", "kind", kind, "records", records, "elapsed", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(_ context.Context, terminals, cells int) {
	h.logger.Debug("drawing", "terminals", terminals, "cells", cells)
}

func (h logHooks) OnRenderComplete(_ context.Context, points int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("draw failed", "err", err)
		return
	}
	h.logger.Debug("drawn", "points", points, "elapsed", d.Round(time.Microsecond))
}
