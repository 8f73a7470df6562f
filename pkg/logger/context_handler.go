package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds the attributes its extractors find in the context of
// each record before passing the record on.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{Handler: next, extractors: extractors}
}

func (h *contextHandler) attrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var found []slog.Attr
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			found = append(found, attr)
		}
	}
	return found
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	rec.AddAttrs(h.attrs(ctx)...)
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}

// Bind returns a logger carrying the attributes the context extractors of l
// find in ctx, so that later records need no context. Loggers built without
// extractors are returned unchanged.
func Bind(ctx context.Context, l *slog.Logger) *slog.Logger {
	if l == nil {
		return nil
	}
	h, ok := l.Handler().(*contextHandler)
	if !ok {
		return l
	}
	found := h.attrs(ctx)
	if len(found) == 0 {
		return l
	}
	// extracted once; records must not repeat them
	return slog.New(h.Handler.WithAttrs(found))
}
