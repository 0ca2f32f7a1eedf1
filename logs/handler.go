package logs

import (
	"context"
	"log/slog"
)

// Handler adds the span and the source name carried by the context to every
// record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := ctx.Value(SpanKey).(Span); ok {
		record.AddAttrs(slog.String("span", string(span)))
	}
	if source, ok := ctx.Value(sourceKey{}).(string); ok {
		record.AddAttrs(slog.String("source", source))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
