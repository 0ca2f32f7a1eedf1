package logs

import (
	"context"
	"crypto/rand"
	"log/slog"
)

// NewSpan starts a span under parent, or under the span of ctx when parent
// is empty.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		current, _ := ctx.Value(SpanKey).(Span)
		if parent == "" {
			parent = current
		}

		span := Span(rand.Text()[:12])
		ctx = context.WithValue(ctx, SpanKey, span)

		var attrs []slog.Attr
		if parent != "" {
			attrs = append(attrs, slog.String("parent", string(parent)))
		}
		if current != "" && current != parent {
			attrs = append(attrs, slog.String("creator", string(current)))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "new span", attrs...)

		return ctx, span
	}
}
