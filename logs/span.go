package logs

import "context"

// Span identifies one unit of work, e.g. the scan of one file.
type Span string

type spanKey struct{}

var SpanKey spanKey

type sourceKey struct{}

// WithSource names the source text being worked on in ctx.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sourceKey{}, name)
}
