package logs

import (
	"context"
	"errors"
	"fmt"
)

// SpanError ties an error to the span it happened in.
type SpanError struct {
	Span Span
	Err  error
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%v (span %s)", e.Err, e.Span)
}

func (e *SpanError) Unwrap() error {
	return e.Err
}

// WrapSpan attaches the span of ctx to err, once.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	var spanErr *SpanError
	if errors.As(err, &spanErr) {
		return err
	}
	return &SpanError{
		Span: span,
		Err:  err,
	}
}
