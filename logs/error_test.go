package logs

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	ctx := context.Background()
	if err := WrapSpan(ctx, io.EOF); err != io.EOF {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(ctx, nil); err != nil {
		t.Fatalf("got %v", err)
	}

	ctx = context.WithValue(ctx, SpanKey, Span("foo"))
	err := WrapSpan(ctx, io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "EOF (span foo)" {
		t.Fatalf("got %v", err)
	}

	// wrapped once
	inner := context.WithValue(ctx, SpanKey, Span("bar"))
	if again := WrapSpan(inner, err); again != err {
		t.Fatalf("got %v", again)
	}
}
