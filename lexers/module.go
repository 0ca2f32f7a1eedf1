package lexers

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/pilex/logs"
	"github.com/reusee/pilex/modes"
	"github.com/reusee/pilex/numbers"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// ScanSource lexes a named source text, logging under a new span.
type ScanSource func(ctx context.Context, name string, src string) ([]Token, error)

func (Module) ScanSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	mode modes.Mode,
) ScanSource {
	return func(ctx context.Context, name string, src string) ([]Token, error) {
		ctx, _ = newSpan(logs.WithSource(ctx, name), "")
		t0 := time.Now()

		tokens, err := Scan(src)
		if err != nil {
			logger.DebugContext(ctx, "scan failed",
				"error", err,
			)
			return nil, err
		}

		if mode == modes.ModeDevelopment {
			if err := checkNumbers(tokens); err != nil {
				return nil, err
			}
		}

		logger.DebugContext(ctx, "scanned",
			"runes", len([]rune(src)),
			"tokens", len(tokens),
			"duration", time.Since(t0),
		)
		return tokens, nil
	}
}

// checkNumbers verifies that every number token decodes back to a value
// that encodes to itself.
func checkNumbers(tokens []Token) error {
	for _, token := range tokens {
		number, ok := token.Kind.(Number)
		if !ok {
			continue
		}
		var again numbers.Number
		var err error
		if text, ok := number.Value.Decimal(); ok {
			again, err = numbers.FromLiteral(text)
		} else if letters, ok := numbers.Letters(number.Value); ok {
			again, err = numbers.EncodeName(numbers.Unrotate(letters))
		} else {
			return fmt.Errorf("%s: number %v is neither a literal nor a name", token.Pos, number.Value)
		}
		if err != nil {
			return fmt.Errorf("%s: re-encode %v: %w", token.Pos, number.Value, err)
		}
		if !again.Equal(number.Value) {
			return fmt.Errorf("%s: %v re-encodes to %v", token.Pos, number.Value, again)
		}
	}
	return nil
}
