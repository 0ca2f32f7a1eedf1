package lexers

import (
	"bufio"
	"io"
	"iter"
)

// Scan lexes a whole source text.
func Scan(src string) ([]Token, error) {
	s := NewScanner()
	for _, r := range src {
		if err := s.Feed(r); err != nil {
			return nil, err
		}
	}
	return s.End()
}

// ScanReader lexes runes read from r. Read errors are returned as is.
func ScanReader(r io.Reader) ([]Token, error) {
	var tokens []Token
	for token, err := range All(r) {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// All yields tokens as soon as they are finished. Iteration stops after the
// first error.
func All(r io.Reader) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		source := bufio.NewReader(r)
		s := NewScanner()
		yielded := 0

		flush := func() bool {
			tokens := s.Tokens()
			for ; yielded < len(tokens); yielded++ {
				if !yield(tokens[yielded], nil) {
					return false
				}
			}
			return true
		}

		for {
			c, _, err := source.ReadRune()
			if err == io.EOF {
				break
			}
			if err != nil {
				yield(Token{}, err)
				return
			}
			if err := s.Feed(c); err != nil {
				yield(Token{}, err)
				return
			}
			if !flush() {
				return
			}
		}

		if _, err := s.End(); err != nil {
			yield(Token{}, err)
			return
		}
		flush()
	}
}
