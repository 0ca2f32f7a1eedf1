package lexers

import (
	"strings"
	"unicode"

	"github.com/reusee/pilex/diags"
	"github.com/reusee/pilex/numbers"
)

type partialKind uint8

const (
	partialNone partialKind = iota
	partialOpenRun
	partialCloseRun
	partialComment
	partialAssign
	partialName
	partialLiteral
)

// partial is the token in progress.
type partial struct {
	kind  partialKind
	start diags.Pos
	count int
	text  strings.Builder
}

// Scanner is a push-style lexer: runes are fed one at a time and finished
// tokens accumulate. Scanning stops at the first error.
type Scanner struct {
	tracker Tracker
	partial partial
	tokens  []Token
	err     error
}

func NewScanner() *Scanner {
	return &Scanner{
		tracker: NewTracker(),
	}
}

// Feed consumes one rune.
func (s *Scanner) Feed(r rune) error {
	if s.err != nil {
		return s.err
	}
	if err := s.step(r, s.tracker.Pos()); err != nil {
		s.err = err
		return err
	}
	s.tracker.Advance(r)
	return nil
}

// End finishes the open partial token and returns all tokens.
func (s *Scanner) End() ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.finish(); err != nil {
		s.err = err
		return nil, err
	}
	return s.tokens, nil
}

// Tokens returns the tokens finished so far.
func (s *Scanner) Tokens() []Token {
	return s.tokens
}

func (s *Scanner) step(r rune, pos diags.Pos) error {
	switch s.partial.kind {

	case partialNone:
		return s.start(r, pos)

	case partialOpenRun:
		if r == '(' {
			s.partial.count++
			return nil
		}

	case partialCloseRun:
		if r == ')' {
			s.partial.count++
			return nil
		}

	case partialComment:
		if r != '\n' {
			s.partial.text.WriteRune(r)
			return nil
		}

	case partialAssign:
		if r == '=' {
			s.emit(Assign{})
			return nil
		}
		return diags.Errorf(s.partial.start, diags.MalformedAssign, "expected '=' after ':', got %q", r)

	case partialName:
		if numbers.IsNameRune(r) {
			s.partial.text.WriteRune(r)
			return nil
		}

	case partialLiteral:
		if numbers.IsLiteralRune(r) {
			s.partial.text.WriteRune(r)
			return nil
		}

	}

	// r does not continue the partial token
	if err := s.finish(); err != nil {
		return err
	}
	return s.start(r, pos)
}

func (s *Scanner) start(r rune, pos diags.Pos) error {
	s.partial.start = pos
	switch {
	case unicode.IsSpace(r):
		return nil
	case r == '#':
		s.partial.kind = partialComment
	case r == '(':
		s.partial.kind = partialOpenRun
		s.partial.count = 1
	case r == ')':
		s.partial.kind = partialCloseRun
		s.partial.count = 1
	case r == ':':
		s.partial.kind = partialAssign
	case numbers.IsLiteralRune(r):
		s.partial.kind = partialLiteral
		s.partial.text.WriteRune(r)
	case numbers.IsNameStart(r):
		s.partial.kind = partialName
		s.partial.text.WriteRune(r)
	default:
		return diags.Errorf(pos, diags.UnexpectedCharacter, "%q is not a valid character", r)
	}
	return nil
}

// finish turns the partial token into a token, if one is open.
func (s *Scanner) finish() error {
	p := &s.partial
	switch p.kind {

	case partialNone:
		return nil

	case partialOpenRun:
		return s.finishRun('(', OpenBracket{}, OpenBracket2{})

	case partialCloseRun:
		return s.finishRun(')', CloseBracket{}, CloseBracket2{})

	case partialComment:
		s.emit(Comment{
			Text: p.text.String(),
		})

	case partialAssign:
		return diags.Errorf(p.start, diags.MalformedAssign, "expected '=' after ':', got end of input")

	case partialName:
		value, err := numbers.EncodeName(p.text.String())
		if err != nil {
			return diags.Wrap(err, p.start, diags.IdentifierEncodingFailure)
		}
		s.emit(Number{
			Value: value,
		})

	case partialLiteral:
		value, err := numbers.FromLiteral(p.text.String())
		if err != nil {
			return diags.Wrap(err, p.start, diags.InvalidLiteral)
		}
		s.emit(Number{
			Value: value,
		})

	}
	return nil
}

func (s *Scanner) finishRun(bracket rune, single, double Kind) error {
	switch n := s.partial.count; n {
	case 1:
		s.emit(single)
	case 2:
		s.emit(double)
	default:
		return diags.Errorf(s.partial.start, diags.AmbiguousBracketRun,
			"%q is too many %q in a row, separate them with whitespace",
			strings.Repeat(string(bracket), n), bracket)
	}
	return nil
}

// emit appends a token for the partial token and closes it.
func (s *Scanner) emit(kind Kind) {
	s.tokens = append(s.tokens, Token{
		Pos:  s.partial.start,
		Kind: kind,
	})
	s.partial.kind = partialNone
	s.partial.count = 0
	s.partial.text.Reset()
}
