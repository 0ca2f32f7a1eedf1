package diags

import (
	"errors"
	"fmt"
)

// Pos is a 1-based line and column. Columns count runes.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Code uint8

const (
	UnexpectedCharacter Code = iota + 1
	MalformedAssign
	AmbiguousBracketRun
	InvalidLiteral
	IdentifierEncodingFailure
	// InvalidConfig reports a config file that does not load or validate.
	InvalidConfig
)

func (c Code) String() string {
	switch c {
	case UnexpectedCharacter:
		return "unexpected character"
	case MalformedAssign:
		return "malformed assign"
	case AmbiguousBracketRun:
		return "ambiguous bracket run"
	case InvalidLiteral:
		return "invalid literal"
	case IdentifierEncodingFailure:
		return "identifier encoding failure"
	case InvalidConfig:
		return "invalid config"
	}
	return fmt.Sprintf("code(%d)", c)
}

// Diagnostic is the closed set of reports a scan or config load can produce.
type Diagnostic interface {
	error
	Position() Pos
	diagnostic()
}

// Error is a fatal compile error.
type Error struct {
	Pos  Pos
	Code Code
	Msg  string
	// Err is the underlying cause, if any
	Err error
}

var _ Diagnostic = new(Error)

func Errorf(pos Pos, code Code, format string, args ...any) *Error {
	return &Error{
		Pos:  pos,
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap positions err. Errors already carrying a position are kept.
func Wrap(err error, pos Pos, code Code) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{
		Pos:  pos,
		Code: code,
		Msg:  err.Error(),
		Err:  err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Position() Pos {
	return e.Pos
}

func (*Error) diagnostic() {}

// CodeOf returns the code of the first diagnostic in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Code, true
}
