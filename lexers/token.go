package lexers

import (
	"github.com/reusee/pilex/diags"
	"github.com/reusee/pilex/numbers"
)

type Token struct {
	Pos  diags.Pos
	Kind Kind
}

func (t Token) String() string {
	return t.Kind.String()
}

// Kind is one of OpenBracket, CloseBracket, OpenBracket2, CloseBracket2,
// Assign, Comment and Number. Names are lexed as Number too.
type Kind interface {
	String() string
	kind()
}

type OpenBracket struct{}

type CloseBracket struct{}

type OpenBracket2 struct{}

type CloseBracket2 struct{}

type Assign struct{}

type Comment struct {
	Text string
}

type Number struct {
	Value numbers.Number
}

var (
	_ Kind = OpenBracket{}
	_ Kind = CloseBracket{}
	_ Kind = OpenBracket2{}
	_ Kind = CloseBracket2{}
	_ Kind = Assign{}
	_ Kind = Comment{}
	_ Kind = Number{}
)

func (OpenBracket) kind()   {}
func (CloseBracket) kind()  {}
func (OpenBracket2) kind()  {}
func (CloseBracket2) kind() {}
func (Assign) kind()        {}
func (Comment) kind()       {}
func (Number) kind()        {}

func (OpenBracket) String() string   { return "(" }
func (CloseBracket) String() string  { return ")" }
func (OpenBracket2) String() string  { return "((" }
func (CloseBracket2) String() string { return "))" }
func (Assign) String() string        { return ":=" }

func (c Comment) String() string {
	return "#" + c.Text
}

// String shows literals as decimals and names as written.
func (n Number) String() string {
	if text, ok := n.Value.Decimal(); ok {
		return text
	}
	if letters, ok := numbers.Letters(n.Value); ok {
		return numbers.Unrotate(letters)
	}
	return n.Value.String()
}

func (n Number) Equal(kind Kind) bool {
	m, ok := kind.(Number)
	return ok && n.Value.Equal(m.Value)
}

// SameKind reports whether a and b are the same kind with equal payloads.
func SameKind(a, b Kind) bool {
	if n, ok := a.(Number); ok {
		return n.Equal(b)
	}
	return a == b
}
