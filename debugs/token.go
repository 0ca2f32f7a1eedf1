package debugs

import (
	"github.com/reusee/pilex/lexers"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

var tokenConstructor = starlark.String("token")

// TokenValues converts tokens to starlark structs with the fields line,
// column, kind, text, comment and value. comment is set for comments and
// value for numbers, None otherwise.
func TokenValues(tokens []lexers.Token) *starlark.List {
	values := make([]starlark.Value, 0, len(tokens))
	for _, token := range tokens {
		values = append(values, tokenValue(token))
	}
	return starlark.NewList(values)
}

func tokenValue(token lexers.Token) *starlarkstruct.Struct {
	fields := starlark.StringDict{
		"line":    starlark.MakeInt(token.Pos.Line),
		"column":  starlark.MakeInt(token.Pos.Column),
		"kind":    starlark.String(kindName(token.Kind)),
		"text":    starlark.String(token.String()),
		"comment": starlark.None,
		"value":   starlark.None,
	}
	switch kind := token.Kind.(type) {
	case lexers.Comment:
		fields["comment"] = starlark.String(kind.Text)
	case lexers.Number:
		fields["value"] = Number{Value: kind.Value}
	}
	return starlarkstruct.FromStringDict(tokenConstructor, fields)
}

func kindName(kind lexers.Kind) string {
	switch kind.(type) {
	case lexers.OpenBracket:
		return "open"
	case lexers.CloseBracket:
		return "close"
	case lexers.OpenBracket2:
		return "open2"
	case lexers.CloseBracket2:
		return "close2"
	case lexers.Assign:
		return "assign"
	case lexers.Comment:
		return "comment"
	case lexers.Number:
		return "number"
	}
	return "unknown"
}
