package debugs

import (
	"github.com/reusee/pilex/lexers"
	"github.com/reusee/pilex/numbers"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func builtins() starlark.StringDict {
	return starlark.StringDict{
		"rotate":   starlarkutil.MakeFunc("rotate", numbers.Rotate),
		"unrotate": starlarkutil.MakeFunc("unrotate", numbers.Unrotate),
		"scan":     starlark.NewBuiltin("scan", scanBuiltin),
		"encode":   starlark.NewBuiltin("encode", encodeBuiltin),
		"letters":  starlark.NewBuiltin("letters", lettersBuiltin),
		"decimal":  starlark.NewBuiltin("decimal", decimalBuiltin),
	}
}

// scan(src) lexes src into tokens. Lexing errors are starlark errors.
func scanBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var src string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &src); err != nil {
		return nil, err
	}
	tokens, err := lexers.Scan(src)
	if err != nil {
		return nil, err
	}
	return TokenValues(tokens), nil
}

// encode(text) gives the number of a literal or of a name, as scanned.
func encodeBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	var n numbers.Number
	var err error
	if text != "" && numbers.IsLiteralRune(rune(text[0])) {
		n, err = numbers.FromLiteral(text)
	} else {
		n, err = numbers.EncodeName(text)
	}
	if err != nil {
		return nil, err
	}
	return Number{Value: n}, nil
}

// letters(n) gives the stored, rotated letters of a name, or None.
func lettersBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n Number
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
		return nil, err
	}
	letters, ok := numbers.Letters(n.Value)
	if !ok {
		return starlark.None, nil
	}
	return starlark.String(letters), nil
}

// decimal(n) gives the decimal text of a literal, or None.
func decimalBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n Number
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
		return nil, err
	}
	text, ok := n.Value.Decimal()
	if !ok {
		return starlark.None, nil
	}
	return starlark.String(text), nil
}
