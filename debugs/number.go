package debugs

import (
	"fmt"

	"github.com/reusee/pilex/numbers"
	"github.com/reusee/pilex/polys"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Number is a numbers.Number in starlark. It supports + - * / and equality.
type Number struct {
	Value numbers.Number
}

var (
	_ starlark.HasAttrs   = Number{}
	_ starlark.HasBinary  = Number{}
	_ starlark.Comparable = Number{}
)

func (n Number) String() string {
	return n.Value.String()
}

func (Number) Type() string {
	return "number"
}

func (Number) Freeze() {}

func (n Number) Truth() starlark.Bool {
	return starlark.Bool(!n.Value.IsZero())
}

// Hash agrees with equality since the string form is canonical.
func (n Number) Hash() (uint32, error) {
	return starlark.String(n.Value.String()).Hash()
}

func (n Number) Attr(name string) (starlark.Value, error) {
	switch name {
	case "numer":
		return polyValue(n.Value.Numer), nil
	case "denom":
		return polyValue(n.Value.Denom), nil
	}
	return nil, nil
}

func (Number) AttrNames() []string {
	return []string{"denom", "numer"}
}

func (n Number) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	equal := n.Value.Equal(y.(Number).Value)
	switch op {
	case syntax.EQL:
		return equal, nil
	case syntax.NEQ:
		return !equal, nil
	}
	return false, fmt.Errorf("numbers are not ordered")
}

func (n Number) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	m, ok := y.(Number)
	if !ok {
		return nil, nil
	}
	a, b := n.Value, m.Value
	if side == starlark.Right {
		a, b = b, a
	}
	switch op {
	case syntax.PLUS:
		return Number{Value: a.Add(b)}, nil
	case syntax.MINUS:
		return Number{Value: a.Sub(b)}, nil
	case syntax.STAR:
		return Number{Value: a.Mul(b)}, nil
	case syntax.SLASH:
		quo, err := a.Div(b)
		if err != nil {
			return nil, err
		}
		return Number{Value: quo}, nil
	}
	return nil, nil
}

// polyValue gives ((exp, coef), ...) in ascending exponent order.
func polyValue(p polys.Poly) starlark.Tuple {
	terms := p.Terms()
	ret := make(starlark.Tuple, 0, len(terms))
	for _, term := range terms {
		ret = append(ret, starlark.Tuple{
			starlark.MakeBigInt(term.Exp),
			starlark.MakeBigInt(term.Coef),
		})
	}
	return ret
}
