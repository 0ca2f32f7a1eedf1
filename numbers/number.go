package numbers

import (
	"errors"

	"github.com/reusee/pilex/polys"
)

// Number is an exact quotient of two polys. Literal numerals and names share
// this one representation.
// Equality is structural: no common factor is ever cancelled.
type Number struct {
	Numer polys.Poly
	Denom polys.Poly
}

var (
	ErrInvalidLiteral = errors.New("invalid number literal")
	ErrInvalidName    = errors.New("invalid name")
	ErrDivisionByZero = errors.New("division by zero")
)

func New(numer, denom polys.Poly) (Number, error) {
	if denom.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Number{
		Numer: numer,
		Denom: denom,
	}, nil
}

func (n Number) Equal(m Number) bool {
	return n.Numer.Equal(m.Numer) && n.Denom.Equal(m.Denom)
}

func (n Number) IsZero() bool {
	return n.Numer.IsZero()
}

func (n Number) String() string {
	return n.Numer.String() + "/" + n.Denom.String()
}

func (n Number) Add(m Number) Number {
	return Number{
		Numer: n.Numer.Mul(m.Denom).Add(m.Numer.Mul(n.Denom)),
		Denom: n.Denom.Mul(m.Denom),
	}
}

func (n Number) Sub(m Number) Number {
	return Number{
		Numer: n.Numer.Mul(m.Denom).Sub(m.Numer.Mul(n.Denom)),
		Denom: n.Denom.Mul(m.Denom),
	}
}

func (n Number) Mul(m Number) Number {
	return Number{
		Numer: n.Numer.Mul(m.Numer),
		Denom: n.Denom.Mul(m.Denom),
	}
}

func (n Number) Div(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Number{
		Numer: n.Numer.Mul(m.Denom),
		Denom: n.Denom.Mul(m.Numer),
	}, nil
}
