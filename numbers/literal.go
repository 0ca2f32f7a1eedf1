package numbers

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/reusee/pilex/polys"
)

var (
	literalExp = big.NewInt(1)
	ten        = big.NewInt(10)
)

// FromLiteral encodes decimal text like "42" or "3.14".
// The value n/10^k is stored as {1: n} over {0: 10^k}.
func FromLiteral(text string) (Number, error) {
	for _, r := range text {
		if !IsLiteralRune(r) {
			return Number{}, invalidLiteral(text)
		}
	}

	intPart, fracPart, _ := strings.Cut(text, ".")
	if strings.Contains(fracPart, ".") {
		return Number{}, invalidLiteral(text)
	}
	digits := intPart + fracPart
	if digits == "" {
		return Number{}, invalidLiteral(text)
	}

	numer, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Number{}, invalidLiteral(text)
	}
	denom := new(big.Int).Exp(ten, big.NewInt(int64(len(fracPart))), nil)

	return Number{
		Numer: polys.Monomial(literalExp, numer),
		Denom: polys.Constant(denom),
	}, nil
}

func invalidLiteral(text string) error {
	return fmt.Errorf("%q is not a valid number literal: %w", text, ErrInvalidLiteral)
}

func IsLiteralRune(r rune) bool {
	return r >= '0' && r <= '9' || r == '.'
}

// Decimal renders a number of literal form back to exact decimal text.
// ok is false when n is not n/10^k shaped, e.g. an encoded name.
func (n Number) Decimal() (text string, ok bool) {
	denomTerms := n.Denom.Terms()
	if len(denomTerms) != 1 || denomTerms[0].Exp.Sign() != 0 {
		return "", false
	}
	scale, ok := log10(denomTerms[0].Coef)
	if !ok {
		return "", false
	}

	coeff := new(big.Int)
	switch numerTerms := n.Numer.Terms(); len(numerTerms) {
	case 0:
	case 1:
		if numerTerms[0].Exp.Cmp(literalExp) != 0 {
			return "", false
		}
		coeff = numerTerms[0].Coef
	default:
		return "", false
	}

	var d apd.Decimal
	d.Negative = coeff.Sign() < 0
	d.Coeff.SetMathBigInt(new(big.Int).Abs(coeff))
	d.Exponent = -scale
	return d.Text('f'), true
}

// log10 returns k where v = 10^k.
func log10(v *big.Int) (int32, bool) {
	if v.Sign() <= 0 {
		return 0, false
	}
	var k int32
	q := new(big.Int).Set(v)
	r := new(big.Int)
	for q.Cmp(big.NewInt(1)) != 0 {
		q.QuoRem(q, ten, r)
		if r.Sign() != 0 {
			return 0, false
		}
		if k == math.MaxInt32 {
			return 0, false
		}
		k++
	}
	return k, true
}
