package numbers

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/reusee/pilex/polys"
)

// LetterBase weights each letter of a name by its position.
const LetterBase = 256

var letterBase = big.NewInt(LetterBase)

// FromName encodes (rotated) name text. Letter i with code c becomes the
// term {i: c * 256^i} over the constant denominator 1. Every letter owns its
// exponent and no code is zero, so distinct texts never share an encoding.
func FromName(text string) (Number, error) {
	if text == "" {
		return Number{}, fmt.Errorf("empty name: %w", ErrInvalidName)
	}
	terms := make([]polys.Term, 0, len(text))
	weight := big.NewInt(1)
	for i, r := range []rune(text) {
		if !IsNameRune(r) {
			return Number{}, fmt.Errorf("%q is not a valid name: %w", text, ErrInvalidName)
		}
		terms = append(terms, polys.Term{
			Exp:  big.NewInt(int64(i)),
			Coef: new(big.Int).Mul(big.NewInt(int64(r)), weight),
		})
		weight = new(big.Int).Mul(weight, letterBase)
	}
	return Number{
		Numer: polys.New(terms...),
		Denom: polys.Constant(big.NewInt(1)),
	}, nil
}

// Letters decodes a number produced by FromName back to its text.
func Letters(n Number) (string, bool) {
	if !n.Denom.Equal(polys.Constant(big.NewInt(1))) {
		return "", false
	}
	terms := n.Numer.Terms()
	if len(terms) == 0 {
		return "", false
	}
	var sb strings.Builder
	weight := big.NewInt(1)
	code := new(big.Int)
	rem := new(big.Int)
	for i, term := range terms {
		if !term.Exp.IsInt64() || term.Exp.Int64() != int64(i) {
			return "", false
		}
		code.QuoRem(term.Coef, weight, rem)
		if rem.Sign() != 0 || !code.IsInt64() {
			return "", false
		}
		r := rune(code.Int64())
		if int64(r) != code.Int64() || !IsNameRune(r) {
			return "", false
		}
		sb.WriteRune(r)
		weight = new(big.Int).Mul(weight, letterBase)
	}
	return sb.String(), true
}

func IsNameStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func IsNameRune(r rune) bool {
	return IsNameStart(r) || r >= '0' && r <= '9'
}
