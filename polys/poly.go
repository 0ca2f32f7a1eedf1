package polys

import (
	"math/big"
	"slices"
	"strings"
)

// Poly is a sparse polynomial mapping exponents to coefficients, both of
// arbitrary precision. Terms with a zero coefficient are never stored, so two
// polys are equal iff they hold the same terms.
// The zero value is the zero polynomial. Polys are immutable.
type Poly struct {
	terms map[string]Term
}

type Term struct {
	Exp  *big.Int
	Coef *big.Int
}

// New sums the given terms into a canonical poly.
func New(terms ...Term) Poly {
	b := newBuilder()
	for _, term := range terms {
		b.add(term.Exp, term.Coef)
	}
	return b.poly()
}

func Monomial(exp, coef *big.Int) Poly {
	return New(Term{Exp: exp, Coef: coef})
}

// Constant returns the degree-0 poly c.
func Constant(c *big.Int) Poly {
	return Monomial(new(big.Int), c)
}

func (p Poly) Len() int {
	return len(p.terms)
}

func (p Poly) IsZero() bool {
	return len(p.terms) == 0
}

// Coef returns the coefficient of exp, 0 when absent.
func (p Poly) Coef(exp *big.Int) *big.Int {
	term, ok := p.terms[exp.String()]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(term.Coef)
}

// Terms returns copies of all terms ordered by ascending exponent.
func (p Poly) Terms() []Term {
	ret := make([]Term, 0, len(p.terms))
	for _, term := range p.terms {
		ret = append(ret, Term{
			Exp:  new(big.Int).Set(term.Exp),
			Coef: new(big.Int).Set(term.Coef),
		})
	}
	slices.SortFunc(ret, func(a, b Term) int {
		return a.Exp.Cmp(b.Exp)
	})
	return ret
}

// Degree returns the highest exponent. ok is false for the zero poly.
func (p Poly) Degree() (exp *big.Int, ok bool) {
	for _, term := range p.terms {
		if exp == nil || term.Exp.Cmp(exp) > 0 {
			exp = term.Exp
		}
	}
	if exp == nil {
		return nil, false
	}
	return new(big.Int).Set(exp), true
}

func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for key, term := range p.terms {
		other, ok := q.terms[key]
		if !ok {
			return false
		}
		if term.Coef.Cmp(other.Coef) != 0 {
			return false
		}
	}
	return true
}

func (p Poly) Add(q Poly) Poly {
	b := newBuilder()
	for _, term := range p.terms {
		b.add(term.Exp, term.Coef)
	}
	for _, term := range q.terms {
		b.add(term.Exp, term.Coef)
	}
	return b.poly()
}

func (p Poly) Neg() Poly {
	return p.Scale(big.NewInt(-1))
}

func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Scale multiplies every coefficient by k.
func (p Poly) Scale(k *big.Int) Poly {
	b := newBuilder()
	for _, term := range p.terms {
		b.add(term.Exp, new(big.Int).Mul(term.Coef, k))
	}
	return b.poly()
}

func (p Poly) Mul(q Poly) Poly {
	b := newBuilder()
	exp := new(big.Int)
	coef := new(big.Int)
	for _, l := range p.terms {
		for _, r := range q.terms {
			exp.Add(l.Exp, r.Exp)
			coef.Mul(l.Coef, r.Coef)
			b.add(exp, coef)
		}
	}
	return b.poly()
}

// String renders the poly as "{exp:coef exp:coef}" in ascending exponent order.
func (p Poly) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, term := range p.Terms() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(term.Exp.String())
		sb.WriteString(":")
		sb.WriteString(term.Coef.String())
	}
	sb.WriteString("}")
	return sb.String()
}

type builder map[string]Term

func newBuilder() builder {
	return make(builder)
}

func (b builder) add(exp, coef *big.Int) {
	if coef.Sign() == 0 {
		return
	}
	key := exp.String()
	term, ok := b[key]
	if !ok {
		b[key] = Term{
			Exp:  new(big.Int).Set(exp),
			Coef: new(big.Int).Set(coef),
		}
		return
	}
	term.Coef.Add(term.Coef, coef)
	if term.Coef.Sign() == 0 {
		delete(b, key)
	}
}

func (b builder) poly() Poly {
	if len(b) == 0 {
		return Poly{}
	}
	return Poly{
		terms: b,
	}
}
