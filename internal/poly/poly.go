// Package poly implements exact univariate polynomials with rational
// coefficients. Values are immutable; every operation returns a new Poly.
package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Poly is a polynomial in a single named variable. coeffs[d] is the
// coefficient of degree d; the slice never ends in a zero coefficient.
type Poly struct {
	name   string
	coeffs []*big.Rat
}

// Var returns the polynomial consisting of the variable itself.
func Var(name string) Poly {
	return Poly{name: name, coeffs: []*big.Rat{new(big.Rat), big.NewRat(1, 1)}}
}

func Const(v *big.Rat) Poly {
	return newPoly("", []*big.Rat{new(big.Rat).Set(v)})
}

func Int(v int64) Poly {
	return Const(big.NewRat(v, 1))
}

func newPoly(name string, coeffs []*big.Rat) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	return Poly{name: name, coeffs: coeffs[:n]}
}

// Name returns the variable name, empty for constants.
func (p Poly) Name() string {
	return p.name
}

// Degree returns the degree of p, -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns a copy of the coefficient of degree d.
func (p Poly) Coeff(d int) *big.Rat {
	if d < 0 || d >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[d])
}

func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p Poly) terms() int {
	n := 0
	for _, c := range p.coeffs {
		if c.Sign() != 0 {
			n++
		}
	}
	return n
}

func joinName(a, b Poly) string {
	if a.name != "" && a.Degree() > 0 {
		return a.name
	}
	if b.name != "" {
		return b.name
	}
	return a.name
}

func (p Poly) Add(q Poly) Poly {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat).Add(p.Coeff(i), q.Coeff(i))
	}
	return newPoly(joinName(p, q), out)
}

func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(big.NewRat(-1, 1)))
}

func (p Poly) Scale(r *big.Rat) Poly {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Mul(c, r)
	}
	return newPoly(p.name, out)
}

func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{name: joinName(p, q)}
	}
	out := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j].Add(out[i+j], tmp.Mul(a, b))
		}
	}
	return newPoly(joinName(p, q), out)
}

// Compose substitutes q for the variable of p, e.g. p(n) ∘ (n+1) = p(n+1).
func (p Poly) Compose(q Poly) Poly {
	result := Poly{name: q.name}
	for d := p.Degree(); d >= 0; d-- {
		result = result.Mul(q).Add(Const(p.coeffs[d]))
	}
	result.name = q.name
	return result
}

// Eval evaluates p at x using Horner's rule.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for d := p.Degree(); d >= 0; d-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[d])
	}
	return acc
}

// EvalInt is Eval at an integer point.
func (p Poly) EvalInt(x int64) *big.Rat {
	return p.Eval(big.NewRat(x, 1))
}

// Equal compares coefficients; the variable name is ignored.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders the expanded form in descending degree, with '*' for
// products and '**' for powers: "3*n**2/2 + 5*n/2 + 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	first := true
	for d := p.Degree(); d >= 0; d-- {
		c := p.coeffs[d]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case first && c.Sign() < 0:
			sb.WriteString("-")
		case !first && c.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		sb.WriteString(term(new(big.Rat).Abs(c), p.name, d))
	}
	return sb.String()
}

func monomial(name string, d int) string {
	if d == 1 {
		return name
	}
	return name + "**" + strconv.Itoa(d)
}

// term formats a positive coefficient times name**d.
func term(c *big.Rat, name string, d int) string {
	if d == 0 {
		return c.RatString()
	}

	s := monomial(name, d)
	if !c.Num().IsInt64() || c.Num().Int64() != 1 {
		s = c.Num().String() + "*" + s
	}
	if !c.IsInt() {
		s += "/" + c.Denom().String()
	}
	return s
}
