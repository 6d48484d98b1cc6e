package poly

import (
	"math/big"
	"strings"
)

// Expr is a polynomial in simplified display form:
//
//	Coef * name**Power * Inner / Denom
//
// When nothing can be pulled out, Power is 0, Coef and Denom are 1 and Inner
// is the polynomial itself; otherwise Inner has integer coefficients.
type Expr struct {
	Coef  *big.Int
	Power int
	Inner Poly
	Denom *big.Int
}

// Simplify pulls the common monomial factor out of a polynomial with more
// than one term, together with the integer content and the common
// denominator of what remains: 3*n**2 - n becomes n*(3*n - 1).
func (p Poly) Simplify() Expr {
	plain := Expr{Coef: big.NewInt(1), Inner: p, Denom: big.NewInt(1)}

	low := 0
	for low < len(p.coeffs) && p.coeffs[low].Sign() == 0 {
		low++
	}
	if p.terms() < 2 || low == 0 {
		return plain
	}

	shifted := newPoly(p.name, copyRats(p.coeffs[low:]))

	denom := big.NewInt(1)
	for _, c := range shifted.coeffs {
		denom = lcm(denom, c.Denom())
	}
	inner := shifted.Scale(new(big.Rat).SetInt(denom))

	content := new(big.Int)
	for _, c := range inner.coeffs {
		if c.Sign() != 0 {
			content = new(big.Int).GCD(nil, nil, content, new(big.Int).Abs(c.Num()))
		}
	}
	if content.Cmp(big.NewInt(1)) > 0 {
		inner = inner.Scale(new(big.Rat).SetFrac(big.NewInt(1), content))
	} else {
		content.SetInt64(1)
	}

	return Expr{Coef: content, Power: low, Inner: inner, Denom: denom}
}

// Poly multiplies the factors back into expanded form.
func (e Expr) Poly() Poly {
	x := Var(e.Inner.name)
	out := e.Inner
	for i := 0; i < e.Power; i++ {
		out = out.Mul(x)
	}
	return out.Scale(new(big.Rat).SetFrac(e.Coef, e.Denom))
}

func (e Expr) String() string {
	if e.Power == 0 {
		return e.Inner.String()
	}

	var sb strings.Builder
	if e.Coef.Cmp(big.NewInt(1)) != 0 {
		sb.WriteString(e.Coef.String())
		sb.WriteString("*")
	}
	sb.WriteString(monomial(e.Inner.name, e.Power))
	sb.WriteString("*(")
	sb.WriteString(e.Inner.String())
	sb.WriteString(")")
	if e.Denom.Cmp(big.NewInt(1)) != 0 {
		sb.WriteString("/")
		sb.WriteString(e.Denom.String())
	}
	return sb.String()
}

func copyRats(in []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(in))
	for i, c := range in {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Mul(a, b)
	return out.Div(out, g)
}
