// Package identity derives closed forms involving the pentagonal numbers
// P(n) = (3n**2 - n)/2 and prints them in a compact notation.
package identity

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/san-kum/euler/internal/poly"
)

// Variable is the symbol the formulas are written in. It stands for a
// positive integer.
const Variable = "n"

// TableSize is how many reference values Table is usually asked for.
const TableSize = 10

// Identity is one derived expression together with its label.
type Identity struct {
	Label string
	Expr  fmt.Stringer
	Value poly.Poly
}

// Pentagonal returns (3*v**2 - v)/2.
func Pentagonal(v poly.Poly) poly.Poly {
	return v.Mul(v).Scale(big.NewRat(3, 1)).Sub(v).Scale(big.NewRat(1, 2))
}

// Table evaluates the pentagonal formula at 1..k.
func Table(k int) []*big.Rat {
	if k <= 0 {
		return nil
	}
	p := Pentagonal(poly.Var(Variable))
	values := make([]*big.Rat, k)
	for i := range values {
		values[i] = p.EvalInt(int64(i + 1))
	}
	return values
}

// Derive returns, in order: P(n+1) expanded, 2P(n) simplified and
// P(n+1) - P(n) simplified.
func Derive() []Identity {
	n := poly.Var(Variable)
	p := Pentagonal(n)
	next := Pentagonal(n.Add(poly.Int(1)))

	double := p.Add(p)
	step := next.Sub(p)

	return []Identity{
		{Label: "n+1", Expr: next, Value: next},
		{Label: "2n", Expr: double.Simplify(), Value: double},
		// The header says "+" but the expression is the difference.
		{Label: "P(n+1) + P(n)", Expr: step.Simplify(), Value: step},
	}
}

// PrettyFormat renders "**" as "^" and "*" as a space.
func PrettyFormat(s string) string {
	s = strings.ReplaceAll(s, "**", "^")
	return strings.ReplaceAll(s, "*", " ")
}

// Print writes each identity as a plain label line followed by its
// formatted expression.
func Print(out io.Writer, ids []Identity) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(out, id.Label); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, PrettyFormat(id.Expr.String())); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable writes the reference values on one line.
func PrintTable(out io.Writer, values []*big.Rat) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.RatString()
	}
	_, err := fmt.Fprintf(out, "P(1..%d): %s\n", len(values), strings.Join(parts, " "))
	return err
}
