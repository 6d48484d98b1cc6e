package identity_test

import (
	"bytes"
	"math/big"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/euler/internal/identity"
	"github.com/san-kum/euler/internal/poly"
)

var _ = Describe("Pentagonal", func() {
	p := identity.Pentagonal(poly.Var(identity.Variable))

	It("yields the first pentagonal numbers", func() {
		Expect(p.EvalInt(1).RatString()).To(Equal("1"))
		Expect(p.EvalInt(2).RatString()).To(Equal("5"))
		Expect(p.EvalInt(3).RatString()).To(Equal("12"))
		Expect(p.EvalInt(4).RatString()).To(Equal("22"))
	})

	It("builds the reference table for 1..10", func() {
		table := identity.Table(identity.TableSize)
		Expect(table).To(HaveLen(10))

		got := make([]string, len(table))
		for i, v := range table {
			got[i] = v.RatString()
		}
		Expect(got).To(Equal([]string{"1", "5", "12", "22", "35", "51", "70", "92", "117", "145"}))
	})
})

var _ = Describe("Derive", func() {
	ids := identity.Derive()

	It("returns three labeled identities in order", func() {
		Expect(ids).To(HaveLen(3))
		Expect(ids[0].Label).To(Equal("n+1"))
		Expect(ids[1].Label).To(Equal("2n"))
		Expect(ids[2].Label).To(Equal("P(n+1) + P(n)"))
	})

	It("expands P(n+1)", func() {
		Expect(ids[0].Expr.String()).To(Equal("3*n**2/2 + 5*n/2 + 1"))
	})

	It("simplifies 2P(n)", func() {
		Expect(ids[1].Expr.String()).To(Equal("n*(3*n - 1)"))
	})

	It("reduces P(n+1) - P(n) to 3*n + 1", func() {
		Expect(ids[2].Expr.String()).To(Equal("3*n + 1"))

		step := ids[2].Value
		Expect(step.EvalInt(1).Cmp(big.NewRat(4, 1))).To(BeZero())
		Expect(step.EvalInt(2).Cmp(big.NewRat(7, 1))).To(BeZero())
		Expect(step.EvalInt(3).Cmp(big.NewRat(10, 1))).To(BeZero())
	})

	It("agrees with the numeric table", func() {
		table := identity.Table(identity.TableSize + 1)
		for k := 1; k <= identity.TableSize; k++ {
			diff := new(big.Rat).Sub(table[k], table[k-1])
			Expect(ids[2].Value.EvalInt(int64(k)).Cmp(diff)).To(BeZero())

			twice := new(big.Rat).Add(table[k-1], table[k-1])
			Expect(ids[1].Value.EvalInt(int64(k)).Cmp(twice)).To(BeZero())
		}
	})
})

var _ = Describe("PrettyFormat", func() {
	DescribeTable("rewrites operators",
		func(in, want string) {
			Expect(identity.PrettyFormat(in)).To(Equal(want))
		},
		Entry("power", "n**2", "n^2"),
		Entry("product", "3*n", "3 n"),
		Entry("mixed", "3*n**2/2 + 5*n/2 + 1", "3 n^2/2 + 5 n/2 + 1"),
		Entry("factored", "n*(3*n - 1)", "n (3 n - 1)"),
		Entry("untouched", "3 n + 1", "3 n + 1"),
	)
})

var _ = Describe("Print", func() {
	It("writes a label line followed by the expression", func() {
		var buf bytes.Buffer
		Expect(identity.Print(&buf, identity.Derive())).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(Equal([]string{
			"n+1",
			"3 n^2/2 + 5 n/2 + 1",
			"2n",
			"n (3 n - 1)",
			"P(n+1) + P(n)",
			"3 n + 1",
		}))
		Expect(buf.String()).NotTo(ContainSubstring("\x1b"))
	})

	It("writes the reference table", func() {
		var buf bytes.Buffer
		Expect(identity.PrintTable(&buf, identity.Table(4))).To(Succeed())
		Expect(buf.String()).To(Equal("P(1..4): 1 5 12 22\n"))
	})
})
