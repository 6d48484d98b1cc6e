// Package browse is an interactive terminal view of the pentagonal numbers
// and the identities from package identity evaluated at a chosen n.
package browse

import (
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/euler/internal/identity"
	"github.com/san-kum/euler/internal/numtheory"
)

const (
	pageSize   = 10
	windowSize = 5
	// Keeps 8*P(n)+1 far inside uint64.
	maxN = 1_000_000
)

// Model is the bubbletea model of the browser.
type Model struct {
	n   int
	ids []identity.Identity
}

func New(start int) Model {
	return Model{n: clamp(start), ids: identity.Derive()}
}

// N returns the selected index.
func (m Model) N() int {
	return m.n
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.n = clamp(m.n - 1)
	case "down", "j":
		m.n = clamp(m.n + 1)
	case "pgup":
		m.n = clamp(m.n - pageSize)
	case "pgdown":
		m.n = clamp(m.n + pageSize)
	case "home", "g":
		m.n = 1
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(title.Render("pentagonal numbers"))
	b.WriteString("\n\n")

	first := max(1, m.n-windowSize/2)
	for k := first; k < first+windowSize; k++ {
		p := numtheory.Pentagonal(uint64(k))
		line := fmt.Sprintf("P(%d) = %d", k, p)
		if numtheory.IsHexagonal(p) {
			line += "  hexagonal"
		}
		if k == m.n {
			b.WriteString(selected.Render("> " + line))
		} else {
			b.WriteString(subtle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	x := big.NewRat(int64(m.n), 1)
	for _, id := range m.ids {
		expr := identity.PrettyFormat(id.Expr.String())
		b.WriteString(label.Render(fmt.Sprintf("%-14s %-22s", id.Label, expr)))
		b.WriteString(" = ")
		b.WriteString(value.Render(id.Value.Eval(x).RatString()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hint.Render("j/k move · pgup/pgdown page · g first · q quit"))

	return panel.Render(b.String())
}

// Run starts the browser at n = start.
func Run(start int) error {
	_, err := tea.NewProgram(New(start)).Run()
	return err
}

func clamp(n int) int {
	return max(1, min(n, maxN))
}
