package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  []tea.KeyMsg
		want  int
	}{
		{"down", 1, []tea.KeyMsg{runes("j"), {Type: tea.KeyDown}}, 3},
		{"up stops at one", 2, []tea.KeyMsg{runes("k"), {Type: tea.KeyUp}}, 1},
		{"page down", 1, []tea.KeyMsg{{Type: tea.KeyPgDown}}, 11},
		{"page up clamps", 5, []tea.KeyMsg{{Type: tea.KeyPgUp}}, 1},
		{"home", 40, []tea.KeyMsg{runes("g")}, 1},
		{"start clamps", -3, nil, 1},
		{"upper bound", maxN, []tea.KeyMsg{runes("j")}, maxN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(New(tt.start), tt.keys...)
			if m.N() != tt.want {
				t.Errorf("N() = %d, want %d", m.N(), tt.want)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := New(1).Update(k)
		if cmd == nil {
			t.Fatalf("%q: expected quit command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected tea.QuitMsg", k.String())
		}
	}
}

func TestIgnoresOtherMessages(t *testing.T) {
	m := New(7)
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || next.(Model).N() != 7 {
		t.Error("non-key messages should not change the model")
	}
}

func TestView(t *testing.T) {
	view := New(2).View()

	for _, want := range []string{"P(1) = 1", "P(2) = 5", "P(3) = 12", "3 n + 1", "n (3 n - 1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// P(n+1) - P(n) at n = 2 is 7, P(3) = 12, 2P(2) = 10.
	for _, want := range []string{"= 7", "= 12", "= 10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	if !strings.Contains(New(1).View(), "hexagonal") {
		t.Error("P(1) = 1 should be marked hexagonal")
	}
}
