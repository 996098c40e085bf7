package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pagerWith(lines, height int) pagerModel {
	m := newPagerModel("wf.yaml", strings.Repeat("x\n", lines-1)+"x")
	m.height = height
	return m
}

func TestPagerScrolling(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		start int
		want  int
	}{
		{"down moves one line", []string{"j"}, 0, 1},
		{"up clamps at top", []string{"k"}, 0, 0},
		{"down clamps at bottom", []string{"j"}, 15, 15},
		{"page down advances a screen", []string{"f"}, 0, 5},
		{"page up returns a screen", []string{"b"}, 10, 5},
		{"G jumps to bottom", []string{"G"}, 0, 15},
		{"g jumps to top", []string{"g"}, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pagerWith(20, 5)
			m.offset = tt.start
			for _, k := range tt.keys {
				next, _ := m.Update(keyMsg(k))
				m = next.(pagerModel)
			}
			if m.offset != tt.want {
				t.Errorf("offset = %d, want %d", m.offset, tt.want)
			}
		})
	}
}

func TestPagerQuitKeys(t *testing.T) {
	for _, k := range []string{"q"} {
		m := pagerWith(5, 5)
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Errorf("key %q should quit", k)
		}
	}
}

func TestPagerResizeClampsOffset(t *testing.T) {
	m := pagerWith(20, 5)
	m.offset = 15
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 23})
	m = next.(pagerModel)
	// 23 rows leave 20 for content, so every line fits and the offset resets.
	if m.height != 20 {
		t.Errorf("height = %d, want 20", m.height)
	}
	if m.offset != 0 {
		t.Errorf("offset = %d, want 0", m.offset)
	}
}

func TestPagerViewShowsWindow(t *testing.T) {
	m := newPagerModel("wf.yaml", "one\ntwo\nthree\nfour")
	m.height = 2
	m.offset = 1

	view := m.View()
	if !strings.Contains(view, "two") || !strings.Contains(view, "three") {
		t.Errorf("view missing window lines:\n%s", view)
	}
	if strings.Contains(view, "four") {
		t.Errorf("view shows line past the window:\n%s", view)
	}
}
