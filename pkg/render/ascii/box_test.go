package ascii

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/flowscii/flowscii/pkg/workflow"
)

func TestRenderBoxShape(t *testing.T) {
	b := RenderBox(workflow.Node{ID: "n", Label: "Start", Type: workflow.TypeStart}, 0)

	want := []string{
		"┌───────┐",
		"│ Start │",
		"└───────┘",
	}
	if b.W != 9 || b.H != 3 {
		t.Errorf("got %dx%d, want 9x3", b.W, b.H)
	}
	for i, line := range b.Lines {
		if line != want[i] {
			t.Errorf("line %d: got %q, want %q", i, line, want[i])
		}
	}
}

func TestRenderBoxLinesShareWidth(t *testing.T) {
	nodes := []workflow.Node{
		{ID: "a", Label: "Plain", Type: workflow.TypeProcess},
		{ID: "b", Label: "Deploy", Type: workflow.TypeTool, Icon: "🚀"},
		{ID: "c", Label: "日本語", Type: workflow.TypeSpecial, Description: "wide text 混在 here"},
	}
	for _, n := range nodes {
		b := RenderBox(n, 0)
		for i, line := range b.Lines {
			if w := runewidth.StringWidth(line); w != b.W {
				t.Errorf("node %s line %d: display width %d, box width %d", n.ID, i, w, b.W)
			}
		}
	}
}

func TestRenderBoxDescriptionWraps(t *testing.T) {
	n := workflow.Node{
		ID:          "n",
		Label:       "Job",
		Description: "one two three four five six seven eight nine ten",
	}

	b := RenderBox(n, 12)
	// Border rows plus label plus wrapped description.
	if b.H < 5 {
		t.Fatalf("expected wrapped description, got height %d:\n%s", b.H, strings.Join(b.Lines, "\n"))
	}
	for i, line := range b.Lines[1 : b.H-1] {
		inner := strings.TrimSuffix(strings.TrimPrefix(line, "│ "), " │")
		if w := runewidth.StringWidth(inner); w > 12 {
			t.Errorf("content line %d exceeds wrap budget: %q (width %d)", i, inner, w)
		}
	}
}

func TestRenderBoxLongLabelWidensWrapBudget(t *testing.T) {
	n := workflow.Node{
		ID:          "n",
		Label:       "A label far wider than the wrap width itself",
		Description: "short desc",
	}

	b := RenderBox(n, 10)
	if b.H != 4 {
		t.Errorf("description should fit one line under a wide label, got height %d", b.H)
	}
}

func TestWrapWordsOversizeWord(t *testing.T) {
	lines := wrapWords("tiny supercalifragilistic tiny", 8)
	want := []string{"tiny", "supercalifragilistic", "tiny"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderBoxUnknownTypeUsesDefaultBorder(t *testing.T) {
	b := RenderBox(workflow.Node{ID: "n", Label: "X", Type: workflow.NodeType("mystery")}, 0)
	if !strings.HasPrefix(b.Lines[0], "┌") {
		t.Errorf("unknown type should render the plain border, got %q", b.Lines[0])
	}
}
