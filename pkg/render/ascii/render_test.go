package ascii

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/flowscii/flowscii/pkg/workflow"
)

func mustWorkflow(t *testing.T, title string, nodes []workflow.Node, conns []workflow.Connection) *workflow.Workflow {
	t.Helper()
	wf, err := workflow.Build(title, nodes, conns)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return wf
}

func TestRenderLinear(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "start", Label: "Start", Type: workflow.TypeStart},
			{ID: "build", Label: "Build", Type: workflow.TypeProcess},
			{ID: "done", Label: "Done", Type: workflow.TypeResult},
		},
		[]workflow.Connection{
			{Source: "start", Target: "build"},
			{Source: "build", Target: "done"},
		},
	)

	want := strings.Join([]string{
		"    ┌───────┐",
		"    │ Start │",
		"    └───────┘",
		"        │",
		"        │",
		"        v",
		"    ┌───────┐",
		"    │ Build │",
		"    └───────┘",
		"        │",
		"        │",
		"        v",
		"    ┏━━━━━━┓",
		"    ┃ Done ┃",
		"    ┗━━━━━━┛",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("linear diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBranchWithLabels(t *testing.T) {
	wf := mustWorkflow(t, "Release",
		[]workflow.Node{
			{ID: "test", Label: "Tests OK?", Type: workflow.TypeDecision},
			{ID: "deploy", Label: "Deploy", Type: workflow.TypeProcess},
			{ID: "fail", Label: "Abort", Type: workflow.TypeResult},
		},
		[]workflow.Connection{
			{Source: "test", Target: "deploy", Label: "Yes"},
			{Source: "test", Target: "fail", Label: "No", Style: workflow.StyleDashed},
		},
	)

	want := strings.Join([]string{
		"                 Release",
		"",
		"    ╭───────────╮",
		"    │ Tests OK? │",
		"    ╰───────────╯",
		"          ┊ Yes",
		"          └┄┄┄┄┄┄┄┄┄No┄┄┄┄┄┄┄┄┄┐",
		"          v                    v",
		"     ┌────────┐            ┏━━━━━━━┓",
		"     │ Deploy │            ┃ Abort ┃",
		"     └────────┘            ┗━━━━━━━┛",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("branch diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSiblingBranchesMergeIntoTees(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "d", Label: "Route", Type: workflow.TypeDecision},
			{ID: "x", Label: "A"},
			{ID: "y", Label: "B"},
			{ID: "z", Label: "C"},
		},
		[]workflow.Connection{
			{Source: "d", Target: "x"},
			{Source: "d", Target: "y"},
			{Source: "d", Target: "z"},
		},
	)

	want := strings.Join([]string{
		"    ╭───────╮",
		"    │ Route │",
		"    ╰───────╯",
		"        │",
		"        ├────────────────┬────────────────┐",
		"        v                v                v",
		"      ┌───┐            ┌───┐            ┌───┐",
		"      │ A │            │ B │            │ C │",
		"      └───┘            └───┘            └───┘",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("fan-out diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFanIn(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "a", Label: "Lint"},
			{ID: "b", Label: "Test"},
			{ID: "c", Label: "Merge", Type: workflow.TypeResult},
		},
		[]workflow.Connection{
			{Source: "a", Target: "c"},
			{Source: "b", Target: "c"},
		},
	)

	want := strings.Join([]string{
		"    ┌──────┐         ┌──────┐",
		"    │ Lint │         │ Test │",
		"    └──────┘         └──────┘",
		"        │                │",
		"        ├────────────────┘",
		"        v",
		"    ┏━━━━━━━┓",
		"    ┃ Merge ┃",
		"    ┗━━━━━━━┛",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("fan-in diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBackEdge(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "plan", Label: "Plan", Type: workflow.TypeStart},
			{ID: "code", Label: "Code", Type: workflow.TypeProcess},
			{ID: "review", Label: "Review", Type: workflow.TypeDecision},
		},
		[]workflow.Connection{
			{Source: "plan", Target: "code"},
			{Source: "code", Target: "review"},
			{Source: "review", Target: "code", Label: "rework", Style: workflow.StyleDashed},
		},
	)

	want := strings.Join([]string{
		"     ┌──────┐",
		"     │ Plan │",
		"     └──────┘",
		"         │",
		"         │",
		"         v",
		"     ┌──────┐",
		"     │ Code │<┄┄┄┄┄┄┄┄┄┐",
		"     └──────┘          ┊",
		"         │             ┊",
		"         │             ┊",
		"         v             ┊",
		"    ╭────────╮ rework  ┊",
		"    │ Review │┄┄┄┄┄┄┄┄┄┘",
		"    ╰────────╯",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("back-edge diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSelfLoop(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{{ID: "poll", Label: "Poll"}},
		[]workflow.Connection{{Source: "poll", Target: "poll", Style: workflow.StyleDashed}},
	)

	want := strings.Join([]string{
		"    ┌──────┐",
		"    │ Poll │┄┄┐",
		"    └──────┘<┄┘",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("self-loop diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWideGlyphsKeepBordersAligned(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{{
			ID:          "ship",
			Label:       "Ship",
			Type:        workflow.TypeTool,
			Icon:        "🚀",
			Description: "Push the release artifacts to the registry",
		}},
		nil,
	)

	want := strings.Join([]string{
		"    ╔═══════════════════════════════╗",
		"    ║ 🚀 Ship                       ║",
		"    ║ Push the release artifacts to ║",
		"    ║ the registry                  ║",
		"    ╚═══════════════════════════════╝",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("wide-glyph diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmptyWorkflow(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "no title", title: "", want: ""},
		{name: "title only", title: "Pipeline", want: "Pipeline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := mustWorkflow(t, tt.title, nil, nil)
			got, err := Render(wf)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	wf := mustWorkflow(t, "CI",
		[]workflow.Node{
			{ID: "a", Label: "Fetch", Type: workflow.TypeStart},
			{ID: "b", Label: "Lint"},
			{ID: "c", Label: "Test"},
			{ID: "d", Label: "Publish", Type: workflow.TypeResult},
		},
		[]workflow.Connection{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "d"},
			{Source: "c", Target: "d"},
			{Source: "d", Target: "a", Style: workflow.StyleDashed},
		},
	)

	first, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Render(wf)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got != first {
			t.Fatalf("run %d differs from first render\nfirst:\n%s\ngot:\n%s", i, first, got)
		}
	}
}

func TestRenderArrowsTouchTargetBorders(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "a", Label: "One"},
			{ID: "b", Label: "Two"},
			{ID: "c", Label: "Three"},
		},
		[]workflow.Connection{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
		},
	)

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(got, "\n")

	// Every arrowhead must sit directly above a top-border cell. All glyphs
	// here are single-width, so rune index equals column.
	found := 0
	for i := 0; i < len(lines)-1; i++ {
		below := []rune(lines[i+1])
		for j, r := range []rune(lines[i]) {
			if r != 'v' {
				continue
			}
			found++
			if j >= len(below) || (below[j] != '─' && below[j] != '┌' && below[j] != '┐') {
				t.Errorf("arrow at line %d col %d does not touch a box border", i, j)
			}
		}
	}
	if found != 2 {
		t.Errorf("expected 2 arrowheads, found %d", found)
	}
}

func TestRenderOptions(t *testing.T) {
	wf := mustWorkflow(t, "",
		[]workflow.Node{{ID: "n", Label: "Node", Description: "alpha beta gamma delta"}},
		nil,
	)

	narrow, err := Render(wf, WithWrapWidth(10))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	wide, err := Render(wf, WithWrapWidth(40))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if narrowLines, wideLines := strings.Count(narrow, "\n"), strings.Count(wide, "\n"); narrowLines <= wideLines {
		t.Errorf("narrow wrap should produce more lines: narrow=%d wide=%d", narrowLines, wideLines)
	}

	tight, err := Render(wf, WithGutter(0))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.HasPrefix(tight, "    ") {
		t.Errorf("zero gutter should remove the left margin:\n%s", tight)
	}
}

func TestRenderWideSideLabelCrossingBoxKeepsColumns(t *testing.T) {
	// The back-edge label runs under a sibling box; the box border lands
	// mid-glyph in the wide-rune label, and the row must keep its width.
	wf := mustWorkflow(t, "",
		[]workflow.Node{
			{ID: "a", Label: "Alpha", Type: workflow.TypeStart},
			{ID: "b", Label: "Beta"},
			{ID: "c", Label: "Gamma"},
		},
		[]workflow.Connection{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "a", Label: "日本語日本語日本語"},
		},
	)

	want := strings.Join([]string{
		"    ┌───────┐",
		"    │ Alpha │<───────────────────────────────┐",
		"    └───────┘                                │",
		"        │                                    │",
		"        ├────────────────┐                   │",
		"        v                v                   │",
		"    ┌──────┐ 日本語日┌───────┐               │",
		"    │ Beta │─────────│ Gamma │───────────────┘",
		"    └──────┘         └───────┘",
	}, "\n")

	got, err := Render(wf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("wide label diagram mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}

	// The side lane must sit at the same display column on every row it
	// crosses, including the row where the label meets Gamma's border.
	lines := strings.Split(got, "\n")
	lane := -1
	for i := 1; i < len(lines)-1; i++ {
		col := 0
		for _, r := range lines[i] {
			if r == '│' && col > 40 {
				if lane < 0 {
					lane = col
				} else if col != lane {
					t.Errorf("lane drifted to column %d on line %d, want %d", col, i, lane)
				}
			}
			col += runewidth.RuneWidth(r)
		}
	}
}
