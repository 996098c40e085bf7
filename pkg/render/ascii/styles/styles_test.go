package styles

import (
	"testing"

	"github.com/flowscii/flowscii/pkg/workflow"
)

func TestForNode_GlyphTable(t *testing.T) {
	tests := []struct {
		nodeType workflow.NodeType
		want     BoxStyle
	}{
		{workflow.TypeStart, BoxStyle{'┌', '┐', '└', '┘', '─', '│'}},
		{workflow.TypeProcess, BoxStyle{'┌', '┐', '└', '┘', '─', '│'}},
		{workflow.TypeTool, BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}},
		{workflow.TypeDecision, BoxStyle{'╭', '╮', '╰', '╯', '─', '│'}},
		{workflow.TypeResult, BoxStyle{'┏', '┓', '┗', '┛', '━', '┃'}},
		{workflow.TypeSpecial, BoxStyle{'╒', '╕', '╘', '╛', '═', '│'}},
	}

	for _, tt := range tests {
		t.Run(string(tt.nodeType), func(t *testing.T) {
			if got := ForNode(tt.nodeType); got != tt.want {
				t.Errorf("ForNode(%s) = %+v, want %+v", tt.nodeType, got, tt.want)
			}
		})
	}
}

func TestForNode_UnknownFallsBack(t *testing.T) {
	if got := ForNode("mystery"); got != ForNode(workflow.TypeProcess) {
		t.Errorf("ForNode(unknown) = %+v, want process style", got)
	}
}

func TestForLine_GlyphTable(t *testing.T) {
	tests := []struct {
		style                  workflow.LineStyle
		vert, horiz            rune
		down, right, leftArrow rune
	}{
		{workflow.StyleNormal, '│', '─', 'v', '>', '<'},
		{workflow.StyleThick, '┃', '━', '▼', '▶', '◀'},
		{workflow.StyleDouble, '║', '═', '⇓', '⇒', '⇐'},
		{workflow.StyleDashed, '┊', '┄', 'v', '>', '<'},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			g := ForLine(tt.style)
			if g.Vertical != tt.vert {
				t.Errorf("Vertical = %q, want %q", g.Vertical, tt.vert)
			}
			if g.Horizontal != tt.horiz {
				t.Errorf("Horizontal = %q, want %q", g.Horizontal, tt.horiz)
			}
			if g.ArrowDown != tt.down {
				t.Errorf("ArrowDown = %q, want %q", g.ArrowDown, tt.down)
			}
			if g.ArrowRight != tt.right {
				t.Errorf("ArrowRight = %q, want %q", g.ArrowRight, tt.right)
			}
			if g.ArrowLeft != tt.leftArrow {
				t.Errorf("ArrowLeft = %q, want %q", g.ArrowLeft, tt.leftArrow)
			}
		})
	}
}

func TestForLine_DashedReusesSingleCorners(t *testing.T) {
	g := ForLine(workflow.StyleDashed)
	n := ForLine(workflow.StyleNormal)
	if g.DownRight != n.DownRight || g.UpLeft != n.UpLeft {
		t.Error("dashed corners should match the single-line set")
	}
}
