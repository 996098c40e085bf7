// Package styles holds the glyph tables for box borders and connector lines.
//
// Both tables are total: every declared node type and connection style maps
// to exactly one glyph set, and unknown values fall back to the default
// single-line set. The tables are data, not behavior; rendering logic lives
// in pkg/render/ascii.
package styles

import "github.com/flowscii/flowscii/pkg/workflow"

// BoxStyle is the border glyph set for one node type.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// boxStyles maps every node type to its border style. start and process
// share the plain single-line box; the remaining types each get a visually
// distinct border so a reader can tell step kinds apart at a glance.
var boxStyles = map[workflow.NodeType]BoxStyle{
	workflow.TypeStart:    {'┌', '┐', '└', '┘', '─', '│'},
	workflow.TypeProcess:  {'┌', '┐', '└', '┘', '─', '│'},
	workflow.TypeTool:     {'╔', '╗', '╚', '╝', '═', '║'},
	workflow.TypeDecision: {'╭', '╮', '╰', '╯', '─', '│'},
	workflow.TypeResult:   {'┏', '┓', '┗', '┛', '━', '┃'},
	workflow.TypeSpecial:  {'╒', '╕', '╘', '╛', '═', '│'},
}

// ForNode returns the border style for a node type.
// Unknown types get the plain single-line box.
func ForNode(t workflow.NodeType) BoxStyle {
	if s, ok := boxStyles[t]; ok {
		return s
	}
	return boxStyles[workflow.TypeProcess]
}

// LineGlyphs is the connector glyph set for one line style.
//
// Corner glyphs are named for the two directions they open toward, matching
// the box-drawing convention: DownRight is ┌ (opens down and right), UpLeft
// is ┘ (opens up and left), and so on. Tee glyphs join a corner with a line
// already on the canvas where two connectors share a cell.
type LineGlyphs struct {
	Vertical   rune
	Horizontal rune

	DownRight rune // ┌
	DownLeft  rune // ┐
	UpRight   rune // └
	UpLeft    rune // ┘

	TeeRight rune // ├
	TeeLeft  rune // ┤
	TeeUp    rune // ┴
	TeeDown  rune // ┬
	Cross    rune // ┼

	ArrowDown  rune
	ArrowRight rune
	ArrowLeft  rune
}

// lineGlyphs maps every connection style to its glyph set. The dashed style
// reuses the single-line corners; only its straight runs are dashed.
var lineGlyphs = map[workflow.LineStyle]LineGlyphs{
	workflow.StyleNormal: {
		Vertical: '│', Horizontal: '─',
		DownRight: '┌', DownLeft: '┐', UpRight: '└', UpLeft: '┘',
		TeeRight: '├', TeeLeft: '┤', TeeUp: '┴', TeeDown: '┬', Cross: '┼',
		ArrowDown: 'v', ArrowRight: '>', ArrowLeft: '<',
	},
	workflow.StyleThick: {
		Vertical: '┃', Horizontal: '━',
		DownRight: '┏', DownLeft: '┓', UpRight: '┗', UpLeft: '┛',
		TeeRight: '┣', TeeLeft: '┫', TeeUp: '┻', TeeDown: '┳', Cross: '╋',
		ArrowDown: '▼', ArrowRight: '▶', ArrowLeft: '◀',
	},
	workflow.StyleDouble: {
		Vertical: '║', Horizontal: '═',
		DownRight: '╔', DownLeft: '╗', UpRight: '╚', UpLeft: '╝',
		TeeRight: '╠', TeeLeft: '╣', TeeUp: '╩', TeeDown: '╦', Cross: '╬',
		ArrowDown: '⇓', ArrowRight: '⇒', ArrowLeft: '⇐',
	},
	workflow.StyleDashed: {
		Vertical: '┊', Horizontal: '┄',
		DownRight: '┌', DownLeft: '┐', UpRight: '└', UpLeft: '┘',
		TeeRight: '├', TeeLeft: '┤', TeeUp: '┴', TeeDown: '┬', Cross: '┼',
		ArrowDown: 'v', ArrowRight: '>', ArrowLeft: '<',
	},
}

// ForLine returns the glyph set for a connection style.
// Unknown styles get the normal single-line set.
func ForLine(s workflow.LineStyle) LineGlyphs {
	if g, ok := lineGlyphs[s]; ok {
		return g
	}
	return lineGlyphs[workflow.StyleNormal]
}
