package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/flowscii/flowscii/pkg/render/ascii/styles"
	"github.com/flowscii/flowscii/pkg/workflow"
)

// DefaultWrapWidth is the column budget for word-wrapping descriptions.
// Descriptions wider than the node's first content line wrap at this width,
// or at the first line's width when that is longer.
const DefaultWrapWidth = 30

// boxPadding is the fixed horizontal padding inside a box border, per side.
const boxPadding = 1

// Box is one node rendered as a bordered block. Every line has the same
// display width; W and H are measured in character cells.
type Box struct {
	Lines []string
	W, H  int
}

// RenderBox renders a node's content and border into a Box.
//
// The first content line is the icon and label; the description, when
// present, word-wraps onto further lines. All measurement uses display
// width so that wide glyphs (emoji, CJK) keep the border aligned.
func RenderBox(n workflow.Node, wrapWidth int) Box {
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	content := contentLines(n, wrapWidth)

	inner := 0
	for _, line := range content {
		if w := runewidth.StringWidth(line); w > inner {
			inner = w
		}
	}

	s := styles.ForNode(n.Type)
	width := inner + 2*boxPadding + 2

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, string(s.TopLeft)+strings.Repeat(string(s.Horizontal), width-2)+string(s.TopRight))
	for _, line := range content {
		pad := strings.Repeat(" ", inner-runewidth.StringWidth(line))
		lines = append(lines, string(s.Vertical)+" "+line+pad+" "+string(s.Vertical))
	}
	lines = append(lines, string(s.BottomLeft)+strings.Repeat(string(s.Horizontal), width-2)+string(s.BottomRight))

	return Box{Lines: lines, W: width, H: len(lines)}
}

// contentLines builds the text drawn inside the box: the display label
// first, then the word-wrapped description.
func contentLines(n workflow.Node, wrapWidth int) []string {
	first := n.DisplayLabel()
	lines := []string{first}

	if n.Description != "" {
		budget := runewidth.StringWidth(first)
		if wrapWidth > budget {
			budget = wrapWidth
		}
		lines = append(lines, wrapWords(n.Description, budget)...)
	}
	return lines
}

// wrapWords greedily wraps text at word boundaries within a display-width
// budget. A single word wider than the budget gets its own line rather than
// being split mid-word.
func wrapWords(text string, budget int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	width := runewidth.StringWidth(current)

	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if width+1+w <= budget {
			current += " " + word
			width += 1 + w
			continue
		}
		lines = append(lines, current)
		current = word
		width = w
	}
	return append(lines, current)
}
