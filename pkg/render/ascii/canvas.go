package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wideFiller marks the second cell of a double-width glyph. It is skipped
// during serialization so that a wide rune advances the visual column by
// two while occupying one logical position in the output.
const wideFiller = '\x00'

// Canvas is a flat character grid indexed by (row, column) with explicit
// bounds. Writes outside the grid are dropped, which lets callers clip
// decorations (labels, lanes) without bookkeeping.
type Canvas struct {
	width  int
	height int
	cells  []rune
}

// NewCanvas allocates a width×height grid filled with spaces.
func NewCanvas(width, height int) *Canvas {
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Set writes a single glyph at (row, col). Out-of-bounds writes are ignored.
// Overwriting either half of a double-width pair blanks the other half, so
// the row never loses a display column to an orphaned wide rune.
func (c *Canvas) Set(row, col int, r rune) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	i := row*c.width + col
	if c.cells[i] == wideFiller && col > 0 && runewidth.RuneWidth(c.cells[i-1]) == 2 {
		c.cells[i-1] = ' '
	}
	if runewidth.RuneWidth(c.cells[i]) == 2 && col+1 < c.width && c.cells[i+1] == wideFiller {
		c.cells[i+1] = ' '
	}
	c.cells[i] = r
}

// Get returns the glyph at (row, col), or a space if out of bounds.
func (c *Canvas) Get(row, col int) rune {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return ' '
	}
	return c.cells[row*c.width+col]
}

// WriteString stamps s starting at (row, col), advancing by display width.
// Double-width runes consume two cells; the trailing cell is marked so the
// serializer does not emit a stray space after them. Writes past the right
// edge are clipped.
func (c *Canvas) WriteString(row, col int, s string) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(row, col, r)
		if w == 2 {
			c.Set(row, col+1, wideFiller)
		}
		col += w
	}
}

// String serializes the grid into newline-joined text lines. Trailing
// spaces on each line and trailing blank lines are trimmed; interior
// alignment is preserved exactly.
func (c *Canvas) String() string {
	lines := make([]string, 0, c.height)
	for row := 0; row < c.height; row++ {
		var b strings.Builder
		for col := 0; col < c.width; col++ {
			r := c.cells[row*c.width+col]
			if r == wideFiller {
				continue
			}
			b.WriteRune(r)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
