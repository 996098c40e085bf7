package ascii

import (
	"github.com/mattn/go-runewidth"

	"github.com/flowscii/flowscii/pkg/workflow"
	"github.com/flowscii/flowscii/pkg/workflow/layout"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	wrapWidth int
	gutter    int
}

// WithWrapWidth sets the word-wrap width for node descriptions.
func WithWrapWidth(w int) Option {
	return func(o *options) {
		if w > 0 {
			o.wrapWidth = w
		}
	}
}

// WithGutter sets the horizontal spacing reserved on each side of a box.
func WithGutter(g int) Option {
	return func(o *options) {
		if g >= 0 {
			o.gutter = g
		}
	}
}

// Render produces the complete diagram for a workflow as a block of
// monospaced text: the centered title, every node box, and every connector.
//
// Rendering is deterministic. Nodes keep their declaration order within a
// layer, connectors draw in declaration order, and the same workflow always
// yields byte-identical output.
func Render(wf *workflow.Workflow, opts ...Option) (string, error) {
	o := options{
		wrapWidth: DefaultWrapWidth,
		gutter:    layout.DefaultGutter,
	}
	for _, opt := range opts {
		opt(&o)
	}

	title := wf.Title()
	if wf.NodeCount() == 0 {
		return title, nil
	}

	boxes := make(map[string]Box, wf.NodeCount())
	sizes := make(map[string]layout.Size, wf.NodeCount())
	for _, n := range wf.Nodes() {
		b := RenderBox(n, o.wrapWidth)
		boxes[n.ID] = b
		sizes[n.ID] = layout.Size{W: b.W, H: b.H}
	}

	topMargin := 0
	if title != "" {
		topMargin = 2
	}
	l, err := layout.Build(wf, sizes,
		layout.WithGutter(o.gutter),
		layout.WithTopMargin(topMargin),
	)
	if err != nil {
		return "", err
	}

	conns := buildConnectors(wf, l)

	width := l.Width
	for _, cn := range conns {
		if cn.lane >= 0 && cn.lane+1 > width {
			width = cn.lane + 1
		}
	}
	titleWidth := runewidth.StringWidth(title)
	if titleWidth > width {
		width = titleWidth
	}

	c := NewCanvas(width, l.Height)
	if title != "" {
		c.WriteString(0, (width-titleWidth)/2, title)
	}

	// Connector lines first, then labels, then boxes. Boxes stamp last so
	// a long path passing a box's column cannot cut through its border.
	for _, cn := range conns {
		cn.drawPath(c)
	}
	for _, cn := range conns {
		cn.drawLabel(c, l.Slot)
	}
	for _, id := range wf.NodeIDs() {
		p := l.Placements[id]
		b := boxes[id]
		for i, line := range b.Lines {
			c.WriteString(p.Y+i, p.X, line)
		}
	}

	return c.String(), nil
}
