package layout

import (
	"github.com/flowscii/flowscii/pkg/errors"
	"github.com/flowscii/flowscii/pkg/workflow"
)

// Default spacing, in character cells.
const (
	// DefaultGutter is the horizontal breathing room on each side of a box
	// within its slot.
	DefaultGutter = 4

	// DefaultGap is the number of connector rows between two layers: one
	// for the drop out of the source, one for the horizontal routing run,
	// one for the arrow above the target.
	DefaultGap = 3
)

// Size is the rendered dimensions of one node box, in character cells.
// Widths are display cells, not bytes or runes.
type Size struct {
	W, H int
}

// Placement is the absolute position of one node box on the canvas grid.
// Row 0 is the top of the canvas; column 0 is the left edge.
type Placement struct {
	Layer int // vertical rank
	Order int // position within the layer
	X, Y  int // top-left corner
	W, H  int // box dimensions
}

// TopRow returns the canvas row of the box's top border.
func (p Placement) TopRow() int { return p.Y }

// BottomRow returns the canvas row of the box's bottom border.
func (p Placement) BottomRow() int { return p.Y + p.H - 1 }

// RightCol returns the canvas column of the box's right border.
func (p Placement) RightCol() int { return p.X + p.W - 1 }

// CenterCol returns the column of the box's vertical center line, where
// top and bottom connectors anchor.
func (p Placement) CenterCol() int { return p.X + p.W/2 }

// MiddleRow returns the row of the box's horizontal center line, where
// side connectors anchor.
func (p Placement) MiddleRow() int { return p.Y + p.H/2 }

// Layout is the computed geometry for a whole workflow: one placement per
// node plus the grid extents the compositor needs.
type Layout struct {
	Placements map[string]Placement
	Rows       [][]string // node IDs by layer, ordered within each layer
	Slot       int        // width of one layer slot in columns
	Gap        int        // connector rows between layers
	Width      int        // columns spanned by the widest layer
	Height     int        // rows spanned, including the top margin
}

// Option configures Build.
type Option func(*options)

type options struct {
	gutter    int
	gap       int
	topMargin int
}

// WithGutter overrides the horizontal padding between a box and its slot edge.
func WithGutter(g int) Option { return func(o *options) { o.gutter = g } }

// WithGap overrides the number of connector rows between layers.
func WithGap(g int) Option { return func(o *options) { o.gap = g } }

// WithTopMargin reserves rows above the first layer, e.g. for a title.
func WithTopMargin(rows int) Option { return func(o *options) { o.topMargin = rows } }

// Build computes the full layout for wf given the rendered size of every box.
//
// Each layer is divided into equal slots wide enough for the widest box in
// the workflow plus a gutter on both sides; a node's column derives from its
// order within its layer, and every box is centered in its slot. Layers are
// stacked top to bottom, separated by the connector gap, with each layer as
// tall as its tallest box.
//
// Build returns a LAYOUT_UNPLACED error if sizes is missing an entry for any
// node. That cannot happen when sizes comes from measuring wf's own nodes;
// it indicates a bug in the caller.
func Build(wf *workflow.Workflow, sizes map[string]Size, opts ...Option) (Layout, error) {
	o := options{gutter: DefaultGutter, gap: DefaultGap}
	for _, opt := range opts {
		opt(&o)
	}

	l := Layout{
		Placements: make(map[string]Placement, wf.NodeCount()),
		Gap:        o.gap,
		Height:     o.topMargin,
	}
	if wf.NodeCount() == 0 {
		return l, nil
	}

	maxW := 0
	for _, id := range wf.NodeIDs() {
		s, ok := sizes[id]
		if !ok {
			return Layout{}, errors.New(errors.ErrCodeUnplacedNode, "no size for node %q", id)
		}
		if s.W > maxW {
			maxW = s.W
		}
	}
	l.Slot = maxW + 2*o.gutter

	layers := AssignLayers(wf)
	l.Rows = Rows(wf, layers)

	y := o.topMargin
	for layer, row := range l.Rows {
		height := 0
		for order, id := range row {
			s := sizes[id]
			l.Placements[id] = Placement{
				Layer: layer,
				Order: order,
				X:     order*l.Slot + (l.Slot-s.W)/2,
				Y:     y,
				W:     s.W,
				H:     s.H,
			}
			if s.H > height {
				height = s.H
			}
		}
		if w := len(row) * l.Slot; w > l.Width {
			l.Width = w
		}
		y += height
		if layer < len(l.Rows)-1 {
			y += o.gap
		}
	}
	l.Height = y

	return l, nil
}
