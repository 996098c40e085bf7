package ascii

import (
	"github.com/mattn/go-runewidth"

	"github.com/flowscii/flowscii/pkg/render/ascii/styles"
	"github.com/flowscii/flowscii/pkg/workflow"
	"github.com/flowscii/flowscii/pkg/workflow/layout"
)

// connector is one connection resolved against the layout: endpoints,
// glyph set, and the side lane column for routed back edges (-1 for the
// normal top-to-bottom case).
type connector struct {
	conn workflow.Connection
	src  layout.Placement
	dst  layout.Placement
	g    styles.LineGlyphs
	lane int
}

// maxSideLabelReserve caps the columns reserved between the boxes and the
// first side lane for back-edge labels.
const maxSideLabelReserve = 12

// buildConnectors resolves every connection against the layout.
//
// Forward connections (target on a deeper layer) run top to bottom through
// the inter-layer gap. Back edges, lateral edges, and self-loops get a side
// lane to the right of all boxes, allocated in declaration order so routed
// paths never share a column. When any side connector carries a label, the
// lanes shift right to leave it room.
func buildConnectors(wf *workflow.Workflow, l layout.Layout) []connector {
	maxRight := 0
	for _, p := range l.Placements {
		if r := p.X + p.W; r > maxRight {
			maxRight = r
		}
	}

	reserve := 0
	for _, conn := range wf.Connections() {
		if l.Placements[conn.Target].Layer > l.Placements[conn.Source].Layer || conn.Label == "" {
			continue
		}
		if w := runewidth.StringWidth(conn.Label); w > reserve {
			reserve = w
		}
	}
	if reserve > maxSideLabelReserve {
		reserve = maxSideLabelReserve
	}

	laneBase := maxRight + 2
	if reserve > 0 {
		laneBase += reserve + 1
	}
	lanes := 0

	out := make([]connector, 0, wf.ConnectionCount())
	for _, conn := range wf.Connections() {
		cn := connector{
			conn: conn,
			src:  l.Placements[conn.Source],
			dst:  l.Placements[conn.Target],
			g:    styles.ForLine(conn.Style),
			lane: -1,
		}
		if cn.dst.Layer <= cn.src.Layer {
			cn.lane = laneBase + 2*lanes
			lanes++
		}
		out = append(out, cn)
	}
	return out
}

// drawPath stamps the connector's line glyphs onto the canvas.
// Labels are drawn in a separate pass so sibling runs cannot erase them.
func (cn connector) drawPath(c *Canvas) {
	if cn.lane >= 0 {
		cn.drawSidePath(c)
		return
	}
	cn.drawDownPath(c)
}

// drawDownPath draws a forward connector: a straight vertical drop when the
// anchors share a column, otherwise an orthogonal path with the horizontal
// run on the routing row just above the arrow row.
func (cn connector) drawDownPath(c *Canvas) {
	g := cn.g
	srcCol := cn.src.CenterCol()
	dstCol := cn.dst.CenterCol()
	startRow := cn.src.BottomRow() + 1
	arrowRow := cn.dst.TopRow() - 1

	if srcCol == dstCol {
		for r := startRow; r < arrowRow; r++ {
			setLine(c, r, srcCol, g.Vertical, g)
		}
		c.Set(arrowRow, srcCol, g.ArrowDown)
		return
	}

	runRow := cn.runRow()
	for r := startRow; r < runRow; r++ {
		setLine(c, r, srcCol, g.Vertical, g)
	}

	if dstCol > srcCol {
		setCorner(c, runRow, srcCol, g.UpRight, g)
		for col := srcCol + 1; col < dstCol; col++ {
			setLine(c, runRow, col, g.Horizontal, g)
		}
		setCorner(c, runRow, dstCol, g.DownLeft, g)
	} else {
		setCorner(c, runRow, srcCol, g.UpLeft, g)
		for col := dstCol + 1; col < srcCol; col++ {
			setLine(c, runRow, col, g.Horizontal, g)
		}
		setCorner(c, runRow, dstCol, g.DownRight, g)
	}

	for r := runRow + 1; r < arrowRow; r++ {
		setLine(c, r, dstCol, g.Vertical, g)
	}
	c.Set(arrowRow, dstCol, g.ArrowDown)
}

// runRow is the routing row for a bent forward connector: one row above
// the arrow, clamped so it never climbs back into the source box.
func (cn connector) runRow() int {
	r := cn.dst.TopRow() - 2
	if first := cn.src.BottomRow() + 1; r < first {
		r = first
	}
	return r
}

// drawSidePath draws a routed back edge or self-loop: out of the source's
// right border, along the side lane, back into the target's right border.
// The path never enters the top-to-bottom flow lanes between layers.
func (cn connector) drawSidePath(c *Canvas) {
	g := cn.g
	exitRow := cn.src.MiddleRow()
	entryRow := cn.dst.MiddleRow()
	if entryRow == exitRow {
		// Self-loop (or identical middle rows): re-enter one row lower.
		entryRow = min(exitRow+1, cn.dst.BottomRow())
	}

	for col := cn.src.RightCol() + 1; col < cn.lane; col++ {
		setLine(c, exitRow, col, g.Horizontal, g)
	}
	c.Set(entryRow, cn.dst.RightCol()+1, g.ArrowLeft)
	for col := cn.dst.RightCol() + 2; col < cn.lane; col++ {
		setLine(c, entryRow, col, g.Horizontal, g)
	}

	if entryRow > exitRow {
		setCorner(c, exitRow, cn.lane, g.DownLeft, g)
		for r := exitRow + 1; r < entryRow; r++ {
			setLine(c, r, cn.lane, g.Vertical, g)
		}
		setCorner(c, entryRow, cn.lane, g.UpLeft, g)
	} else {
		setCorner(c, exitRow, cn.lane, g.UpLeft, g)
		for r := entryRow + 1; r < exitRow; r++ {
			setLine(c, r, cn.lane, g.Vertical, g)
		}
		setCorner(c, entryRow, cn.lane, g.DownLeft, g)
	}
}

// drawLabel places the connector's label beside or along its path,
// truncating rather than overlapping box borders or the side lane.
func (cn connector) drawLabel(c *Canvas, slot int) {
	label := cn.conn.Label
	if label == "" {
		return
	}

	if cn.lane >= 0 {
		// One row above the exit run, clipped before the lane.
		col := cn.src.RightCol() + 2
		if avail := cn.lane - col; avail >= 1 {
			c.WriteString(cn.src.MiddleRow()-1, col, runewidth.Truncate(label, avail, ""))
		}
		return
	}

	srcCol := cn.src.CenterCol()
	dstCol := cn.dst.CenterCol()

	if srcCol == dstCol {
		// Beside the vertical run, on its first row.
		if avail := slot/2 - 2; avail >= 1 {
			c.WriteString(cn.src.BottomRow()+1, srcCol+2, runewidth.Truncate(label, avail, ""))
		}
		return
	}

	// Centered on the horizontal run, between the corners.
	lo, hi := srcCol, dstCol
	if lo > hi {
		lo, hi = hi, lo
	}
	runStart, runEnd := lo+1, hi-1
	avail := runEnd - runStart + 1
	if avail < 1 {
		return
	}
	w := runewidth.StringWidth(label)
	if w > avail {
		label = runewidth.Truncate(label, avail, "")
		w = runewidth.StringWidth(label)
	}
	c.WriteString(cn.runRow(), runStart+(avail-w)/2, label)
}

// setLine writes a straight-line glyph, merging with same-style glyphs
// already in the cell: a perpendicular run becomes a crossing, a sibling's
// corner becomes a tee, and junctions from earlier connectors are kept.
func setLine(c *Canvas, row, col int, glyph rune, g styles.LineGlyphs) {
	switch c.Get(row, col) {
	case g.TeeRight, g.TeeLeft, g.TeeUp, g.TeeDown, g.Cross:
		return
	case g.Vertical:
		if glyph == g.Horizontal {
			c.Set(row, col, g.Cross)
			return
		}
	case g.Horizontal:
		if glyph == g.Vertical {
			c.Set(row, col, g.Cross)
			return
		}
	case g.DownRight, g.DownLeft:
		if glyph == g.Horizontal {
			c.Set(row, col, g.TeeDown)
			return
		}
	case g.UpRight, g.UpLeft:
		if glyph == g.Horizontal {
			c.Set(row, col, g.TeeUp)
			return
		}
	}
	c.Set(row, col, glyph)
}

// setCorner writes a corner glyph, merging with same-style glyphs already in
// the cell: a corner landing on a straight run or on an opposing sibling
// corner becomes the matching tee.
func setCorner(c *Canvas, row, col int, corner rune, g styles.LineGlyphs) {
	switch c.Get(row, col) {
	case g.TeeRight, g.TeeLeft, g.TeeUp, g.TeeDown, g.Cross:
		return
	case g.Vertical:
		switch corner {
		case g.UpRight, g.DownRight:
			c.Set(row, col, g.TeeRight)
			return
		case g.UpLeft, g.DownLeft:
			c.Set(row, col, g.TeeLeft)
			return
		}
	case g.Horizontal:
		switch corner {
		case g.UpRight, g.UpLeft:
			c.Set(row, col, g.TeeUp)
			return
		case g.DownRight, g.DownLeft:
			c.Set(row, col, g.TeeDown)
			return
		}
	case g.UpRight:
		if corner == g.UpLeft {
			c.Set(row, col, g.TeeUp)
			return
		}
	case g.UpLeft:
		if corner == g.UpRight {
			c.Set(row, col, g.TeeUp)
			return
		}
	case g.DownRight:
		if corner == g.DownLeft {
			c.Set(row, col, g.TeeDown)
			return
		}
	case g.DownLeft:
		if corner == g.DownRight {
			c.Set(row, col, g.TeeDown)
			return
		}
	}
	c.Set(row, col, corner)
}
