package workflow

import (
	"slices"

	"github.com/flowscii/flowscii/pkg/errors"
)

// NodeType selects the border style a node is drawn with.
// Unknown values decode to [TypeProcess], the plain single-line box.
type NodeType string

// The closed set of node types. Each maps to exactly one border style in
// pkg/render/ascii/styles.
const (
	TypeStart    NodeType = "start"
	TypeProcess  NodeType = "process"
	TypeTool     NodeType = "tool"
	TypeDecision NodeType = "decision"
	TypeResult   NodeType = "result"
	TypeSpecial  NodeType = "special"
)

// ParseNodeType maps a document string to a NodeType.
// Empty or unknown strings fall back to TypeProcess.
func ParseNodeType(s string) NodeType {
	switch NodeType(s) {
	case TypeStart, TypeProcess, TypeTool, TypeDecision, TypeResult, TypeSpecial:
		return NodeType(s)
	default:
		return TypeProcess
	}
}

// LineStyle selects the glyph set a connection is drawn with.
// Unknown values decode to [StyleNormal].
type LineStyle string

// The closed set of connection styles.
const (
	StyleNormal LineStyle = "normal"
	StyleThick  LineStyle = "thick"
	StyleDouble LineStyle = "double"
	StyleDashed LineStyle = "dashed"
)

// ParseLineStyle maps a document string to a LineStyle.
// Empty or unknown strings fall back to StyleNormal.
func ParseLineStyle(s string) LineStyle {
	switch LineStyle(s) {
	case StyleNormal, StyleThick, StyleDouble, StyleDashed:
		return LineStyle(s)
	default:
		return StyleNormal
	}
}

// Node represents a single step in the workflow.
//
// ID is the unique key used by connections; Label is the short title drawn
// inside the box. Icon, when set, is prefixed to the label on the first
// content line and may occupy more than one terminal column. Description is
// optional secondary text, word-wrapped by the box renderer.
type Node struct {
	ID          string
	Label       string
	Type        NodeType
	Icon        string
	Description string
}

// DisplayLabel returns the first content line of the node box:
// the icon and label joined by a space, or just the label if no icon is set.
func (n Node) DisplayLabel() string {
	if n.Icon != "" {
		return n.Icon + " " + n.Label
	}
	return n.Label
}

// Connection represents a directed, styled edge between two nodes.
// Self-loops and cycles are permitted; the layering engine tolerates both.
type Connection struct {
	Source string
	Target string
	Style  LineStyle
	Label  string
}

// IsSelfLoop reports whether the connection starts and ends on the same node.
func (c Connection) IsSelfLoop() bool { return c.Source == c.Target }

// Workflow is the validated, immutable graph consumed by the renderer.
// Use [Build] to construct one; the zero value is not usable.
type Workflow struct {
	title       string
	nodes       []Node
	index       map[string]int
	connections []Connection
	outgoing    map[string][]Connection
	incoming    map[string][]Connection
}

// Build validates nodes and connections and assembles a Workflow.
//
// Build rejects, with a VALIDATION_* coded error from pkg/errors:
//   - a node with an empty or malformed ID, or an empty label
//   - two nodes sharing an ID
//   - a connection whose source or target is empty or references no node
//
// Node types and connection styles are normalized through [ParseNodeType]
// and [ParseLineStyle], so callers may pass raw document strings in those
// fields. Adjacency is derived once at build time; Outgoing and Incoming
// are cheap lookups afterward.
func Build(title string, nodes []Node, connections []Connection) (*Workflow, error) {
	wf := &Workflow{
		title:    title,
		nodes:    make([]Node, 0, len(nodes)),
		index:    make(map[string]int, len(nodes)),
		outgoing: make(map[string][]Connection, len(nodes)),
		incoming: make(map[string][]Connection, len(nodes)),
	}

	for _, n := range nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		if err := errors.ValidateLabel(n.ID, n.Label); err != nil {
			return nil, err
		}
		if _, exists := wf.index[n.ID]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateNode, "duplicate node id %q", n.ID)
		}
		n.Type = ParseNodeType(string(n.Type))
		wf.index[n.ID] = len(wf.nodes)
		wf.nodes = append(wf.nodes, n)
	}

	wf.connections = make([]Connection, 0, len(connections))
	for _, c := range connections {
		if c.Source == "" {
			return nil, errors.New(errors.ErrCodeMissingField, "connection has no source")
		}
		if c.Target == "" {
			return nil, errors.New(errors.ErrCodeMissingField, "connection has no target")
		}
		if _, ok := wf.index[c.Source]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "connection source %q does not exist", c.Source)
		}
		if _, ok := wf.index[c.Target]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "connection target %q does not exist", c.Target)
		}
		c.Style = ParseLineStyle(string(c.Style))
		wf.connections = append(wf.connections, c)
		wf.outgoing[c.Source] = append(wf.outgoing[c.Source], c)
		wf.incoming[c.Target] = append(wf.incoming[c.Target], c)
	}

	return wf, nil
}

// Title returns the workflow title, which may be empty.
func (w *Workflow) Title() string { return w.title }

// Nodes returns a copy of all nodes in insertion order.
func (w *Workflow) Nodes() []Node { return slices.Clone(w.nodes) }

// Node returns the node with the given ID and true, or a zero Node and false.
func (w *Workflow) Node(id string) (Node, bool) {
	i, ok := w.index[id]
	if !ok {
		return Node{}, false
	}
	return w.nodes[i], true
}

// Connections returns a copy of all connections in insertion order.
func (w *Workflow) Connections() []Connection { return slices.Clone(w.connections) }

// Outgoing returns the connections leaving the node, in declaration order.
// The returned slice should not be modified.
func (w *Workflow) Outgoing(id string) []Connection { return w.outgoing[id] }

// Incoming returns the connections entering the node, in declaration order.
// The returned slice should not be modified.
func (w *Workflow) Incoming(id string) []Connection { return w.incoming[id] }

// NodeCount returns the number of nodes.
func (w *Workflow) NodeCount() int { return len(w.nodes) }

// ConnectionCount returns the number of connections.
func (w *Workflow) ConnectionCount() int { return len(w.connections) }

// NodeIDs returns all node IDs in insertion order.
func (w *Workflow) NodeIDs() []string {
	ids := make([]string, len(w.nodes))
	for i, n := range w.nodes {
		ids[i] = n.ID
	}
	return ids
}
