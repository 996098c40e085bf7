// Package layout assigns workflow nodes to layers and computes absolute
// character-grid coordinates for their boxes.
//
// Layer assignment uses a longest-path traversal (Kahn's algorithm) with a
// deterministic cycle break: when the queue drains with nodes left over,
// the first unassigned node in insertion order is force-seeded from its
// already-layered predecessors. Every node always receives a layer, even in
// fully cyclic graphs, in O(nodes + connections).
//
// Geometry is slot-based: every layer divides the canvas into equal-width
// slots sized to the widest box in the workflow, so sibling boxes never
// overlap and columns align between layers. Layers stack vertically with a
// fixed number of connector rows between them.
package layout
