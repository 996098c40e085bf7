package layout

import "github.com/flowscii/flowscii/pkg/workflow"

// AssignLayers assigns every node an integer layer such that, wherever the
// graph allows it, a connection's source layer is strictly less than its
// target layer.
//
// AssignLayers performs a topological traversal:
//  1. Count each node's in-degree, ignoring self-loops
//  2. Seed the queue with zero in-degree nodes, at layer 0
//  3. Process the queue: each child is pushed to max(child, parent+1),
//     in-degrees decrement, and nodes reaching zero are enqueued
//  4. If the queue drains with nodes unassigned, the graph is cyclic: the
//     first unassigned node in insertion order is force-seeded at one plus
//     the maximum layer of its already-assigned predecessors (layer 0 when
//     none), and the traversal resumes from it
//
// A node's layer is final once it is assigned; connections discovered later
// that point at an assigned node are back edges and do not re-layer it. This
// is the deterministic cycle break: the traversal never loops, terminating
// in O(nodes + connections) with no recursion.
//
// The returned map has an entry for every node in wf.
func AssignLayers(wf *workflow.Workflow) map[string]int {
	ids := wf.NodeIDs()
	layers := make(map[string]int, len(ids))
	assigned := make(map[string]bool, len(ids))
	inDegree := make(map[string]int, len(ids))

	for _, id := range ids {
		for _, c := range wf.Incoming(id) {
			if !c.IsSelfLoop() {
				inDegree[id]++
			}
		}
	}

	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			layers[id] = 0
			assigned[id] = true
			queue = append(queue, id)
		}
	}

	for {
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]

			for _, c := range wf.Outgoing(curr) {
				child := c.Target
				if c.IsSelfLoop() || assigned[child] {
					continue // self-loop or back edge: broken here
				}
				if l := layers[curr] + 1; l > layers[child] {
					layers[child] = l
				}
				inDegree[child]--
				if inDegree[child] == 0 {
					assigned[child] = true
					queue = append(queue, child)
				}
			}
		}

		// Queue drained. Any node still unassigned sits on a cycle;
		// force-seed the first one in insertion order.
		next := ""
		for _, id := range ids {
			if !assigned[id] {
				next = id
				break
			}
		}
		if next == "" {
			return layers
		}

		layer := 0
		for _, c := range wf.Incoming(next) {
			if c.IsSelfLoop() {
				continue
			}
			if assigned[c.Source] && layers[c.Source]+1 > layer {
				layer = layers[c.Source] + 1
			}
		}
		layers[next] = layer
		assigned[next] = true
		queue = append(queue, next)
	}
}

// Rows groups node IDs by layer. Within a layer, nodes keep their
// first-appearance order from the original node sequence, which makes the
// grouping stable regardless of graph shape. The outer slice is indexed by
// layer and has no gaps.
func Rows(wf *workflow.Workflow, layers map[string]int) [][]string {
	ids := wf.NodeIDs()
	maxLayer := -1
	for _, id := range ids {
		if layers[id] > maxLayer {
			maxLayer = layers[id]
		}
	}
	if maxLayer < 0 {
		return nil
	}

	rows := make([][]string, maxLayer+1)
	for _, id := range ids {
		l := layers[id]
		rows[l] = append(rows[l], id)
	}
	return rows
}
