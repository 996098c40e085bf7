// Package workflow defines the validated in-memory representation of a
// workflow: named, typed steps joined by directed, styled connections.
//
// # Overview
//
// A [Workflow] is built once from an external document (see pkg/io), is
// immutable during rendering, and is discarded after the text output is
// produced. [Build] is the only constructor; it rejects duplicate node IDs,
// connections referencing unknown nodes, and nodes missing required fields.
//
// # Ordering
//
// Insertion order is load-bearing: Nodes() iterates in document order, and
// the layering engine uses first-appearance order as its deterministic
// tie-break. Adjacency lookups (Outgoing, Incoming) likewise preserve the
// order in which connections were declared.
//
// # Usage
//
//	wf, err := workflow.Build("CI Pipeline", nodes, connections)
//	if err != nil {
//	    return err // VALIDATION_* coded error
//	}
//	for _, n := range wf.Nodes() {
//	    fmt.Println(n.ID, wf.Outgoing(n.ID))
//	}
package workflow
