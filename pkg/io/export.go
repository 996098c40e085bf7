package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowscii/flowscii/pkg/workflow"
)

// Export writes rendered diagram text to path, or to stdout when path is
// empty or "-". A trailing newline is appended so the output composes in
// shell pipelines.
func Export(path, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteJSON encodes a workflow as a JSON document and writes it to w.
// The output re-imports with [ReadJSON] for round-trip processing.
func WriteJSON(wf *workflow.Workflow, w io.Writer) error {
	doc := document{
		Title:       wf.Title(),
		Nodes:       make([]docNode, 0, wf.NodeCount()),
		Connections: make([]docConnection, 0, wf.ConnectionCount()),
	}
	for _, n := range wf.Nodes() {
		doc.Nodes = append(doc.Nodes, docNode{
			ID:          n.ID,
			Label:       n.Label,
			Type:        string(n.Type),
			Icon:        n.Icon,
			Description: n.Description,
		})
	}
	for _, c := range wf.Connections() {
		doc.Connections = append(doc.Connections, docConnection{
			Source: c.Source,
			Target: c.Target,
			Type:   string(c.Style),
			Label:  c.Label,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a workflow to a JSON document file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(wf *workflow.Workflow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(wf, f)
}
