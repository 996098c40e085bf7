// Package io reads and writes workflow documents.
//
// # Document format
//
// A document is a YAML or JSON object with a title and two arrays:
//
//	title: Release pipeline
//	nodes:
//	  - id: build
//	    label: Build
//	    type: process
//	    icon: "🔨"
//	    description: Compile and package the artifacts
//	connections:
//	  - source: build
//	    target: test
//	    type: thick
//	    label: artifacts
//
// Node fields:
//   - id (required): unique identifier
//   - label: display text, defaults to the id
//   - type: start, process, tool, decision, result, or special
//   - icon: prefix glyph for the first box line
//   - description: wrapped body text
//
// Connection fields:
//   - source, target (required): node ids
//   - type: normal, thick, double, or dashed
//   - label: text drawn along the connector
//
// Unknown node and connection types fall back to their defaults rather than
// failing, so documents written for newer versions stay readable.
//
// # Reading
//
// [Import] reads a file, picking the decoder from the extension; [ReadYAML]
// and [ReadJSON] decode from any io.Reader. All three validate the document
// through the workflow package, so the returned Workflow is always
// structurally sound.
//
// # Writing
//
// [Export] writes rendered diagram text to a file or stdout. [ExportJSON]
// and [WriteJSON] serialize a workflow back into the document format for
// round-tripping through external tools.
package io
