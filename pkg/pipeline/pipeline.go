// Package pipeline provides the parse → layout → render pipeline for flowscii.
//
// The pipeline turns a workflow document on disk into diagram text, with one
// code path shared by every entry point so the CLI, tests, and embedding
// programs get identical behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: decode the YAML or JSON document into a validated workflow
//  2. Layout: assign layers and measure the diagram grid
//  3. Render: compose boxes and connectors into the final text
//
// Each stage reports to the hooks registered in pkg/observability and
// contributes its duration to [Stats].
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Input: "release.yaml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Text)
package pipeline

import (
	stdio "io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/flowscii/flowscii/pkg/errors"
	"github.com/flowscii/flowscii/pkg/io"
	"github.com/flowscii/flowscii/pkg/render/ascii"
	"github.com/flowscii/flowscii/pkg/workflow"
	"github.com/flowscii/flowscii/pkg/workflow/layout"
)

// Default render settings, shared by CLI flags and config files.
const (
	// DefaultWrapWidth is the description word-wrap budget in columns.
	DefaultWrapWidth = ascii.DefaultWrapWidth

	// DefaultGutter is the horizontal slot padding in columns.
	DefaultGutter = layout.DefaultGutter
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the workflow document path. Required.
	Input string

	// Format selects the document decoder; FormatAuto picks by extension.
	Format io.Format

	// Output is the destination path for the rendered text.
	// Empty or "-" writes to stdout.
	Output string

	// WrapWidth is the description word-wrap budget. Zero means default.
	WrapWidth int

	// Gutter is the horizontal slot padding. Negative means default.
	Gutter int

	// DefaultType is the node type given to untyped document nodes.
	// Empty means process.
	DefaultType string

	// Logger receives stage progress. Nil discards it.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeMissingField, "input path is required")
	}
	if o.Format == "" {
		o.Format = io.FormatAuto
	}
	if o.WrapWidth <= 0 {
		o.WrapWidth = DefaultWrapWidth
	}
	if o.Gutter < 0 {
		o.Gutter = DefaultGutter
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run in logs.
	RunID string

	// Workflow is the parsed and validated workflow.
	Workflow *workflow.Workflow

	// Text is the rendered diagram.
	Text string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	LayerCount      int
	ParseTime       time.Duration
	LayoutTime      time.Duration
	RenderTime      time.Duration
}
