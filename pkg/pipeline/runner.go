package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/flowscii/flowscii/pkg/io"
	"github.com/flowscii/flowscii/pkg/observability"
	"github.com/flowscii/flowscii/pkg/render/ascii"
	"github.com/flowscii/flowscii/pkg/workflow"
	"github.com/flowscii/flowscii/pkg/workflow/layout"
)

// Runner executes the pipeline. It is stateless apart from its logger;
// multiple goroutines can safely share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → layout → render pipeline.
//
// The context is checked between stages; a canceled context aborts the run
// with the context's error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Parse
	parseStart := time.Now()
	wf, err := r.Parse(ctx, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		return nil, err
	}
	result.Workflow = wf
	result.Stats.NodeCount = wf.NodeCount()
	result.Stats.ConnectionCount = wf.ConnectionCount()

	logger.Info("parsed workflow",
		"nodes", wf.NodeCount(),
		"connections", wf.ConnectionCount(),
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, wf.NodeCount(), wf.ConnectionCount())
	rows := layout.Rows(wf, layout.AssignLayers(wf))
	result.Stats.LayerCount = len(rows)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(rows), result.Stats.LayoutTime, nil)

	logger.Info("assigned layers",
		"layers", len(rows),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, wf.NodeCount())
	text, err := ascii.Render(wf,
		ascii.WithWrapWidth(opts.WrapWidth),
		ascii.WithGutter(opts.Gutter),
	)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, len(text), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Text = text

	logger.Info("rendered diagram",
		"bytes", len(text),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse decodes and validates the workflow document named by opts.
func (r *Runner) Parse(ctx context.Context, opts Options) (*workflow.Workflow, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var decodeOpts []io.Option
	if opts.DefaultType != "" {
		decodeOpts = append(decodeOpts, io.WithDefaultNodeType(workflow.ParseNodeType(opts.DefaultType)))
	}

	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, string(opts.Format), opts.Input)
	wf, err := io.Import(opts.Input, opts.Format, decodeOpts...)

	nodes := 0
	if wf != nil {
		nodes = wf.NodeCount()
	}
	observability.Pipeline().OnParseComplete(ctx, string(opts.Format), opts.Input, nodes, time.Since(start), err)
	return wf, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
