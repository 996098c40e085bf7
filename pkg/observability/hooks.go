// Package observability provides hooks for instrumenting the render pipeline.
//
// The package keeps the core library free of hard dependencies on metrics or
// tracing backends: it defines a hook interface with no-op defaults, and the
// binary registers a real implementation at startup if it wants one.
//
// Register hooks once, before any pipeline runs:
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline emits events around each stage:
//
//	observability.Pipeline().OnParseStart(ctx, format, path)
//	// ... decode the document ...
//	observability.Pipeline().OnParseComplete(ctx, format, path, nodeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the render pipeline. Each stage emits a
// start event and a complete event; the complete event carries the stage
// duration and its error, if any.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, format, path string)
	OnParseComplete(ctx context.Context, format, path string, nodeCount int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, nodeCount, connectionCount int)
	OnLayoutComplete(ctx context.Context, layerCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, nodeCount int)
	OnRenderComplete(ctx context.Context, bytes int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                     {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
// A nil argument is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
