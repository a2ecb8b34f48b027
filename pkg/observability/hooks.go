// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about the conversion pipeline.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path)
//	// ... parse and classify ...
//	observability.Pipeline().OnParseComplete(ctx, path, elementCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// Parse events cover reading the document and classifying its elements.
	OnParseStart(ctx context.Context, path string)
	OnParseComplete(ctx context.Context, path string, elementCount int, duration time.Duration, err error)

	// Convert events cover graph construction, collapse, cycle reduction
	// and concurrency inference.
	OnConvertStart(ctx context.Context, elementCount int)
	OnConvertComplete(ctx context.Context, nodeCount, pairCount int, duration time.Duration, err error)

	// Export events cover writing the matrix file.
	OnExportStart(ctx context.Context, path, format string)
	OnExportComplete(ctx context.Context, path, format string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnConvertStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnConvertComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnExportStart(context.Context, string, string)                      {}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, string, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
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

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
