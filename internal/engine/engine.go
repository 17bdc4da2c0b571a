// Package engine talks to the local model runtime. The runtime is an
// opaque collaborator: it is initialized once, reports a load status, and
// completes a system/user instruction pair into text. Everything stays on
// the user's machine.
package engine

import (
	"context"
	"errors"
)

// Status is the runtime's current load state.
type Status struct {
	Ready    bool
	Progress float64 // 0..1 while the model loads
	Message  string
}

// Engine is the minimal contract the drafting session consumes.
type Engine interface {
	// Init starts loading the model. Calling it again is a no-op.
	Init(ctx context.Context) error
	// Status may be read at any time.
	Status() Status
	// Complete turns a system/user instruction pair into text. It fails
	// with ErrNotReady before the model finished loading.
	Complete(ctx context.Context, system, user string) (string, error)
	// Accelerated reports whether a supported hardware accelerator is
	// available to the runtime.
	Accelerated() bool
}

var (
	// ErrNotReady means generation was requested before the model finished
	// loading. Retrying once the status reports ready is the fix.
	ErrNotReady = errors.New("model is not ready yet")

	// ErrNoAccelerator means the machine lacks a supported hardware
	// accelerator. Model generation is unavailable; the offline preview
	// still works.
	ErrNoAccelerator = errors.New("no supported hardware accelerator detected")
)
