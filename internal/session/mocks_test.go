package session

import (
	"context"
	"sync"

	"adminbuddy/internal/engine"
)

// mockEngine is a controllable Engine for session tests.
type mockEngine struct {
	mu          sync.Mutex
	ready       bool
	accelerated bool
	reply       string
	err         error
	calls       int

	// block, when set, makes Complete wait until the channel is closed.
	block chan struct{}
}

func (m *mockEngine) Init(ctx context.Context) error { return nil }

func (m *mockEngine) Status() engine.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ready {
		return engine.Status{Ready: true, Progress: 1, Message: "ok"}
	}
	return engine.Status{Message: "loading model", Progress: 0.5}
}

func (m *mockEngine) Accelerated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accelerated
}

func (m *mockEngine) Complete(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	reply, err := m.reply, m.err
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return reply, err
}

func (m *mockEngine) setReady(ready bool) {
	m.mu.Lock()
	m.ready = ready
	m.mu.Unlock()
}

func (m *mockEngine) completions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
