package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.Debounce(func() { fired.Add(1) })
	}

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "a burst fires exactly once")
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Debounce(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestDebouncerFlushRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var fired atomic.Int32
	d.Debounce(func() { fired.Add(1) })
	d.Flush()

	assert.Equal(t, int32(1), fired.Load())

	d.Flush() // nothing pending, nothing happens
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerLastCallbackWins(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var got atomic.Int32
	d.Debounce(func() { got.Store(1) })
	d.Debounce(func() { got.Store(2) })
	d.Flush()

	assert.Equal(t, int32(2), got.Load())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "AwaitingModel", AwaitingModel.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "Unknown", State(99).String())
}
