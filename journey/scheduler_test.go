package journey

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerEveryStops(t *testing.T) {
	var n atomic.Int32

	task := NewScheduler().Every(5*time.Millisecond, func() {
		n.Add(1)
	})

	assert.Eventually(t, func() bool {
		return n.Load() >= 2
	}, time.Second, time.Millisecond)

	task.Stop()
	task.Stop()

	// allow an in-flight callback to finish
	time.Sleep(10 * time.Millisecond)

	stopped := n.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, n.Load())
}

func TestSchedulerAfter(t *testing.T) {
	var fired atomic.Bool

	NewScheduler().After(time.Millisecond, func() {
		fired.Store(true)
	})

	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)

	var cancelled atomic.Bool

	task := NewScheduler().After(20*time.Millisecond, func() {
		cancelled.Store(true)
	})
	task.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.False(t, cancelled.Load())
}
