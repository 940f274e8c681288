package journey

import (
	"sync"
	"time"
)

// Task is a scheduled callback that can be cancelled.
type Task interface {
	Stop()
}

// Scheduler runs callbacks periodically or once after a delay. Stopping a
// task guarantees that no further invocations begin.
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
	After(d time.Duration, fn func()) Task
}

type clockScheduler struct{}

// NewScheduler returns a Scheduler backed by the wall clock.
func NewScheduler() Scheduler {
	return clockScheduler{}
}

type periodicTask struct {
	done chan struct{}
	once sync.Once
}

func (t *periodicTask) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

func (clockScheduler) Every(d time.Duration, fn func()) Task {
	t := &periodicTask{
		done: make(chan struct{}),
	}

	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				select {
				case <-t.done:
					return
				default:
					fn()
				}
			}
		}
	}()

	return t
}

type delayedTask struct {
	timer *time.Timer
}

func (t *delayedTask) Stop() {
	t.timer.Stop()
}

func (clockScheduler) After(d time.Duration, fn func()) Task {
	return &delayedTask{
		timer: time.AfterFunc(d, fn),
	}
}
