package testutil

import (
	"sync"
	"time"
)

// FakeTimer fires immediately and records every requested delay. It satisfies
// the backoff timer contract (Start, Stop, C).
type FakeTimer struct {
	mu     sync.Mutex
	delays []time.Duration
	c      chan time.Time
}

// NewFakeTimer returns a timer that never blocks.
func NewFakeTimer() *FakeTimer {
	return &FakeTimer{c: make(chan time.Time, 1)}
}

func (t *FakeTimer) Start(d time.Duration) {
	t.mu.Lock()
	t.delays = append(t.delays, d)
	t.mu.Unlock()
	t.c <- time.Now()
}

func (t *FakeTimer) Stop() {}

func (t *FakeTimer) C() <-chan time.Time { return t.c }

// Delays returns a copy of the delays passed to Start.
func (t *FakeTimer) Delays() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]time.Duration, len(t.delays))
	copy(out, t.delays)
	return out
}
