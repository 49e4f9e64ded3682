// Package testing provides test doubles for the stream package.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/depwatch/depwatch/internal/stream"
)

// SubscribeCall records a call to the monitor.
type SubscribeCall struct {
	At time.Time
}

// FakeMonitor simulates the push channel for testing.
// It records calls and lets tests script events and connectivity changes.
type FakeMonitor struct {
	mu sync.Mutex

	// Configuration
	ShouldFail bool
	FailError  error

	// Scripted deliveries, pushed in order on Subscribe.
	InitialState  *stream.State
	InitialEvents []stream.MetricEvent

	// Call tracking
	Calls  []SubscribeCall
	Closed bool

	events chan stream.MetricEvent
	states chan stream.State
}

var _ stream.Monitor = (*FakeMonitor)(nil)

// NewFakeMonitor creates a fake monitor that succeeds by default.
func NewFakeMonitor() *FakeMonitor {
	return &FakeMonitor{
		events: make(chan stream.MetricEvent, 64),
		states: make(chan stream.State, 16),
	}
}

// Subscribe records the call and returns channels the test can feed via
// EmitEvent/EmitState.
func (f *FakeMonitor) Subscribe(ctx context.Context) (stream.Source, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, SubscribeCall{At: time.Now()})

	if f.ShouldFail {
		return nil, f.FailError
	}

	if f.InitialState != nil {
		f.states <- *f.InitialState
	}
	for _, ev := range f.InitialEvents {
		f.events <- ev
	}

	return &FakeSubscription{monitor: f}, nil
}

// Close marks the monitor closed.
func (f *FakeMonitor) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
}

// SetFail configures Subscribe to fail with the given error.
func (f *FakeMonitor) SetFail(err error) *FakeMonitor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShouldFail = true
	f.FailError = err
	return f
}

// EmitEvent queues a metric event for the subscriber.
func (f *FakeMonitor) EmitEvent(ev stream.MetricEvent) {
	f.events <- ev
}

// EmitState queues a connectivity transition for the subscriber.
func (f *FakeMonitor) EmitState(st stream.State) {
	f.states <- st
}

// CallCount returns how many times Subscribe was invoked.
func (f *FakeMonitor) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// FakeSubscription is the consumer half handed out by FakeMonitor.
type FakeSubscription struct {
	monitor *FakeMonitor
}

// Events returns the scripted event stream.
func (s *FakeSubscription) Events() <-chan stream.MetricEvent {
	return s.monitor.events
}

// Connectivity returns the scripted connectivity stream.
func (s *FakeSubscription) Connectivity() <-chan stream.State {
	return s.monitor.states
}

// Close marks the parent monitor closed.
func (s *FakeSubscription) Close() {
	s.monitor.Close()
}
