// Package stream wraps the push channel that delivers live metric updates.
//
// A Monitor owns one persistent connection to the backend. Subscribing
// yields a single logical stream for the session: an ordered sequence of
// metric events plus a connectivity signal. The stream is not restartable;
// once closed, a new subscription means a new session.
package stream

import (
	"context"
	"sync"
)

// eventBuffer is the channel depth between the transport callback and the
// dashboard's poll loop. Events past a full buffer are dropped with a
// warning rather than blocking the transport.
const eventBuffer = 256

// Monitor exposes the push channel to the dashboard.
type Monitor interface {
	// Subscribe opens the stream. Must be called at most once per session,
	// and only after the graph snapshot has loaded successfully.
	Subscribe(ctx context.Context) (Source, error)

	// Close tears down the underlying connection. Safe to call whether or
	// not Subscribe was ever called, and safe to call more than once.
	Close()
}

// Source is the consumer view of an open subscription.
type Source interface {
	// Events returns the ordered stream of metric events.
	Events() <-chan MetricEvent

	// Connectivity returns the stream of connectivity transitions.
	Connectivity() <-chan State

	// Close releases the subscription and its underlying connection.
	Close()
}

// Subscription is the consumer half of an open push channel: an ordered
// event stream and a connectivity signal, each read via a channel.
type Subscription struct {
	events chan MetricEvent
	states chan State

	mu      sync.Mutex
	closed  bool
	onClose func()
}

func newSubscription(onClose func()) *Subscription {
	return &Subscription{
		events:  make(chan MetricEvent, eventBuffer),
		states:  make(chan State, 8),
		onClose: onClose,
	}
}

// Events returns the ordered stream of metric events. The channel is closed
// when the subscription is closed.
func (s *Subscription) Events() <-chan MetricEvent {
	return s.events
}

// Connectivity returns the stream of connectivity transitions. The channel
// is closed when the subscription is closed.
func (s *Subscription) Connectivity() <-chan State {
	return s.states
}

// Close releases the subscription and its underlying connection.
// Idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.events)
	close(s.states)
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose()
	}
}

// pushEvent delivers an event without blocking the transport callback.
// Reports whether the event was accepted.
func (s *Subscription) pushEvent(ev MetricEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// pushState delivers a connectivity transition without blocking. When the
// buffer is full the oldest transition is dropped, never the newest: the
// consumer must always end up observing the last reported state.
func (s *Subscription) pushState(st State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.states <- st:
		return true
	default:
	}
	select {
	case <-s.states:
	default:
	}
	select {
	case s.states <- st:
		return true
	default:
		return false
	}
}
