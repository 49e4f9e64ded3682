package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_EventOrderPreserved(t *testing.T) {
	sub := newSubscription(nil)

	for i := 0; i < 10; i++ {
		ok := sub.pushEvent(MetricEvent{NodeID: "a", Metric: "latency_ms", Value: float64(i)})
		require.True(t, ok)
	}

	for i := 0; i < 10; i++ {
		ev := <-sub.Events()
		assert.Equal(t, float64(i), ev.Value)
	}
}

func TestSubscription_ConnectivityTransitions(t *testing.T) {
	sub := newSubscription(nil)

	require.True(t, sub.pushState(StateConnected))
	require.True(t, sub.pushState(StateDisconnected))
	require.True(t, sub.pushState(StateConnected))

	assert.Equal(t, StateConnected, <-sub.Connectivity())
	assert.Equal(t, StateDisconnected, <-sub.Connectivity())
	assert.Equal(t, StateConnected, <-sub.Connectivity())
}

func TestSubscription_Close(t *testing.T) {
	released := false
	sub := newSubscription(func() { released = true })

	sub.Close()

	assert.True(t, released, "close hook should release the transport")

	// Channels are closed
	_, ok := <-sub.Events()
	assert.False(t, ok)
	_, ok2 := <-sub.Connectivity()
	assert.False(t, ok2)
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	releases := 0
	sub := newSubscription(func() { releases++ })

	sub.Close()
	sub.Close()
	sub.Close()

	assert.Equal(t, 1, releases)
}

func TestSubscription_PushAfterCloseRejected(t *testing.T) {
	sub := newSubscription(nil)
	sub.Close()

	assert.False(t, sub.pushEvent(MetricEvent{NodeID: "a", Metric: "m", Value: 1}))
	assert.False(t, sub.pushState(StateConnected))
}

func TestSubscription_FullBufferDropsNewest(t *testing.T) {
	sub := newSubscription(nil)

	accepted := 0
	for i := 0; i < eventBuffer+10; i++ {
		if sub.pushEvent(MetricEvent{NodeID: "a", Metric: "m", Value: float64(i), Timestamp: time.Now()}) {
			accepted++
		}
	}

	// Exactly the buffer's worth is accepted; the transport is never blocked
	assert.Equal(t, eventBuffer, accepted)
}

func TestSubscription_FullStateBufferKeepsNewest(t *testing.T) {
	sub := newSubscription(nil)

	// Flood well past the buffer depth, ending disconnected.
	for i := 0; i < 20; i++ {
		require.True(t, sub.pushState(StateConnected))
		require.True(t, sub.pushState(StateDisconnected))
	}

	var last State
	for {
		select {
		case st := <-sub.Connectivity():
			last = st
			continue
		default:
		}
		break
	}
	assert.Equal(t, StateDisconnected, last)
}

func TestNewSocketMonitor_Defaults(t *testing.T) {
	m := NewSocketMonitor(Options{URL: "http://localhost:8000"})

	assert.Equal(t, "/", m.opts.Namespace)
	assert.Equal(t, "metrics", m.opts.Event)
}

func TestSocketMonitor_CloseWithoutSubscribe(t *testing.T) {
	m := NewSocketMonitor(Options{URL: "http://localhost:8000"})

	// Should not panic
	m.Close()
	m.Close()
}
