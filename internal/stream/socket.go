package stream

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/logger"
)

// Options configures a SocketMonitor.
type Options struct {
	// URL is the backend base address (http/https); the socket transport
	// upgrades it to ws/wss itself.
	URL string

	// Path is the socket endpoint path on the server.
	Path string

	// Namespace is the socket.io namespace to join.
	Namespace string

	// Event is the event name metric updates arrive on.
	Event string

	// Logger overrides the default env-gated logger.
	Logger logger.Logger
}

// SocketMonitor implements Monitor on a socket.io client over websocket.
// The client handles reconnection/backoff internally; only the resulting
// connect/disconnect transitions are surfaced.
type SocketMonitor struct {
	opts Options
	log  logger.Logger

	mu         sync.Mutex
	manager    *socket.Manager
	io         *socket.Socket
	sub        *Subscription
	subscribed bool
}

var _ Monitor = (*SocketMonitor)(nil)

// NewSocketMonitor creates a monitor for the given options. No connection
// is made until Subscribe.
func NewSocketMonitor(opts Options) *SocketMonitor {
	log := opts.Logger
	if log == nil {
		log = logger.NewEnvLogger("[stream]")
	}
	if opts.Namespace == "" {
		opts.Namespace = "/"
	}
	if opts.Event == "" {
		opts.Event = "metrics"
	}
	return &SocketMonitor{opts: opts, log: log}
}

// Subscribe connects the socket and returns the session's subscription.
// A second call is an error: the stream is a single logical sequence.
func (m *SocketMonitor) Subscribe(ctx context.Context) (Source, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.subscribed {
		return nil, errors.New(errors.ErrChannel,
			"Push channel already subscribed",
			"The event stream is not restartable within a session")
	}

	parsed, err := url.Parse(m.opts.URL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrChannel,
			"Cannot parse push channel URL",
			"Check server.url in the config")
	}

	baseURL := fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
	sockOpts := socket.DefaultOptions()
	if m.opts.Path != "" {
		sockOpts.SetPath(m.opts.Path)
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(m.opts.Namespace, sockOpts)

	sub := newSubscription(func() {
		m.log.Debug("disconnecting socket client")
		io.Disconnect()
	})

	io.On(types.EventName("connect"), func(...any) {
		m.log.Info("push channel connected (namespace %s, sid %s)", m.opts.Namespace, io.Id())
		sub.pushState(StateConnected)
	})

	io.On(types.EventName("disconnect"), func(...any) {
		m.log.Warn("push channel disconnected")
		sub.pushState(StateDisconnected)
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			m.log.Warn("push channel connect error: %v", errs[0])
		}
		sub.pushState(StateDisconnected)
	})

	io.On(types.EventName(m.opts.Event), func(data ...any) {
		if len(data) == 0 {
			m.log.Warn("dropping empty %s event", m.opts.Event)
			return
		}
		ev, err := ParseMetricEvent(data[0])
		if err != nil {
			// Malformed events are dropped; the stream continues.
			m.log.Warn("dropping malformed event: %v", err)
			return
		}
		if !sub.pushEvent(ev) {
			m.log.Warn("dropping event for node %q: consumer not keeping up", ev.NodeID)
		}
	})

	io.Connect()

	m.manager = manager
	m.io = io
	m.sub = sub
	m.subscribed = true

	// Tear down with the context so error paths that cancel before the
	// session ends still release the socket.
	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// Close tears down the subscription and socket. Idempotent; safe to call
// even if Subscribe never ran.
func (m *SocketMonitor) Close() {
	m.mu.Lock()
	sub := m.sub
	m.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}
