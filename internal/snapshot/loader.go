// Package snapshot performs the one-shot fetch of the dependency graph and
// its aggregate statistics from the monitoring backend.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/graph"
	"github.com/depwatch/depwatch/internal/logger"
)

// SnapshotPath is the REST endpoint serving the full graph.
const SnapshotPath = "/api/graph"

// DefaultTimeout bounds the snapshot request when the config does not set one.
const DefaultTimeout = 10 * time.Second

// Loader fetches a graph snapshot. Implementations must be safe to call
// again for an explicit reload; each call returns a fresh snapshot.
type Loader interface {
	Load(ctx context.Context) (*graph.Snapshot, error)
}

// HTTPLoader fetches snapshots over HTTP from the backend's REST API.
type HTTPLoader struct {
	client *resty.Client
	log    logger.Logger
}

// Option configures an HTTPLoader.
type Option func(*HTTPLoader)

// WithLogger sets the logger used by the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *HTTPLoader) {
		l.log = log
	}
}

// NewHTTPLoader creates a loader for the given base URL.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPLoader(baseURL string, timeout time.Duration, opts ...Option) *HTTPLoader {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	l := &HTTPLoader{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		log: logger.NewEnvLogger("[snapshot]"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and parses the graph snapshot. Any transport failure,
// non-2xx status, or malformed payload is a FETCH error; no partial
// snapshot is ever returned.
func (l *HTTPLoader) Load(ctx context.Context) (*graph.Snapshot, error) {
	l.log.Debug("fetching snapshot from %s%s", l.client.BaseURL(), SnapshotPath)

	resp, err := l.client.R().SetContext(ctx).Get(SnapshotPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Cannot reach graph server",
			"Check the server URL in .depwatch.yaml and that the backend is running")
	}

	if !resp.IsSuccess() {
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("Graph server returned %s for %s", resp.Status(), SnapshotPath),
			"Check the server logs; the graph endpoint should return 200 with a JSON body")
	}

	snap, err := graph.ParseSnapshot(resp.Bytes())
	if err != nil {
		return nil, err
	}

	l.log.Debug("snapshot loaded: %d nodes, %d edges", len(snap.Nodes), len(snap.Edges))
	return snap, nil
}

// Close releases the underlying HTTP client resources.
func (l *HTTPLoader) Close() error {
	return l.client.Close()
}
