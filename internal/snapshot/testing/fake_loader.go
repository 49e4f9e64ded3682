// Package testing provides test doubles for the snapshot package.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/depwatch/depwatch/internal/graph"
)

// LoadCall records a call to the loader.
type LoadCall struct {
	At time.Time
}

// FakeLoader simulates snapshot fetches for testing.
// It records calls and returns configured results.
type FakeLoader struct {
	mu sync.Mutex

	// Configuration
	Snapshot   *graph.Snapshot
	ShouldFail bool
	FailError  error

	// Call tracking
	Calls []LoadCall
}

// NewFakeLoader creates a fake loader returning the given snapshot.
func NewFakeLoader(snap *graph.Snapshot) *FakeLoader {
	return &FakeLoader{Snapshot: snap}
}

// Load simulates a snapshot fetch.
func (f *FakeLoader) Load(ctx context.Context) (*graph.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, LoadCall{At: time.Now()})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.ShouldFail {
		return nil, f.FailError
	}
	return f.Snapshot, nil
}

// SetFail configures the loader to fail with the given error.
func (f *FakeLoader) SetFail(err error) *FakeLoader {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShouldFail = true
	f.FailError = err
	return f
}

// SetSnapshot swaps the snapshot returned by subsequent loads and clears
// any configured failure.
func (f *FakeLoader) SetSnapshot(snap *graph.Snapshot) *FakeLoader {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Snapshot = snap
	f.ShouldFail = false
	f.FailError = nil
	return f
}

// CallCount returns how many times Load was invoked.
func (f *FakeLoader) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
