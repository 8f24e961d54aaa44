// Package observe provides hooks for instrumenting graph evaluation.
//
// The graph core stays dependency-free from logging and metrics frameworks:
// it emits events through a small hook interface with a no-op default, and
// consumers register a backend at startup. This avoids import cycles (hooks
// are registered by main, not by libraries) and lets the same core feed a
// structured logger during development and counters in production.
//
// # Usage
//
// Register hooks at application startup:
//
//	observe.SetHooks(&myHooks{})
//	defer observe.Reset()
//
// The graph core emits events on every evaluation and invalidation:
//
//	observe.Active().OnCacheHit(int(id))
package observe

import "sync"

// Hooks receives events from graph evaluation and cache maintenance.
// Node identity is reported as the node's arena index.
type Hooks interface {
	// OnCacheHit records an Output call served from a valid cache.
	OnCacheHit(node int)

	// OnEvaluate records a recomputation: the node's operator registry
	// index and its current fan-in (input count).
	OnEvaluate(node, opIndex, fanIn int)

	// OnInvalidate records an invalidation wave: the mutated origin node
	// and the number of nodes marked stale (origin included).
	OnInvalidate(origin, marked int)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnCacheHit(int)           {}
func (NoopHooks) OnEvaluate(int, int, int) {}
func (NoopHooks) OnInvalidate(int, int)    {}

var (
	active  Hooks = NoopHooks{}
	hooksMu sync.RWMutex
)

// SetHooks registers custom evaluation hooks.
// This should be called once at application startup, before any evaluation.
// A nil argument is ignored.
func SetHooks(h Hooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		active = h
	}
}

// Active returns the registered hooks.
func Active() Hooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return active
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	active = NoopHooks{}
}
