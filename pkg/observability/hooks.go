// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about constraint expansion and
// manifest loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by the host, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExpandHooks(&myExpandHooks{})
//	    observability.SetManifestHooks(&myManifestHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Expand().OnExpandStart(node, len(descriptors))
//	// ... expand ...
//	observability.Expand().OnExpandComplete(node, len(records), duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Expand Hooks
// =============================================================================

// ExpandHooks receives events from the constraint expansion engine.
type ExpandHooks interface {
	// OnExpandStart records the start of an expansion call for one node.
	OnExpandStart(node string, descriptors int)

	// OnExpandComplete records the end of an expansion call, with the
	// number of records registered and the error, if any.
	OnExpandComplete(node string, records int, duration time.Duration, err error)
}

// =============================================================================
// Manifest Hooks
// =============================================================================

// ManifestHooks receives events from layout manifest loading.
type ManifestHooks interface {
	// OnLoadStart records the start of a manifest load.
	OnLoadStart(path string)

	// OnLoadComplete records the end of a manifest load, with the view
	// and rule counts of the decoded document and the error, if any.
	OnLoadComplete(path string, views, rules int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExpandHooks is a no-op implementation of ExpandHooks.
type NoopExpandHooks struct{}

func (NoopExpandHooks) OnExpandStart(string, int) {}

func (NoopExpandHooks) OnExpandComplete(string, int, time.Duration, error) {}

// NoopManifestHooks is a no-op implementation of ManifestHooks.
type NoopManifestHooks struct{}

func (NoopManifestHooks) OnLoadStart(string) {}

func (NoopManifestHooks) OnLoadComplete(string, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	expandHooks   ExpandHooks   = NoopExpandHooks{}
	manifestHooks ManifestHooks = NoopManifestHooks{}
	hooksMu       sync.RWMutex
)

// SetExpandHooks registers custom expansion hooks.
// This should be called once at application startup before any expansion.
func SetExpandHooks(h ExpandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		expandHooks = h
	}
}

// SetManifestHooks registers custom manifest hooks.
// This should be called once at application startup before any loading.
func SetManifestHooks(h ManifestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		manifestHooks = h
	}
}

// Expand returns the registered expansion hooks.
func Expand() ExpandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return expandHooks
}

// Manifest returns the registered manifest hooks.
func Manifest() ManifestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return manifestHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	expandHooks = NoopExpandHooks{}
	manifestHooks = NoopManifestHooks{}
}
