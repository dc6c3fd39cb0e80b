// Package observability provides hooks for metrics and tracing of saves and
// uploads.
//
// Consumers register hooks at startup to receive events; libraries emit
// events through the package-level accessors. Every hook category has a
// no-op default, so instrumentation is optional.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSaveHooks(&mySaveHooks{})
//	    observability.SetUploadHooks(&myUploadHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Save().OnSaveStart("Data.xml", classCount)
//	// ... build and write the container ...
//	observability.Save().OnSaveComplete("Data.xml", classCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Save Hooks
// =============================================================================

// SaveHooks receives events from the container writer.
//
// The write path is synchronous and takes no context, so save hooks carry
// none either.
type SaveHooks interface {
	// OnSaveStart records the start of a save of classCount classes.
	OnSaveStart(target string, classCount int)

	// OnNodeSkipped records a node that was dropped because no converter or
	// built-in type tag could describe it.
	OnNodeSkipped(className, nodeName, kind string)

	// OnSaveComplete records the end of a save.
	OnSaveComplete(target string, classCount int, duration time.Duration, err error)
}

// =============================================================================
// Upload Hooks
// =============================================================================

// UploadHooks receives events from object storage uploads.
type UploadHooks interface {
	// OnUploadStart records an upload of size bytes to bucket/key.
	OnUploadStart(ctx context.Context, bucket, key string, size int64)

	// OnUploadComplete records the end of an upload.
	OnUploadComplete(ctx context.Context, bucket, key string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSaveHooks is a no-op implementation of SaveHooks.
type NoopSaveHooks struct{}

func (NoopSaveHooks) OnSaveStart(string, int)                          {}
func (NoopSaveHooks) OnNodeSkipped(string, string, string)             {}
func (NoopSaveHooks) OnSaveComplete(string, int, time.Duration, error) {}

// NoopUploadHooks is a no-op implementation of UploadHooks.
type NoopUploadHooks struct{}

func (NoopUploadHooks) OnUploadStart(context.Context, string, string, int64) {}
func (NoopUploadHooks) OnUploadComplete(context.Context, string, string, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	saveHooks   SaveHooks   = NoopSaveHooks{}
	uploadHooks UploadHooks = NoopUploadHooks{}
	hooksMu     sync.RWMutex
)

// SetSaveHooks registers custom save hooks.
// This should be called once at application startup before any save.
func SetSaveHooks(h SaveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		saveHooks = h
	}
}

// SetUploadHooks registers custom upload hooks.
func SetUploadHooks(h UploadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		uploadHooks = h
	}
}

// Save returns the registered save hooks.
func Save() SaveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return saveHooks
}

// Upload returns the registered upload hooks.
func Upload() UploadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return uploadHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	saveHooks = NoopSaveHooks{}
	uploadHooks = NoopUploadHooks{}
}
