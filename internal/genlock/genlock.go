// Package genlock tracks in-flight generation per entity so a second
// trigger for the same course or module is suppressed rather than
// duplicated. The registry is process-local: two devices racing on the
// same course can still both generate, which is an accepted limitation.
package genlock

import (
	"errors"
	"sync"
)

// ErrInFlight indicates a generation for the entity is already running and
// the new trigger was suppressed.
var ErrInFlight = errors.New("generation already in flight")

// Registry is a set of held generation locks keyed by entity id.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{held: make(map[string]struct{})}
}

// TryAcquire takes the lock for id. Returns false if a generation for id
// is already in flight.
func (r *Registry) TryAcquire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.held[id]; ok {
		return false
	}
	r.held[id] = struct{}{}
	return true
}

// Release frees the lock for id. Releasing an unheld lock is a no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.held, id)
}

// InFlight reports whether a generation for id is currently running.
func (r *Registry) InFlight(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.held[id]
	return ok
}
