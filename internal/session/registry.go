// Package session holds the in-memory registry of authenticated clients.
// Entries expire on a sliding window: every successful lookup pushes the
// expiry forward, and an expired entry is treated as absent.
package session

import (
	"sync"
	"time"

	"github.com/grigorv/snackshop/internal/model"
)

const DefaultTTL = 3600 * time.Second

type entry struct {
	user      model.ID
	expiresAt time.Time
}

type Registry struct {
	mu      sync.Mutex
	entries map[string]entry

	ttl time.Duration
	now func() time.Time
}

type Option func(*Registry)

// WithClock overrides the registry's time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the user bound to clientKey and refreshes its expiry.
// An expired entry is reported absent but not removed.
func (r *Registry) Lookup(clientKey string) (model.ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[clientKey]
	if !ok || !r.now().Before(e.expiresAt) {
		return 0, false
	}

	e.expiresAt = r.now().Add(r.ttl)
	r.entries[clientKey] = e

	return e.user, true
}

// Establish binds clientKey to user with a fresh expiry, overwriting any
// previous binding for that key.
func (r *Registry) Establish(clientKey string, user model.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[clientKey] = entry{
		user:      user,
		expiresAt: r.now().Add(r.ttl),
	}
}

// Revoke removes the binding for clientKey, if any.
func (r *Registry) Revoke(clientKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, clientKey)
}

// Sweep drops expired entries and returns how many were removed. Expired
// entries already behave as absent, so sweeping only reclaims memory.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	var removed int
	for key, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, key)
			removed++
		}
	}

	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
