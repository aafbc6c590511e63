// Package session keeps the in-memory registry of live checkout sessions.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/paykit/checkout-gateway/internal/domain/checkout"
)

// EvictFunc runs for every session the sweeper evicts, after it left the
// registry. Used to drop the session's persisted credentials alongside the
// in-memory state.
type EvictFunc func(ctx context.Context, sessionID string)

// Registry holds live sessions and evicts the ones idle longer than the TTL.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*checkout.Session

	ttl        time.Duration
	sweepEvery time.Duration
	onEvict    EvictFunc
	log        *slog.Logger
}

func NewRegistry(ttl, sweepEvery time.Duration, onEvict EvictFunc, log *slog.Logger) *Registry {
	return &Registry{
		sessions:   make(map[string]*checkout.Session),
		ttl:        ttl,
		sweepEvery: sweepEvery,
		onEvict:    onEvict,
		log:        log,
	}
}

func (r *Registry) Put(s *checkout.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Get returns the session and refreshes its idle timer.
func (r *Registry) Get(id string) (*checkout.Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.Touch()
	}
	return s, ok
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Run sweeps expired sessions until the context is canceled.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := r.sweep(ctx, time.Now()); evicted > 0 {
				r.log.InfoContext(ctx, "evicted idle checkout sessions", "count", evicted)
			}
		}
	}
}

func (r *Registry) sweep(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	var evicted []string
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.ttl {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	r.mu.Unlock()

	// the hook may hit the database; it runs outside the registry lock
	if r.onEvict != nil {
		for _, id := range evicted {
			r.onEvict(ctx, id)
		}
	}
	return len(evicted)
}
