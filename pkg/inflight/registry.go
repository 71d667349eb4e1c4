// pkg/inflight/registry.go
package inflight

import (
	"context"
	"sync"
)

// Registry enforces cancel-and-replace for optimizer calls: when a user
// retries while a call for the same key is still in flight, the older call
// is cancelled so a stale response can never overwrite a newer one.
type Registry struct {
	mu   sync.Mutex
	data map[string]*entry
}

type entry struct {
	cancel context.CancelFunc
	gen    uint64
}

func NewRegistry() *Registry {
	return &Registry{
		data: make(map[string]*entry),
	}
}

// Begin derives a cancellable context for a request under key, cancelling
// any request already in flight for that key. The returned done func must
// be called when the request finishes; it releases the slot only if no
// newer request has replaced it in the meantime.
func (r *Registry) Begin(ctx context.Context, key string) (context.Context, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.data[key]; ok {
		prev.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	var gen uint64
	if prev, ok := r.data[key]; ok {
		gen = prev.gen + 1
	}
	e := &entry{cancel: cancel, gen: gen}
	r.data[key] = e

	done := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if cur, ok := r.data[key]; ok && cur.gen == e.gen {
			delete(r.data, key)
		}
		cancel()
	}
	return reqCtx, done
}

// Active reports whether a request is currently in flight for key.
func (r *Registry) Active(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.data[key]
	return ok
}
