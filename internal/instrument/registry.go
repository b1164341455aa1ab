package instrument

import (
	"sync"

	al "github.com/emirpasic/gods/v2/lists/arraylist"

	"fenrir/internal/routing"
)

// Registry stores the venue's tradable instruments. It enforces identity
// uniqueness on the composite (instrument_id, market_code, currency) key
// and exposes read-only lookups.
//
// Registration happens before trading begins, so the registry is
// effectively read-only in steady state; a RWMutex is enough.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[routing.Key]*Instrument
	ordered *al.List[*Instrument]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[routing.Key]*Instrument),
		ordered: al.New[*Instrument](),
	}
}

// Register stores inst if no existing entry shares its composite key. It
// returns false and leaves the registry unchanged on conflict: the first
// registration wins.
func (r *Registry) Register(inst Instrument) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[inst.Key]; exists {
		return false
	}

	cp := inst
	cp.Name = cp.TruncatedName()
	r.byKey[inst.Key] = &cp
	r.ordered.Add(&cp)
	return true
}

// List enumerates registered instruments in insertion order.
func (r *Registry) List() []Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := r.ordered.Values()
	out := make([]Instrument, len(values))
	for i, inst := range values {
		out[i] = *inst
	}
	return out
}

// Find performs an exact-match lookup on the composite key.
func (r *Registry) Find(key routing.Key) (Instrument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.byKey[key]
	if !ok {
		return Instrument{}, false
	}
	return *inst, true
}
