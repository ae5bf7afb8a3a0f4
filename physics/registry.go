package physics

import (
	"cmp"
	"slices"
	"sync"
)

// PairKey identifies an unordered pair of bodies by their ids, lowest first
type PairKey struct {
	Low, High uint32
}

// MakePairKey returns the canonical key for two bodies regardless of argument order
func MakePairKey(a, b *Body) PairKey {
	if a.id < b.id {
		return PairKey{Low: a.id, High: b.id}
	}
	return PairKey{Low: b.id, High: a.id}
}

// Pair holds two colliding bodies, A being the one with the lower id
type Pair struct {
	Key  PairKey
	A, B *Body
}

// Registry collects the colliding pairs discovered during one tick.
// Writers from concurrent region scans share a single lock.
type Registry struct {
	mu    sync.Mutex
	pairs map[PairKey]Pair

	// Every insert attempt, including duplicates
	discovered int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		pairs: make(map[PairKey]Pair),
	}
}

// Insert records the pair if it is not already present and reports whether it was new.
// An existing entry is never overwritten.
func (r *Registry) Insert(a, b *Body) bool {
	key := MakePairKey(a, b)
	if a.id > b.id {
		a, b = b, a
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.discovered++
	if _, ok := r.pairs[key]; ok {
		return false
	}
	r.pairs[key] = Pair{Key: key, A: a, B: b}
	return true
}

// Contains reports whether the pair has been recorded
func (r *Registry) Contains(a, b *Body) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pairs[MakePairKey(a, b)]
	return ok
}

// Len returns the number of unique pairs
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pairs)
}

// Discovered returns the number of insert attempts, duplicates included
func (r *Registry) Discovered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.discovered
}

// Pairs returns the unique pairs ordered by key
func (r *Registry) Pairs() []Pair {
	r.mu.Lock()
	out := make([]Pair, 0, len(r.pairs))
	for _, p := range r.pairs {
		out = append(out, p)
	}
	r.mu.Unlock()

	slices.SortFunc(out, func(x, y Pair) int {
		if c := cmp.Compare(x.Key.Low, y.Key.Low); c != 0 {
			return c
		}
		return cmp.Compare(x.Key.High, y.Key.High)
	})
	return out
}
