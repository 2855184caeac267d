// Package dict implements the process-wide-per-Context string interning
// pool described as the "Dictionary" component: identifiers and other
// repeated strings are inserted once and thereafter compared by pointer
// identity rather than by content.
//
// A Pool is owned by exactly one compilation Context (see pkg/yang.Context);
// it is not a package-level singleton, so that multiple Contexts can be
// compiled concurrently without sharing mutable state.
package dict

import "sync"

// Handle is a stable, pointer-comparable reference to an interned string.
// Two Handles are Equal if and only if they were produced by inserting the
// same byte sequence into the same Pool.
type Handle struct {
	s string
}

// String returns the interned string value.
func (h *Handle) String() string {
	if h == nil {
		return ""
	}
	return h.s
}

// entry is the refcounted storage backing a Handle.
type entry struct {
	h    Handle
	refs int
}

// A Pool is a refcounted interning table keyed by content. Insert returns
// the same *Handle for repeated insertions of the same string; Remove
// decrements the refcount and frees the entry at zero.
type Pool struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewPool returns an empty interning Pool.
func NewPool() *Pool {
	return &Pool{entries: map[string]*entry{}}
}

// Insert interns s, returning a Handle shared by every other Insert of the
// same content. The returned Handle is stable for the lifetime of the Pool
// or until its refcount drops to zero via Remove.
func (p *Pool) Insert(s string) *Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[s]; ok {
		e.refs++
		return &e.h
	}
	e := &entry{h: Handle{s: s}}
	e.refs = 1
	p.entries[s] = e
	return &e.h
}

// Remove decrements the refcount of the entry backing h and frees it from
// the pool once no references remain. Remove on a Handle not owned by p is
// a no-op.
func (p *Pool) Remove(h *Handle) {
	if h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[h.s]
	if !ok || &e.h != h {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(p.entries, h.s)
	}
}

// Equal reports whether a and b were interned from the same content in this
// Pool. Per the Dictionary invariant, Handles are never compared by content
// once interned, so this is a pointer comparison.
func Equal(a, b *Handle) bool {
	return a == b
}

// Len returns the number of distinct strings currently interned. Intended
// for diagnostics and tests, not for production control flow.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
