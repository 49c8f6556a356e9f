// Package intern implements a process-wide constant-string interning
// table: a C-string → interned-object map guarded by a single lock, using
// "winner insertion" (once a key exists, later readers observe the first
// object inserted; a racing writer releases its own redundant object).
//
// It is generic over the interned value type so the core package (which
// needs to intern *String) and any other collaborator can share the same
// table implementation without an import cycle.
package intern

import "sync"

// Table is a process-wide, lock-protected C-string → V map. The zero
// value is ready to use.
type Table[V any] struct {
	mu sync.Mutex
	m  map[string]V
}

// New returns a ready-to-use Table.
func New[V any]() *Table[V] {
	return &Table[V]{m: make(map[string]V)}
}

// Insert installs value for key if no entry exists yet and reports
// installed=true. If key is already present, Insert leaves the table
// untouched, reports installed=false, and returns the existing entry —
// the caller (who built value before calling Insert, since construction
// is expensive and must happen outside the lock) is expected to release
// its own redundant value in that case.
func (t *Table[V]) Insert(key string, value V) (existing V, installed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.m[key]; ok {
		return v, false
	}
	if t.m == nil {
		t.m = make(map[string]V)
	}
	t.m[key] = value
	return value, true
}

// Lookup returns the table's entry for key, if any, without inserting.
func (t *Table[V]) Lookup(key string) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.m[key]
	return v, ok
}

// Len reports the number of interned entries, chiefly for tests and
// diagnostics.
func (t *Table[V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}
