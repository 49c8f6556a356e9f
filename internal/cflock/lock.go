// Package cflock provides a lightweight lock shim for process-wide shared
// state. Its only user is the bundle strings-file registry; the interning
// table and the locale collator cache use sync.Mutex directly.
package cflock

import "sync"

// Lock guards a single piece of process-wide state. The zero value is an
// unlocked, ready-to-use Lock.
type Lock struct {
	mu sync.Mutex
}

// Lock acquires the lock, blocking until it is available.
func (l *Lock) Lock() { l.mu.Lock() }

// Unlock releases the lock.
func (l *Lock) Unlock() { l.mu.Unlock() }

// TryLock attempts to acquire the lock without blocking, reporting whether
// it succeeded.
func (l *Lock) TryLock() bool { return l.mu.TryLock() }
