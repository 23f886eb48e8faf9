// Package keylock serializes work per dynamic key (party id, user id)
// without blocking unrelated keys.
package keylock

import (
	"context"
	"sync"
)

// entry is a one-slot semaphore shared by every holder and waiter of a key.
type entry struct {
	sem  chan struct{}
	refs int
}

// Locker hands out mutual exclusion per key. Entries are created lazily and
// dropped once no goroutine holds or waits for them.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Locker
func New() *Locker {
	return &Locker{
		entries: make(map[string]*entry),
	}
}

// Lock blocks until the key is held or ctx is done. On success the returned
// func releases the key and must be called exactly once.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	e := l.acquireRef(key)

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseRef(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.releaseRef(key, e)
		})
	}, nil
}

// Key joins a scope and an id into a lock key, e.g. Key("party", id)
func Key(scope, id string) string {
	return scope + ":" + id
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locker) acquireRef(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) releaseRef(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
