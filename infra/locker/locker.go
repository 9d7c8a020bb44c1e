// locker/locker.go
package locker

import "sync"

// Locker guards against concurrent ingestion of the same batch tag
// within one process. The store itself enforces no such constraint.
type Locker struct {
	mu         sync.Mutex
	inProgress map[string]bool
}

func New() *Locker {
	return &Locker{
		inProgress: make(map[string]bool),
	}
}

// TryAcquire marks the key as being processed. It returns false if an
// ingestion already holds the key.
func (l *Locker) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProgress[key] {
		return false
	}
	l.inProgress[key] = true
	return true
}

func (l *Locker) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProgress, key)
}
