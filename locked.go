package quadtree

import (
	"slices"
	"sync"
)

// Locked serialises access to a Tree. Mutations take an exclusive lock and
// queries share a read lock, so a Locked tree can be used from several
// goroutines at once.
type Locked[T Item] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

// NewLocked wraps t. The caller must not use t directly afterwards.
func NewLocked[T Item](t *Tree[T]) *Locked[T] {
	return &Locked[T]{tree: t}
}

// Insert is Tree.Insert under the write lock.
func (l *Locked[T]) Insert(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(item)
}

// InsertAll is Tree.InsertAll under the write lock.
func (l *Locked[T]) InsertAll(items []T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.InsertAll(items)
}

// Clear is Tree.Clear under the write lock.
func (l *Locked[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Clear()
}

// Retrieve is Tree.Retrieve under the read lock. visit must not call back
// into l with a mutating method.
func (l *Locked[T]) Retrieve(q Rect, visit func(T)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.tree.Retrieve(q, visit)
}

// Collect returns the candidates for q as a slice, taken under the read lock.
// An iterator would outlive the lock, so none is offered here.
func (l *Locked[T]) Collect(q Rect) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Collect(l.tree.All(q))
}

// Len is Tree.Len under the read lock.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// Stats is Tree.Stats under the read lock.
func (l *Locked[T]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Stats()
}
