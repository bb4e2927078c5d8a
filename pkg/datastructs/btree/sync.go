package btree

import (
	"sync"
)

// SyncTree guards a Tree with a single RWMutex.
// Reads share the lock, structural operations hold it exclusively.
type SyncTree[K, V any] struct {
	mu   sync.RWMutex
	tree *Tree[K, V]
}

// Entry is a key/value pair copied out of the tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// NewSync wraps t. The caller must not use t directly afterwards.
func NewSync[K, V any](t *Tree[K, V]) *SyncTree[K, V] {
	return &SyncTree[K, V]{tree: t}
}

func (s *SyncTree[K, V]) Insert(key K, value V) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(key, value)
}

func (s *SyncTree[K, V]) Search(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Search(key)
}

func (s *SyncTree[K, V]) Update(key K, value V) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Update(key, value)
}

func (s *SyncTree[K, V]) Delete(key K) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(key)
}

func (s *SyncTree[K, V]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Count()
}

func (s *SyncTree[K, V]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Height()
}

func (s *SyncTree[K, V]) BlocksCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.BlocksCount()
}

// Keys returns a copy of the ascending key sequence.
func (s *SyncTree[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Keys()
}

// Entries returns a copy of every pair in ascending key order.
func (s *SyncTree[K, V]) Entries() []Entry[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry[K, V], 0, s.tree.Count())
	for k, v := range s.tree.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// View runs fn with the read lock held. fn must not keep t.
func (s *SyncTree[K, V]) View(fn func(t *Tree[K, V])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.tree)
}
