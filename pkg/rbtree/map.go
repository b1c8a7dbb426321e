package rbtree

import (
	"cmp"
	"iter"

	"github.com/nightfallrs/nightfall-go/pkg/opt"
)

// Map is an ordered key-value container backed by a [Tree].
//
// The zero Map is not ready to use; construct one with [NewMap] or
// [NewMapFunc].
type Map[K, V any] struct {
	tree *Tree[K, V]
}

// NewMap creates an empty Map ordered by K's natural order.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: New[K, V]()}
}

// NewMapFunc creates an empty Map ordered by the given three-way
// comparator, for key types that do not satisfy [cmp.Ordered].
func NewMapFunc[K, V any](compare func(K, K) int) *Map[K, V] {
	return &Map[K, V]{tree: NewFunc[K, V](compare)}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool { return m.tree.Contains(key) }

// Get returns the value stored at key, if present.
func (m *Map[K, V]) Get(key K) opt.Option[V] { return m.tree.Get(key) }

// GetKeyValue returns the stored key and value at key, if present.
func (m *Map[K, V]) GetKeyValue(key K) opt.Option[Entry[K, V]] { return m.tree.GetEntry(key) }

// GetMut returns a pointer to the value stored at key, if present.
func (m *Map[K, V]) GetMut(key K) (*V, bool) { return m.tree.GetMut(key) }

// Insert stores value at key. If key was already present, its previous
// value is returned and overwritten; otherwise the entry is added and
// None is returned.
func (m *Map[K, V]) Insert(key K, value V) opt.Option[V] { return m.tree.Insert(key, value) }

// Remove removes and returns the value stored at key, if present.
func (m *Map[K, V]) Remove(key K) opt.Option[V] { return m.tree.Remove(key) }

// Iter returns an in-order iterator over the map's entries.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] { return m.tree.Iter() }

// IterMut returns an in-order iterator over the map's entries, handing out
// a mutable pointer to each value.
func (m *Map[K, V]) IterMut() iter.Seq2[K, *V] { return m.tree.IterMut() }

// Keys returns an in-order iterator over the map's keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an in-order iterator over the map's values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.tree.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesMut returns an in-order iterator over the map's values, handing
// out a mutable pointer to each one.
func (m *Map[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for _, v := range m.tree.IterMut() {
			if !yield(v) {
				return
			}
		}
	}
}
