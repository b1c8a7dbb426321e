package rbtree

import (
	"cmp"
	"iter"

	"github.com/nightfallrs/nightfall-go/pkg/xiter"
)

// Set is an ordered key-only container, implemented as a [Map] with unit
// values.
//
// The zero Set is not ready to use; construct one with [NewSet] or
// [NewSetFunc].
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set ordered by K's natural order.
func NewSet[K cmp.Ordered]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// NewSetFunc creates an empty Set ordered by the given three-way
// comparator, for key types that do not satisfy [cmp.Ordered].
func NewSetFunc[K any](compare func(K, K) int) *Set[K] {
	return &Set[K]{m: NewMapFunc[K, struct{}](compare)}
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Clear removes every element from the set.
func (s *Set[K]) Clear() { s.m.Clear() }

// Contains reports whether key is a member of the set.
func (s *Set[K]) Contains(key K) bool { return s.m.Contains(key) }

// Insert adds key to the set, returning true iff it was already present.
func (s *Set[K]) Insert(key K) bool {
	return s.m.Insert(key, struct{}{}).IsSome()
}

// Remove removes key from the set, returning true iff it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.m.Remove(key).IsSome()
}

// Iter returns an in-order iterator over the set's elements.
func (s *Set[K]) Iter() iter.Seq[K] {
	return s.m.Keys()
}

// Difference returns a lazy, in-order sequence of elements of s that are
// not in other.
func (s *Set[K]) Difference(other *Set[K]) iter.Seq[K] {
	return xiter.Filter(s.Iter(), func(k K) bool { return !other.Contains(k) })
}

// Intersection returns a lazy sequence of elements present in both sets.
// It iterates whichever set is smaller and membership-tests the other, so
// its cost is O(min(|s|, |other|) * log(max(|s|, |other|))).
func (s *Set[K]) Intersection(other *Set[K]) iter.Seq[K] {
	small, large := s, other
	if other.Len() < s.Len() {
		small, large = other, s
	}
	return xiter.Filter(small.Iter(), func(k K) bool { return large.Contains(k) })
}

// Union returns a lazy sequence of every element in either set: the larger
// set's elements in order, followed by the smaller set's elements that are
// not already in the larger one, in order. The combined sequence is not
// sorted as a whole.
func (s *Set[K]) Union(other *Set[K]) iter.Seq[K] {
	large, small := s, other
	if other.Len() > s.Len() {
		large, small = other, s
	}
	return xiter.Chain(large.Iter(), small.Difference(large))
}

// SymmetricDifference returns a lazy sequence of elements in exactly one
// of the two sets: s's elements not in other, followed by other's
// elements not in s.
func (s *Set[K]) SymmetricDifference(other *Set[K]) iter.Seq[K] {
	return xiter.Chain(s.Difference(other), other.Difference(s))
}
