// Package rbtree implements an intrusive, parent-pointered red-black tree,
// plus [Map] and [Set] views over it.
//
// # Structure
//
// [Tree] owns its nodes directly: each [*node] is reachable from exactly
// one parent (root excepted), and carries a non-owning back-reference to
// that parent. There is no separate arena or allocator backing nodes —
// they are ordinary Go heap values, collected when no longer reachable.
//
// # Ordering
//
// Keys are compared with a three-way comparator, either derived
// automatically for [cmp.Ordered] key types via [New], or supplied
// explicitly via [NewFunc] for key types without a natural order (structs,
// pointers compared by a derived field, and so on).
//
// # Iteration
//
// [Tree.Iter] and [Tree.IterMut] are Go 1.23 range-over-func iterators
// that walk the tree in-order using an explicit stack; they are single
// pass and not restartable, and structural mutation of the tree during
// iteration is undefined.
package rbtree
