package rbtree

import (
	"cmp"
	"iter"

	"github.com/nightfallrs/nightfall-go/internal/debug"
	"github.com/nightfallrs/nightfall-go/pkg/opt"
)

type color uint8

const (
	black color = iota
	red
)

type node[K, V any] struct {
	color       color
	parent      *node[K, V]
	left, right *node[K, V]
	key         K
	value       V
}

// colorOf treats a nil node as Black, per the usual red-black convention;
// Go has no sentinel leaf to carry that color, so every caller that might
// be looking at an absent child goes through this instead of n.color.
func colorOf[K, V any](n *node[K, V]) color {
	if n == nil {
		return black
	}
	return n.color
}

// Entry is a key/value pair returned by operations that need to hand back
// both halves of a tree node at once.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Tree is a parent-pointered red-black tree ordered by a three-way
// comparator over K.
//
// The zero Tree is not ready to use; construct one with [New] or
// [NewFunc].
type Tree[K, V any] struct {
	root *node[K, V]
	len  int
	cmp  func(K, K) int
}

// New creates an empty Tree ordered by K's natural order.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty Tree ordered by the given three-way comparator,
// for key types that do not satisfy [cmp.Ordered].
func NewFunc[K, V any](compare func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: compare}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return t.len }

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.len == 0 }

// Clear removes every entry from the tree. The underlying nodes become
// unreachable and are reclaimed by the garbage collector; there is no
// explicit destructor walk to perform, unlike in a manually-managed
// implementation.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.len = 0
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Get returns the value stored at key, if present.
func (t *Tree[K, V]) Get(key K) opt.Option[V] {
	n := t.find(key)
	if n == nil {
		return opt.None[V]()
	}
	return opt.Some(n.value)
}

// GetMut returns a pointer to the value stored at key, if present, so the
// caller can mutate it in place.
func (t *Tree[K, V]) GetMut(key K) (*V, bool) {
	n := t.find(key)
	if n == nil {
		return nil, false
	}
	return &n.value, true
}

// GetEntry returns the stored key and value at key, if present. The
// returned key is the one actually stored in the tree, which is identical
// to the lookup key under the tree's comparator but may differ from it in
// fields the comparator ignores.
func (t *Tree[K, V]) GetEntry(key K) opt.Option[Entry[K, V]] {
	n := t.find(key)
	if n == nil {
		return opt.None[Entry[K, V]]()
	}
	return opt.Some(Entry[K, V]{Key: n.key, Value: n.value})
}

// Minimum returns the entry with the smallest key, if the tree is
// non-empty.
func (t *Tree[K, V]) Minimum() opt.Option[Entry[K, V]] {
	if t.root == nil {
		return opt.None[Entry[K, V]]()
	}
	n := minimum(t.root)
	return opt.Some(Entry[K, V]{Key: n.key, Value: n.value})
}

// Maximum returns the entry with the largest key, if the tree is
// non-empty.
func (t *Tree[K, V]) Maximum() opt.Option[Entry[K, V]] {
	if t.root == nil {
		return opt.None[Entry[K, V]]()
	}
	n := maximum(t.root)
	return opt.Some(Entry[K, V]{Key: n.key, Value: n.value})
}

// Search returns the value for key if present, otherwise the value of the
// smallest key strictly greater than key, otherwise None.
func (t *Tree[K, V]) Search(key K) opt.Option[V] {
	n := t.searchNode(key)
	if n == nil {
		return opt.None[V]()
	}
	return opt.Some(n.value)
}

// SearchAndRemove finds the entry Search would find and removes it from
// the tree in the same descent, without a second traversal from the root.
func (t *Tree[K, V]) SearchAndRemove(key K) opt.Option[Entry[K, V]] {
	n := t.searchNode(key)
	if n == nil {
		return opt.None[Entry[K, V]]()
	}
	e := Entry[K, V]{Key: n.key, Value: n.value}
	t.deleteNode(n)
	return opt.Some(e)
}

// RemoveBy removes and returns the first entry, in in-order position, for
// which match returns true.
func (t *Tree[K, V]) RemoveBy(match func(K, V) bool) opt.Option[Entry[K, V]] {
	n := t.findBy(match)
	if n == nil {
		return opt.None[Entry[K, V]]()
	}
	e := Entry[K, V]{Key: n.key, Value: n.value}
	t.deleteNode(n)
	return opt.Some(e)
}

// SearchWithValuesBy returns the entry at key only if its stored value
// satisfies valueMatch, letting a caller guard against acting on a key
// whose value changed since it was last observed.
func (t *Tree[K, V]) SearchWithValuesBy(key K, valueMatch func(V) bool) opt.Option[Entry[K, V]] {
	n := t.find(key)
	if n == nil || !valueMatch(n.value) {
		return opt.None[Entry[K, V]]()
	}
	return opt.Some(Entry[K, V]{Key: n.key, Value: n.value})
}

// RemoveWithValuesBy removes and returns the entry at key only if its
// stored value satisfies valueMatch.
func (t *Tree[K, V]) RemoveWithValuesBy(key K, valueMatch func(V) bool) opt.Option[Entry[K, V]] {
	n := t.find(key)
	if n == nil || !valueMatch(n.value) {
		return opt.None[Entry[K, V]]()
	}
	e := Entry[K, V]{Key: n.key, Value: n.value}
	t.deleteNode(n)
	return opt.Some(e)
}

// Insert stores value at key. If key was already present, its previous
// value is returned and overwritten in place, with no change to the
// tree's structure; otherwise a new node is inserted and rebalanced, and
// None is returned.
func (t *Tree[K, V]) Insert(key K, value V) opt.Option[V] {
	var parent *node[K, V]
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			prev := cur.value
			cur.value = value
			return opt.Some(prev)
		case c < 0:
			parent = cur
			cur = cur.left
		default:
			parent = cur
			cur = cur.right
		}
	}

	n := &node[K, V]{key: key, value: value, color: red, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case t.cmp(key, parent.key) < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.len++

	t.insertFixup(n)
	debug.Log([]any{"%p", t}, "insert", "len=%d", t.len)

	return opt.None[V]()
}

// Remove removes and returns the value stored at key, if present.
func (t *Tree[K, V]) Remove(key K) opt.Option[V] {
	n := t.find(key)
	if n == nil {
		return opt.None[V]()
	}
	v := n.value
	t.deleteNode(n)
	return opt.Some(v)
}

// Iter returns an in-order iterator over the tree's entries.
func (t *Tree[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		push := func(n *node[K, V]) {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
		}
		push(t.root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			push(n.right)
		}
	}
}

// IterMut returns an in-order iterator over the tree's entries, handing
// out a mutable pointer to each value.
func (t *Tree[K, V]) IterMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		var stack []*node[K, V]
		push := func(n *node[K, V]) {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
		}
		push(t.root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, &n.value) {
				return
			}
			push(n.right)
		}
	}
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// searchNode descends by comparison, remembering the most recently
// visited node whose key is greater than key; if no exact match is found,
// that remembered node (the smallest key strictly greater than key) is
// returned instead.
func (t *Tree[K, V]) searchNode(key K) *node[K, V] {
	cur := t.root
	var candidate *node[K, V]
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			candidate = cur
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return candidate
}

func (t *Tree[K, V]) findBy(match func(K, V) bool) *node[K, V] {
	var found *node[K, V]
	var walk func(n *node[K, V]) bool
	walk = func(n *node[K, V]) bool {
		if n == nil {
			return false
		}
		if walk(n.left) {
			return true
		}
		if match(n.key, n.value) {
			found = n
			return true
		}
		return walk(n.right)
	}
	walk(t.root)
	return found
}

func minimum[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for z.parent != nil && z.parent.color == red {
		gp := z.parent.parent
		if gp == nil {
			break
		}

		if z.parent == gp.left {
			uncle := gp.right
			if colorOf(uncle) == red {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}

			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = black
			gp.color = red
			t.rotateRight(gp)
		} else {
			uncle := gp.left
			if colorOf(uncle) == red {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}

			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = black
			gp.color = red
			t.rotateLeft(gp)
		}
	}

	t.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v, rewiring u's parent's child pointer and v's parent link. It does not
// touch u's own children; callers that need those preserved copy them
// onto v first.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yColor := y.color
	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	t.len--
	debug.Log([]any{"%p", t}, "remove", "len=%d", t.len)

	if yColor == black {
		t.deleteFixup(x, xParent)
	}
}

// deleteFixup restores the red-black invariants after removing a Black
// node. x is the node that took the removed node's place (possibly nil);
// since nil carries no parent pointer, xParent tracks x's parent
// explicitly across the whole walk.
func (t *Tree[K, V]) deleteFixup(x, xParent *node[K, V]) {
	for x != t.root && colorOf(x) == black {
		if xParent == nil {
			break
		}

		if x == xParent.left {
			w := xParent.right
			if colorOf(w) == red {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
			}

			if colorOf(w.left) == black && colorOf(w.right) == black {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}

			if colorOf(w.right) == black {
				if w.left != nil {
					w.left.color = black
				}
				w.color = red
				t.rotateRight(w)
				w = xParent.right
			}

			w.color = xParent.color
			xParent.color = black
			if w.right != nil {
				w.right.color = black
			}
			t.rotateLeft(xParent)
			x = t.root
			xParent = nil
		} else {
			w := xParent.left
			if colorOf(w) == red {
				w.color = black
				xParent.color = red
				t.rotateRight(xParent)
				w = xParent.left
			}

			if colorOf(w.right) == black && colorOf(w.left) == black {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}

			if colorOf(w.left) == black {
				if w.right != nil {
					w.right.color = black
				}
				w.color = red
				t.rotateLeft(w)
				w = xParent.left
			}

			w.color = xParent.color
			xParent.color = black
			if w.left != nil {
				w.left.color = black
			}
			t.rotateRight(xParent)
			x = t.root
			xParent = nil
		}
	}

	if x != nil {
		x.color = black
	}
}
