package rbtree_test

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	"github.com/nightfallrs/nightfall-go/pkg/rbtree"
)

func newSet(elems ...string) *rbtree.Set[string] {
	s := rbtree.NewSet[string]()
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

func collect(seq func(func(string) bool)) []string {
	var out []string
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestSetAlgebra(t *testing.T) {
	Convey("Set", t, func() {
		a := newSet("a", "b", "c", "d")
		b := newSet("d", "e", "f")

		Convey("difference contains only elements unique to the receiver", func() {
			So(collect(a.Difference(b)), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("intersection contains the shared elements", func() {
			So(collect(a.Intersection(b)), ShouldResemble, []string{"d"})
		})

		Convey("union contains every element exactly once", func() {
			So(collect(a.Union(b)), ShouldResemble, []string{"a", "b", "c", "d", "e", "f"})
		})

		Convey("symmetric difference contains elements in exactly one set", func() {
			So(collect(a.SymmetricDifference(b)), ShouldResemble, []string{"a", "b", "c", "e", "f"})
		})
	})
}

func TestSetAlgebraLaws(t *testing.T) {
	a := newSet("a", "b", "c", "d")
	b := newSet("d", "e", "f")

	union1 := collect(a.Union(b))
	union2 := collect(b.Union(a))
	slices.Sort(union1)
	slices.Sort(union2)
	assert.Equal(t, union1, union2, "union must be commutative as a set")

	inter := collect(a.Intersection(b))
	for _, k := range inter {
		assert.True(t, a.Contains(k))
	}

	diff := collect(a.Difference(b))
	for _, k := range diff {
		assert.False(t, b.Contains(k))
	}

	symdiff := collect(a.SymmetricDifference(b))
	var expected []string
	expected = append(expected, collect(a.Difference(b))...)
	expected = append(expected, collect(b.Difference(a))...)
	slices.Sort(symdiff)
	slices.Sort(expected)
	assert.Equal(t, expected, symdiff)
}

func TestSetInsertRemove(t *testing.T) {
	s := rbtree.NewSet[int]()

	assert.False(t, s.Insert(1))
	assert.True(t, s.Insert(1)) // already present
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.True(t, s.IsEmpty())
}
