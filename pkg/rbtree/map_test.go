package rbtree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	"github.com/nightfallrs/nightfall-go/pkg/rbtree"
)

func TestMapInsertGetRoundTrip(t *testing.T) {
	Convey("Map", t, func() {
		Convey("insert then get round trips", func() {
			m := rbtree.NewMap[string, int]()

			prev := m.Insert("x", 1)
			So(prev.IsNone(), ShouldBeTrue)

			v := m.Get("x")
			So(v.IsSome(), ShouldBeTrue)
			So(v.Unwrap(), ShouldEqual, 1)
		})

		Convey("second insert returns the previous value", func() {
			m := rbtree.NewMap[string, int]()
			m.Insert("x", 1)

			prev := m.Insert("x", 2)
			So(prev.IsSome(), ShouldBeTrue)
			So(prev.Unwrap(), ShouldEqual, 1)

			So(m.Get("x").Unwrap(), ShouldEqual, 2)
		})

		Convey("GetKeyValue returns both halves", func() {
			m := rbtree.NewMap[string, int]()
			m.Insert("x", 1)

			e := m.GetKeyValue("x")
			So(e.IsSome(), ShouldBeTrue)
			So(e.Unwrap().Key, ShouldEqual, "x")
			So(e.Unwrap().Value, ShouldEqual, 1)
		})

		Convey("GetMut allows in-place mutation", func() {
			m := rbtree.NewMap[string, int]()
			m.Insert("x", 1)

			p, ok := m.GetMut("x")
			So(ok, ShouldBeTrue)
			*p = 42

			So(m.Get("x").Unwrap(), ShouldEqual, 42)
		})
	})
}

func TestMapKeysValues(t *testing.T) {
	m := rbtree.NewMap[int, string]()
	m.Insert(2, "b")
	m.Insert(1, "a")
	m.Insert(3, "c")

	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2, 3}, keys)

	var values []string
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)

	for v := range m.ValuesMut() {
		*v = *v + "!"
	}
	values = values[:0]
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"a!", "b!", "c!"}, values)
}

func TestMapRemoveClear(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	removed := m.Remove(1)
	assert.True(t, removed.IsSome())
	assert.False(t, m.Contains(1))
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
}
