package arena

import (
	"fmt"
	"unsafe"

	"github.com/nightfallrs/nightfall-go/internal/debug"
)

// Pool hands out and recycles fixed-size slots carved out of a single
// region sized to hold exactly capacity values of T.
//
// Unlike the arenas in this package, Pool supports per-object release:
// [Pool.Release] returns a slot to the free list for reuse by a later
// [Pool.Acquire]. Acquire never reuses a slot out of order with respect to
// first use: a frontier counter holds the index of the first slot that has
// never been handed out, kept separate from the stack of explicitly released
// indices, so that the two concerns (first use vs. reuse) cannot be
// confused with each other.
type Pool[T any] struct {
	base     unsafe.Pointer
	capacity int
	frontier int
	free     []int
	region   []byte // keeps base alive when owned
}

// NewPool creates a Pool over region, which must hold a whole number of
// T values. It panics if region's length is not a multiple of the size of
// T.
func NewPool[T any](region []byte) *Pool[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		panic("arena: cannot pool a zero-size type")
	}
	if len(region)%size != 0 {
		panic(fmt.Sprintf("arena: region length %d is not a multiple of element size %d", len(region), size))
	}

	p := &Pool[T]{capacity: len(region) / size, region: region}
	if len(region) > 0 {
		p.base = unsafe.Pointer(&region[0])
	}
	return p
}

// NewPoolFromArena carves a region of n*sizeof(T) bytes out of a, aligned
// to T, and returns a Pool over it.
func NewPoolFromArena[T any](a Allocator, n int) (*Pool[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))

	ptr, err := a.Allocate(size*n, align)
	if err != nil {
		return nil, err
	}

	return &Pool[T]{base: ptr, capacity: n}, nil
}

// Cap returns the total number of slots in the pool.
func (p *Pool[T]) Cap() int { return p.capacity }

// Len returns the number of slots currently handed out.
func (p *Pool[T]) Len() int { return p.frontier - len(p.free) }

// slot returns a pointer to the i'th slot in the pool's region.
func (p *Pool[T]) slot(i int) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	return (*T)(unsafe.Add(p.base, uintptr(i)*size))
}

// Acquire reserves a slot and returns a pointer to it. Slots released via
// [Pool.Release] are preferred over never-used slots, so that a pool under
// steady-state churn keeps its working set small and its region's tail
// cold. The returned value's contents are not reset; callers that need a
// zeroed slot must clear it themselves. Acquire fails with
// [ErrOutOfMemory] once every slot is in use and none has been released.
func (p *Pool[T]) Acquire() (*T, error) {
	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		debug.Log([]any{"%p", p}, "acquire", "slot %d (recycled)", i)
		return p.slot(i), nil
	}

	if p.frontier >= p.capacity {
		return nil, ErrOutOfMemory
	}

	i := p.frontier
	p.frontier++
	debug.Log([]any{"%p", p}, "acquire", "slot %d (frontier)", i)
	return p.slot(i), nil
}

// Release returns ptr's slot to the pool for reuse by a later Acquire.
//
// ptr must have been returned by this pool's Acquire and must not have
// been released already; Release has no way to detect either violation,
// and a double release will hand the same slot out twice, aliasing it
// between two callers that both believe they have exclusive use of it.
func (p *Pool[T]) Release(ptr *T) {
	offset := uintptr(unsafe.Pointer(ptr)) - uintptr(p.base)
	var zero T
	i := int(offset / unsafe.Sizeof(zero))

	debug.Assert(i >= 0 && i < p.frontier, "released pointer %p is not a slot of pool %p", ptr, p)

	p.free = append(p.free, i)
	debug.Log([]any{"%p", p}, "release", "slot %d", i)
}

// Reset discards every acquisition: the frontier returns to zero and the
// free list is emptied, so the next Acquire reuses the pool's first slot.
// As with the arena Clear methods, every pointer previously returned by
// Acquire becomes invalid.
func (p *Pool[T]) Reset() {
	p.frontier = 0
	p.free = p.free[:0]
	debug.Log([]any{"%p", p}, "reset", "")
}
