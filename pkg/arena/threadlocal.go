package arena

import (
	"unsafe"

	"github.com/timandy/routine"

	"github.com/nightfallrs/nightfall-go/pkg/res"
)

// ThreadLocalArena hands each goroutine its own [ChunkedArena], so that
// scratch allocation never needs to serialize behind a shared bump cursor.
// It is the goroutine-local analogue of a thread-local arena: there is no
// OS thread identity in the Go memory model, so the partition is per
// goroutine instead, backed by [routine.ThreadLocal].
type ThreadLocalArena struct {
	local     routine.ThreadLocal[*ChunkedArena]
	chunkSize int
}

var _ Allocator = (*ThreadLocalArena)(nil)

// NewThreadLocalArena creates a ThreadLocalArena whose per-goroutine
// ChunkedArena starts with a first chunk of at least chunkSize bytes.
func NewThreadLocalArena(chunkSize int) *ThreadLocalArena {
	return &ThreadLocalArena{
		local:     routine.NewThreadLocal[*ChunkedArena](),
		chunkSize: chunkSize,
	}
}

// current returns the calling goroutine's ChunkedArena, creating one on
// first use.
func (t *ThreadLocalArena) current() *ChunkedArena {
	if a := t.local.Get(); a != nil {
		return a
	}

	a := NewChunkedArena(t.chunkSize)
	t.local.Set(a)
	return a
}

// Alloc allocates from the calling goroutine's private ChunkedArena.
func (t *ThreadLocalArena) Alloc(size, align int) res.Result[unsafe.Pointer] {
	return t.current().Alloc(size, align)
}

// Allocate implements [Allocator].
func (t *ThreadLocalArena) Allocate(size, align int) (unsafe.Pointer, error) {
	return t.current().Allocate(size, align)
}

// Deallocate implements [Allocator]. It is a no-op, as on [ChunkedArena].
func (t *ThreadLocalArena) Deallocate(unsafe.Pointer, int, int) {}

// Clear resets the calling goroutine's private arena only; other
// goroutines' arenas are unaffected.
func (t *ThreadLocalArena) Clear() {
	t.current().Clear()
}

// Size returns the capacity of the calling goroutine's private arena.
func (t *ThreadLocalArena) Size() int { return t.current().Size() }

// Allocated returns the bytes committed in the calling goroutine's private
// arena.
func (t *ThreadLocalArena) Allocated() int { return t.current().Allocated() }

// IsClear reports whether the calling goroutine's private arena is clear.
func (t *ThreadLocalArena) IsClear() bool { return t.current().IsClear() }

// Reset discards the calling goroutine's private arena entirely, so the
// next allocation starts a fresh chain from scratch rather than reusing
// the existing (possibly oversized) chunks.
func (t *ThreadLocalArena) Reset() {
	t.local.Remove()
}
