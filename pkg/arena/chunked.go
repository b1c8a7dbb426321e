package arena

import (
	"unsafe"

	"github.com/nightfallrs/nightfall-go/internal/debug"
	"github.com/nightfallrs/nightfall-go/pkg/res"
)

// chunkHeader is one link in a ChunkedArena's chain: a small, ordinarily
// allocated struct holding the chunk's backing region and bump cursor.
//
// next and region are plain Go pointer/slice fields rather than raw bytes,
// deliberately: a chunk's region is a make([]byte, n) allocation, which the
// runtime marks pointer-free, so any pointer stored inside that allocation
// itself (as opposed to in a normally-typed struct field pointing at it)
// would never be traced by the garbage collector. Keeping the chain links
// in chunkHeader's own fields is what keeps every chunk beyond the first
// reachable.
type chunkHeader struct {
	next   *chunkHeader
	region []byte
	base   unsafe.Pointer
	offset uintptr
}

// pageSize is the unit chunk growth rounds up to before doubling.
const pageSize = 4096

func newChunk(size int) *chunkHeader {
	region := make([]byte, size)
	hdr := &chunkHeader{region: region}
	if size > 0 {
		hdr.base = unsafe.Pointer(&region[0])
	}
	return hdr
}

func (h *chunkHeader) cap() uintptr { return uintptr(len(h.region)) }

func chunkGrowSize(prevSize, requested int) int {
	rounded := ((prevSize + pageSize - 1) / pageSize) * pageSize
	if rounded == 0 {
		rounded = pageSize
	}
	grown := rounded * 2
	if grown < requested {
		return requested
	}
	return grown
}

// ChunkedArena is a bump allocator that grows by chaining additional
// chunks onto the end, rather than failing, once the current chunk fills
// up.
//
// A ChunkedArena owns every byte it allocates; unlike PtrArena, it does
// not wrap caller-supplied memory.
type ChunkedArena struct {
	head *chunkHeader
	last *chunkHeader // the actual last link in the chain; only Alloc's growth step moves this
}

var _ Allocator = (*ChunkedArena)(nil)

// NewChunkedArena creates a ChunkedArena whose first chunk holds at least
// initialSize bytes.
func NewChunkedArena(initialSize int) *ChunkedArena {
	if initialSize <= 0 {
		initialSize = pageSize
	}
	hdr := newChunk(initialSize)
	return &ChunkedArena{head: hdr, last: hdr}
}

// Alloc allocates size bytes aligned to align. It walks the chain from
// head looking for a chunk with room — which after a Clear may be any
// chunk, not just the last one — and only grows the chain with a freshly
// allocated chunk if none has room. Growth never fails as long as the Go
// runtime can satisfy the underlying make([]byte, n); a request larger
// than the default growth size gets a chunk of size+align bytes.
func (c *ChunkedArena) Alloc(size, align int) res.Result[unsafe.Pointer] {
	for h := c.head; h != nil; h = h.next {
		newOffset, ptr, ok := bumpAlloc(h.base, h.cap(), h.offset, size, align)
		if ok {
			h.offset = newOffset
			debug.Log([]any{"%p", c}, "alloc", "%d+%d:%d -> %p", size, align, newOffset, ptr)
			return res.Ok(ptr)
		}
	}

	next := newChunk(chunkGrowSize(len(c.last.region), size+align))
	c.last.next = next
	c.last = next

	debug.Log([]any{"%p", c}, "grow", "%d bytes", len(next.region))

	newOffset, ptr, ok := bumpAlloc(next.base, next.cap(), next.offset, size, align)
	if !ok {
		return res.Err[unsafe.Pointer](ErrOutOfMemory)
	}
	next.offset = newOffset
	return res.Ok(ptr)
}

// Allocate implements [Allocator].
func (c *ChunkedArena) Allocate(size, align int) (unsafe.Pointer, error) {
	r := c.Alloc(size, align)
	if r.IsErr() {
		return nil, r.UnwrapErr()
	}
	return r.Unwrap(), nil
}

// Deallocate implements [Allocator]. It is a no-op, as on [PtrArena].
func (c *ChunkedArena) Deallocate(unsafe.Pointer, int, int) {}

// Clear resets every chunk's allocation cursor to zero, without releasing
// any of the chunks back to the Go allocator or dropping any of them from
// the chain. Allocation after Clear reuses the chain from head, per
// [ChunkedArena.Alloc]'s chain walk, before ever growing a new chunk. As
// with [PtrArena.Clear], every pointer previously returned by Alloc becomes
// invalid.
func (c *ChunkedArena) Clear() {
	for h := c.head; h != nil; h = h.next {
		h.offset = 0
	}
	debug.Log([]any{"%p", c}, "clear", "")
}

// Size returns the combined capacity, in bytes, of every chunk in the
// chain.
func (c *ChunkedArena) Size() int {
	total := 0
	for h := c.head; h != nil; h = h.next {
		total += len(h.region)
	}
	return total
}

// Allocated returns the combined number of bytes committed across every
// chunk in the chain.
func (c *ChunkedArena) Allocated() int {
	total := 0
	for h := c.head; h != nil; h = h.next {
		total += int(h.offset)
	}
	return total
}

// IsClear reports whether every chunk's cursor is currently zero.
func (c *ChunkedArena) IsClear() bool {
	for h := c.head; h != nil; h = h.next {
		if h.offset != 0 {
			return false
		}
	}
	return true
}

// Chunks returns the number of chunks currently in the chain.
func (c *ChunkedArena) Chunks() int {
	n := 0
	for h := c.head; h != nil; h = h.next {
		n++
	}
	return n
}
