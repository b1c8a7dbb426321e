// Package arena implements bump-pointer memory arenas and a fixed-slot
// object pool. See the package doc comment in doc.go for an overview.
package arena

import (
	"unsafe"

	"github.com/nightfallrs/nightfall-go/internal/debug"
	"github.com/nightfallrs/nightfall-go/pkg/res"
)

// Allocator is the collaborator contract a foreign container needs to live
// inside one of the arenas in this package: allocate a block of a given
// size and alignment (which may fail), and release a previously allocated
// block. Deallocate is a no-op on every allocator in this package; memory
// is only ever freed collectively, via Clear.
type Allocator interface {
	Allocate(size, align int) (unsafe.Pointer, error)
	Deallocate(ptr unsafe.Pointer, size, align int)
}

// PtrArena is a bump allocator over a single, caller-owned byte region.
//
// A PtrArena does not own the region it wraps: the caller is responsible
// for keeping the backing slice alive for as long as the arena, and any
// pointer it has handed out, are in use.
type PtrArena struct {
	region []byte // kept alive so base remains valid
	base   unsafe.Pointer
	cap    uintptr
	offset uintptr
}

var _ Allocator = (*PtrArena)(nil)

// FromRegion wraps region in a PtrArena. The arena does not take ownership
// of region; the slice must outlive the arena and every pointer allocated
// from it.
func FromRegion(region []byte) *PtrArena {
	a := &PtrArena{region: region, cap: uintptr(len(region))}
	if len(region) > 0 {
		a.base = unsafe.Pointer(&region[0])
	}
	return a
}

// Equal reports whether a and other wrap the same base address.
func (a *PtrArena) Equal(other *PtrArena) bool {
	return a.base == other.base
}

// Alloc advances the arena's offset to the next multiple of align and
// reserves size bytes starting there. It fails with [ErrOutOfMemory] if
// aligning the offset overflows, or if the aligned offset plus size would
// exceed the region's capacity. On failure, the arena is left unmodified.
func (a *PtrArena) Alloc(size, align int) res.Result[unsafe.Pointer] {
	newOffset, ptr, ok := bumpAlloc(a.base, a.cap, a.offset, size, align)
	if !ok {
		return res.Err[unsafe.Pointer](ErrOutOfMemory)
	}

	a.offset = newOffset

	debug.Log([]any{"%p", a}, "alloc", "%d+%d:%d -> %p", size, align, newOffset, ptr)

	return res.Ok(ptr)
}

// bumpAlloc is the bump-pointer arithmetic shared by every region-based
// allocator in this package: align offset up to align, reserve size bytes
// starting there, and fail without side effects if either step overflows
// or exceeds cap.
func bumpAlloc(base unsafe.Pointer, cap, offset uintptr, size, align int) (newOffset uintptr, ptr unsafe.Pointer, ok bool) {
	if align <= 0 {
		align = 1
	}

	mask := uintptr(align - 1)
	aligned := (offset + mask) &^ mask
	if aligned < offset {
		return 0, nil, false
	}

	newOffset = aligned + uintptr(size)
	if newOffset < aligned || newOffset > cap {
		return 0, nil, false
	}

	return newOffset, unsafe.Add(base, aligned), true
}

// Allocate implements [Allocator].
func (a *PtrArena) Allocate(size, align int) (unsafe.Pointer, error) {
	r := a.Alloc(size, align)
	if r.IsErr() {
		return nil, r.UnwrapErr()
	}
	return r.Unwrap(), nil
}

// Deallocate implements [Allocator]. It is a no-op: PtrArena has no
// per-object free, only collective reclamation via [PtrArena.Clear].
func (a *PtrArena) Deallocate(unsafe.Pointer, int, int) {}

// Clear resets the allocation offset to zero.
//
// This invalidates every pointer previously returned by Alloc. The arena
// has no way to detect continued use of such a pointer; the caller is
// solely responsible for ensuring none survive the call. Like the other
// Clear and Reset methods in this package, it is unsafe in the
// memory-safety sense.
func (a *PtrArena) Clear() {
	a.offset = 0
	debug.Log([]any{"%p", a}, "clear", "")
}

// Size returns the region's total capacity in bytes.
func (a *PtrArena) Size() int { return int(a.cap) }

// Allocated returns the number of bytes committed so far, including
// alignment padding.
func (a *PtrArena) Allocated() int { return int(a.offset) }

// IsClear reports whether the arena's offset is currently zero.
func (a *PtrArena) IsClear() bool { return a.offset == 0 }
