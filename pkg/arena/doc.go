// Package arena implements bump-pointer memory arenas and a fixed-slot
// object pool.
//
// # Overview
//
// [PtrArena] is a bump allocator over a single caller-supplied byte region:
// allocation advances a monotonic offset, and there is no per-object free.
// [ChunkedArena] chains bump-allocated chunks together, growing by
// allocating a new chunk with make whenever no existing chunk has room; it
// takes no upstream allocator.
// [ThreadLocalArena] hands each goroutine its own ChunkedArena, so that
// scratch allocation never needs a shared lock. [Pool] hands out and
// recycles equally-sized slots carved out of a region.
//
// # Clearing, not freeing
//
// None of the arena types free individual allocations ([Pool.Release] is the
// one per-slot release in this package). [PtrArena.Clear] and
// [ChunkedArena.Clear] reset the allocation cursor(s) to zero in O(1) (or
// O(chunks)); every pointer handed out before the call becomes invalid, and
// the library has no way to detect continued use of one. This is a
// deliberate, hazardous interface — see the doc comment on Clear.
//
// # Thread safety
//
// PtrArena, ChunkedArena, and Pool are not safe for concurrent use; callers
// that need concurrency should partition work across goroutines and give
// each one its own arena, or use ThreadLocalArena, which does exactly that
// under the hood. There is deliberately no arena type in this package that
// serializes a single shared bump cursor behind a mutex: sharing is meant
// to be achieved by partitioning, not by locking.
package arena
