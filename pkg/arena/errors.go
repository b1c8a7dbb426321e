package arena

import "errors"

// ErrOutOfMemory is returned when an allocation cannot be satisfied: a
// PtrArena has no room left in its region, a ChunkedArena cannot fit the
// request even in a freshly grown chunk, or a Pool has no free slot.
// ChunkedArena grows with make and does not turn a failed make into
// ErrOutOfMemory.
var ErrOutOfMemory = errors.New("arena: out of memory")
