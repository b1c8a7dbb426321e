package arena

import "unsafe"

// New allocates space for a value of type T from a and copies value into
// it, returning a pointer to the copy.
func New[T any](a Allocator, value T) (*T, error) {
	var zero T
	ptr, err := a.Allocate(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}

	p := (*T)(ptr)
	*p = value
	return p, nil
}

// AllocSlice allocates space for n contiguous values of type T from a and
// returns it as a slice. The slice's elements are zero-valued.
//
// The returned slice must not be appended to past its original length: a
// grows its own bookkeeping, not the caller's, so append may silently
// reallocate into ordinary Go-managed memory instead of extending the
// arena's region.
func AllocSlice[T any](a Allocator, n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))

	ptr, err := a.Allocate(size*n, align)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*T)(ptr), n), nil
}
