package alloc

import "errors"

var (
	// ErrNoSpace is returned when no free block large enough for the
	// request exists at the level the search started from.
	ErrNoSpace = errors.New("alloc: no free block large enough")

	// ErrBadRef is returned by the defensive bounds check in free when an
	// offset falls outside the arena. It is not a substitute for
	// the validating scan this allocator deliberately does not do —
	// freeing a pointer the allocator never handed out is still undefined
	// behavior.
	ErrBadRef = errors.New("alloc: reference outside arena bounds")

	// ErrNotGrowable is returned by Extend when the backing arena does
	// not support growth (the mmap/VirtualAlloc-backed arenas used by the
	// CLI demo are fixed size once created).
	ErrNotGrowable = errors.New("alloc: arena does not support growth")
)
