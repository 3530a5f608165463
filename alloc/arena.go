package alloc

// Arena owns the byte region the allocator carves blocks out of. It is
// the Go stand-in for the linker-provided SRAM region a real kernel would
// hand the allocator at boot.
type Arena struct {
	buf     []byte
	growFn  func(extra int) ([]byte, error)
	release func() error
}

// NewArena allocates a plain Go-heap-backed arena of the given size. It
// supports Grow via append, since offsets into it stay valid across a
// backing-array reallocation — the allocator never holds a raw pointer
// into buf, only offsets relative to its start.
func NewArena(size int) *Arena {
	a := &Arena{buf: make([]byte, size)}
	a.growFn = func(extra int) ([]byte, error) {
		a.buf = append(a.buf, make([]byte, extra)...)
		return a.buf, nil
	}
	return a
}

// Bytes returns the current backing slice. Callers must re-fetch it after
// any call that might grow the arena rather than caching it.
func (a *Arena) Bytes() []byte { return a.buf }

// Len returns the arena's current size in bytes.
func (a *Arena) Len() int64 { return int64(len(a.buf)) }

// Grow extends the arena by extra bytes, returning the offset at which
// the new region begins.
func (a *Arena) Grow(extra int64) (int64, error) {
	if a.growFn == nil {
		return 0, ErrNotGrowable
	}
	old := int64(len(a.buf))
	buf, err := a.growFn(int(extra))
	if err != nil {
		return 0, err
	}
	a.buf = buf
	return old, nil
}

// Close releases any syscall-backed memory behind the arena. Plain
// Go-heap arenas have nothing to release.
func (a *Arena) Close() error {
	if a.release != nil {
		return a.release()
	}
	return nil
}
