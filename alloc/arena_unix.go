//go:build linux || darwin || freebsd

package alloc

import "golang.org/x/sys/unix"

// NewMmappedArena backs an Arena with an anonymous mmap region, standing
// in for the linker-provided SRAM region on the host systems this module
// is developed and demoed on (cmd/allocctl).
//
// The mmap-backed arena is fixed size: Grow returns ErrNotGrowable, since
// resizing the mapping would move every existing offset's backing memory
// without the allocator's involvement.
func NewMmappedArena(size int) (*Arena, error) {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	a := &Arena{buf: buf}
	a.release = func() error { return unix.Munmap(buf) }
	return a, nil
}
