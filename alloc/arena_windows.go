//go:build windows

package alloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// NewMmappedArena backs an Arena with a VirtualAlloc reservation, the
// Windows analogue of the Unix anonymous mmap arena used by cmd/allocctl.
//
// Like its Unix counterpart, the arena is fixed size once created.
func NewMmappedArena(size int) (*Arena, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	a := &Arena{buf: buf}
	a.release = func() error { return windows.VirtualFree(addr, 0, windows.MEM_RELEASE) }
	return a, nil
}
