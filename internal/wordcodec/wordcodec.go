// Package wordcodec reads and writes the machine words the allocator lays
// out on top of a raw byte region: little-endian, fixed width, no padding
// inference.
package wordcodec

import "encoding/binary"

// Size is the width in bytes of a single machine word on the targets this
// module builds for.
const Size = 8

// PutU64 writes v as a little-endian word at off.
func PutU64(buf []byte, off int64, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:off+Size], v)
}

// ReadU64 reads a little-endian word at off.
func ReadU64(buf []byte, off int64) uint64 {
	return binary.LittleEndian.Uint64(buf[off : off+Size])
}
