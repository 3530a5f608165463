package alloc

import "github.com/oskernel/sramalloc/internal/wordcodec"

// bytes returns the allocator's current backing slice, re-fetched from
// the arena on every call so a just-completed Extend is always visible.
func (a *Allocator) bytes() []byte { return a.arena.Bytes() }

func (a *Allocator) readWord(off int64) uint64     { return wordcodec.ReadU64(a.bytes(), off) }
func (a *Allocator) writeWord(off int64, v uint64) { wordcodec.PutU64(a.bytes(), off, v) }
