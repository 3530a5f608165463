// Package alloc implements a freestanding dynamic memory allocator over a
// single contiguous byte region, modeled after the heap a small embedded
// kernel hands to its own malloc/free.
//
// # Overview
//
// The allocator tracks free memory with a four-level deterministic skip
// list: every free block lives in level 0, and wider blocks additionally
// thread into higher levels so a search for a large block can skip past
// runs of small ones. There are no boundary tags and no footers —
// allocated blocks carry no allocator metadata at all; the caller (the
// FACADE, normally) is responsible for remembering the size it asked for
// and handing it back unchanged on free.
//
// # Core Types
//
//   - Arena owns the backing []byte.
//   - Allocator is the skip-list engine. Its malloc/free/resize are
//     unexported — Extend and Snapshot are the only exported surface,
//     since every other caller is expected to go through Facade.
//   - Facade wraps an Allocator with a two-word header prefix, giving a
//     malloc/calloc/realloc/free surface that never needs the caller to
//     remember a size.
//
// # Size Classes
//
// Free blocks are classified by size into one of four levels:
//
//	level 0: every free block
//	level 1: size >= 16 bytes
//	level 2: size >= 64 bytes
//	level 3: size >= 1024 bytes
//
// A block's class also bounds how many forward pointers it can physically
// hold — see classOf in classifier.go.
//
// # Thread Safety
//
// None. Allocator and Facade assume the caller serializes every call,
// exactly like the kernel-side malloc this package stands in for. Holding
// a lock around each call is the caller's job, not this package's.
package alloc
