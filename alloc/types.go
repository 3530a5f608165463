package alloc

// wordSize is the allocator's alignment unit — the platform word, fixed at
// 8 bytes for the amd64/arm64 targets this module builds for. The original
// kernel source computed the same quantity as sizeof(size_t) on a 32-bit
// target (4 bytes); classOf in classifier.go accounts for the difference so the
// variable-length next[] tail never overruns a block sized for the smaller
// word.
const wordSize int64 = 8

// minBlockSize is the smallest block the skip list will ever hand back as
// free: one word for size, one word for a single forward pointer.
const minBlockSize = 2 * wordSize

// nullAddr is the sentinel stored in a next[] slot or a head pointer to
// mean "nothing here". Offset 0 is the arena's first byte and can
// legitimately hold a free block, so null cannot be 0 the way a C pointer
// would use nil; -1 is never a valid offset.
const nullAddr int64 = -1

// Ptr is an opaque handle returned by Facade, analogous to a C void*.
// Its value is an offset into the arena past Facade's header prefix; it
// has no meaning outside the Facade that produced it.
type Ptr int64

// NullPtr is Facade's sole failure signal, returned in place of a panic or
// an error value — matching the façade this package stands in for, which
// reports every failure as a null pointer.
const NullPtr Ptr = -1
