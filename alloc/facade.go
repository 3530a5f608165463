package alloc

import "github.com/oskernel/sramalloc/internal/wordcodec"

// headerWords is the façade's per-allocation header prefix: one word for
// the stored size, one word of padding that keeps the payload aligned to
// an even number of words. Matches the original source's
// MALLOC_HEADER_SIZE = 2*sizeof(size_t).
const headerWords = 2
const headerBytes = headerWords * wordSize

// Facade wraps an Allocator with the per-allocation size header a real
// malloc/calloc/realloc/free surface needs: the engine itself never
// remembers how big an allocated block is, so every façade call that
// needs a size reads it back from the first word of the header prefix,
// headerBytes before the returned pointer.
type Facade struct {
	eng *Allocator
}

// NewFacade wraps eng.
func NewFacade(eng *Allocator) *Facade { return &Facade{eng: eng} }

func roundUpReq(req int64) int64 { return wordcodec.RoundUp(req, wordSize) }

func misaligned(p Ptr) bool { return int64(p)%wordSize != 0 }

// Malloc rounds req up to a whole number of words, reserves room for the
// header prefix, and returns a handle plus a slice over the payload. A
// nil slice (with p == NullPtr) is the only failure signal, matching the
// façade this wraps: there is no error channel.
func (f *Facade) Malloc(req int64) (Ptr, []byte) {
	if req <= 0 {
		return NullPtr, nil
	}
	size := roundUpReq(req) + headerBytes
	off, err := f.eng.malloc(size)
	if err != nil {
		return NullPtr, nil
	}
	f.eng.stats.MallocCalls++
	f.eng.writeWord(off, uint64(size))
	payloadOff := off + headerBytes
	return Ptr(payloadOff), f.eng.bytes()[payloadOff : payloadOff+req]
}

// Calloc is Malloc followed by zeroing every word of the block after the
// stored-size word — including the unused second header word, matching
// the source's zero loop, which runs from word index 1 (not 2) through
// the end of the block and then overwrites word 0 with the size.
func (f *Facade) Calloc(req int64) (Ptr, []byte) {
	if req <= 0 {
		return NullPtr, nil
	}
	size := roundUpReq(req) + headerBytes
	off, err := f.eng.malloc(size)
	if err != nil {
		return NullPtr, nil
	}
	f.eng.stats.MallocCalls++
	data := f.eng.bytes()
	for i := off + wordSize; i < off+size; i++ {
		data[i] = 0
	}
	f.eng.writeWord(off, uint64(size))
	payloadOff := off + headerBytes
	return Ptr(payloadOff), data[payloadOff : payloadOff+req]
}

// Free releases the block behind p. A null or misaligned p is a silent
// no-op, matching the façade's contract — there is nothing sensible to
// return, and the source treats this case identically.
func (f *Facade) Free(p Ptr) {
	if p == NullPtr || misaligned(p) {
		return
	}
	headerOff := int64(p) - headerBytes
	if headerOff < 0 {
		return
	}
	size := int64(f.eng.readWord(headerOff))
	_ = f.eng.free(size, headerOff)
}

// Realloc implements the façade's full resize contract: delegate to
// Malloc/Free for the null-pointer and zero-size edge cases, leave
// misaligned pointers untouched, try an in-place engine resize, and fall
// back to allocate-copy-free when the engine can't grow p where it sits.
func (f *Facade) Realloc(req int64, p Ptr) (Ptr, []byte) {
	if p == NullPtr {
		return f.Malloc(req)
	}
	if req <= 0 {
		f.Free(p)
		return NullPtr, nil
	}
	if misaligned(p) {
		return p, nil
	}

	headerOff := int64(p) - headerBytes
	oldSize := int64(f.eng.readWord(headerOff))
	newSize := roundUpReq(req) + headerBytes
	if newSize == oldSize {
		return p, f.eng.bytes()[int64(p) : int64(p)+req]
	}

	if _, ok := f.eng.resize(oldSize, newSize, headerOff); ok {
		f.eng.writeWord(headerOff, uint64(newSize))
		return p, f.eng.bytes()[int64(p) : int64(p)+req]
	}
	f.eng.stats.ResizeFallback++

	freshOff, err := f.eng.malloc(newSize)
	if err != nil {
		return NullPtr, nil
	}
	f.eng.writeWord(freshOff, uint64(newSize))
	freshPayload := freshOff + headerBytes

	copySize := oldSize
	if newSize < oldSize {
		copySize = newSize
	}
	copyLen := copySize - headerBytes
	data := f.eng.bytes()
	copy(data[freshPayload:freshPayload+copyLen], data[int64(p):int64(p)+copyLen])

	_ = f.eng.free(oldSize, headerOff)
	return Ptr(freshPayload), data[freshPayload : freshPayload+req]
}
