package alloc

// A free block's on-arena layout is a size word followed by a next[]
// tail whose length is exactly classOf(size)+1 words — never the full
// numLevels, and never fewer than the block's class requires. Reading or
// writing next[i] for i beyond a block's class reads or corrupts memory
// that belongs to the payload of whatever sits after it. The helpers here
// only reject a level outside [0, numLevels); they do not check a level
// against the block's own class, so staying within classOf(size) is up to
// each caller.

func (a *Allocator) blockSize(off int64) int64 {
	size := int64(a.readWord(off))
	if size < minBlockSize {
		panic("alloc: corrupted block header: size below minimum")
	}
	return size
}

func (a *Allocator) setBlockSize(off int64, size int64) {
	a.writeWord(off, uint64(size))
}

func (a *Allocator) blockNext(off int64, level int) int64 {
	if level < 0 || level >= numLevels {
		panic("alloc: next[] index out of range for block class")
	}
	return int64(a.readWord(off + (1+int64(level))*wordSize))
}

func (a *Allocator) setBlockNext(off int64, level int, target int64) {
	if level < 0 || level >= numLevels {
		panic("alloc: next[] index out of range for block class")
	}
	a.writeWord(off+(1+int64(level))*wordSize, uint64(target))
}

// blockSnapshot captures a free block's size and live next[] slots
// before a relocation overwrites them. copy_and_resize-style relinking
// must read the old block before writing the new one, since the two can
// overlap when a block is being split or resized in place.
type blockSnapshot struct {
	size int64
	next [numLevels]int64
}

func (a *Allocator) snapshotBlock(off int64) blockSnapshot {
	size := a.blockSize(off)
	snap := blockSnapshot{size: size}
	cls := classOf(size)
	for i := 0; i <= cls; i++ {
		snap.next[i] = a.blockNext(off, i)
	}
	return snap
}
