package alloc

// This file holds the primitives every ENGINE operation (malloc, free,
// resize) is built from: splicing a block out of the lists it belongs to,
// inserting a fresh one, and growing or shrinking a block already linked
// in without touching levels it doesn't occupy.

// insertNewBlock installs size bytes starting at off as a standalone free
// block, threading it into every level up to its own class through the
// walker's current predecessor slots.
func (a *Allocator) insertNewBlock(w *walker, off, size int64) {
	a.setBlockSize(off, size)
	cls := classOf(size)
	for i := 0; i <= cls; i++ {
		a.setBlockNext(off, i, a.slotValue(w.pred[i]))
		a.setSlot(w.pred[i], off)
	}
}

// allocateEntireBlock splices w.current out of every level it belongs to,
// handing the whole block to the caller with none of its bytes reused for
// a remainder.
func (a *Allocator) allocateEntireBlock(w *walker) {
	cls := classOf(a.blockSize(w.current))
	for i := 0; i <= cls; i++ {
		a.setSlot(w.pred[i], a.blockNext(w.current, i))
	}
}

// expandEntry grows an already-linked free block by amt bytes, threading
// it into any newly-qualifying higher levels without touching the levels
// it already occupied.
func (a *Allocator) expandEntry(w *walker, block, amt int64) {
	oldCls := classOf(a.blockSize(block))
	newSize := a.blockSize(block) + amt
	a.setBlockSize(block, newSize)
	newCls := classOf(newSize)
	for i := oldCls + 1; i <= newCls; i++ {
		a.setBlockNext(block, i, a.slotValue(w.pred[i]))
		a.setSlot(w.pred[i], block)
	}
}

// shrinkEntry shrinks an already-linked free block by amt bytes, splicing
// it out of any level it no longer qualifies for.
func (a *Allocator) shrinkEntry(w *walker, block, amt int64) {
	oldCls := classOf(a.blockSize(block))
	newSize := a.blockSize(block) - amt
	a.setBlockSize(block, newSize)
	newCls := classOf(newSize)
	for i := newCls + 1; i <= oldCls; i++ {
		a.setSlot(w.pred[i], a.blockNext(block, i))
	}
}

// insertAndCoalesceWithCurrent replaces w.current with a single block at
// off covering addSize bytes plus all of current's former extent,
// relinking every level current occupied and threading into any new,
// higher levels the merged size now qualifies for. w.current is updated
// to the new block's offset so a caller chaining more primitives off the
// same walker sees the merged block.
func (a *Allocator) insertAndCoalesceWithCurrent(w *walker, off, addSize int64) int64 {
	curSize := a.blockSize(w.current)
	curCls := classOf(curSize)
	total := addSize + curSize
	newCls := classOf(total)

	a.setBlockSize(off, total)
	for i := 0; i <= curCls; i++ {
		a.setBlockNext(off, i, a.blockNext(w.current, i))
		a.setSlot(w.pred[i], off)
	}
	for i := curCls + 1; i <= newCls; i++ {
		a.setBlockNext(off, i, a.slotValue(w.pred[i]))
		a.setSlot(w.pred[i], off)
	}

	w.current = off
	return off
}

// copyAndResize relocates a free block from its snapshotted old state to
// dest with a new size, relinking every level it occupied (old and new)
// through the walker's predecessor slots. src must be a snapshot taken
// before any bytes at dest were written, since dest and the old block's
// extent commonly overlap (splitting and in-place resizing both relocate
// a block within what used to be its own span).
func (a *Allocator) copyAndResize(w *walker, dest int64, src blockSnapshot, newSize int64) {
	a.setBlockSize(dest, newSize)
	oldCls := classOf(src.size)
	newCls := classOf(newSize)

	if newSize >= src.size {
		for i := 0; i <= oldCls; i++ {
			a.setBlockNext(dest, i, src.next[i])
			a.setSlot(w.pred[i], dest)
		}
		for i := oldCls + 1; i <= newCls; i++ {
			a.setBlockNext(dest, i, a.slotValue(w.pred[i]))
			a.setSlot(w.pred[i], dest)
		}
		return
	}

	for i := 0; i <= newCls; i++ {
		a.setBlockNext(dest, i, src.next[i])
		a.setSlot(w.pred[i], dest)
	}
	for i := newCls + 1; i <= oldCls; i++ {
		a.setSlot(w.pred[i], src.next[i])
	}
}
