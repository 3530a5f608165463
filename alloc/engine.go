package alloc

// Allocator is the skip-list engine: four head pointers into an Arena and
// the malloc/free/resize operations built from skiplist.go's primitives.
// It carries no per-allocated-block metadata of its own — every byte of
// bookkeeping lives inside free blocks, and an allocated block is just
// whatever bytes the caller asked for. Facade is what adds a header so
// free doesn't need the caller to pass a size explicitly.
type Allocator struct {
	arena *Arena
	heads [numLevels]int64
	stats Stats
}

// New creates an Allocator over arena and installs one free block
// spanning the whole thing, registered at every level — mirroring the
// global free-block initialization the original source has commented
// out. A freshly built heap is one maximal free block, full stop.
func New(arena *Arena) *Allocator {
	a := &Allocator{arena: arena}
	for i := range a.heads {
		a.heads[i] = nullAddr
	}
	if size := arena.Len(); size >= minBlockSize {
		a.setBlockSize(0, size)
		cls := classOf(size)
		for i := 0; i <= cls; i++ {
			a.setBlockNext(0, i, nullAddr)
			a.heads[i] = 0
		}
	}
	return a
}

// malloc finds the first free block at level class(size) with room for
// size bytes, splitting it if the remainder would itself be a usable
// free block and consuming it whole otherwise. It returns ErrNoSpace if
// the walk at that level runs off the end without finding room — it never
// escalates to trying a lower, denser level, matching the single-level
// search the skip list is built to make unnecessary.
func (a *Allocator) malloc(size int64) (int64, error) {
	lvl := classOf(size)
	w := a.newWalker(lvl)
	for w.current != nullAddr {
		if a.blockSize(w.current) >= size {
			// moveNext lets predecessors below lvl lag; resolve them exactly
			// before splicing at those levels.
			for i := 0; i < lvl; i++ {
				w.pred[i] = a.seekPredecessor(i, w.current)
			}
			off := a.allocateCurrent(w, size)
			a.trace("malloc size=%d level=%d -> off=%d", size, lvl, off)
			return off, nil
		}
		a.moveNext(w)
	}
	a.stats.NoSpaceCount++
	a.trace("malloc size=%d level=%d -> ErrNoSpace", size, lvl)
	return nullAddr, ErrNoSpace
}

func (a *Allocator) allocateCurrent(w *walker, size int64) int64 {
	curSize := a.blockSize(w.current)
	if curSize < size+minBlockSize {
		a.allocateEntireBlock(w)
		a.stats.BytesLive += curSize
		return w.current
	}
	snap := a.snapshotBlock(w.current)
	remainder := w.current + size
	a.copyAndResize(w, remainder, snap, curSize-size)
	a.stats.SplitCount++
	a.stats.BytesLive += size
	return w.current
}

// free returns size bytes starting at p to the free structure, coalescing
// with an immediately adjacent free block on either side if one exists.
// Precondition: size is exactly what a matching malloc returned the block
// for, and p was returned by that malloc and has not already been freed —
// violating either is undefined behavior this package does not attempt to
// detect beyond the defensive bounds check below.
func (a *Allocator) free(size, p int64) error {
	if p < 0 || p+size > a.arena.Len() {
		return ErrBadRef
	}
	a.stats.FreeCalls++
	a.stats.BytesLive -= size

	w := a.newWalker(0)
	for w.current != nullAddr && w.current <= p {
		a.moveNext(w)
	}

	prevOff := nullAddr
	hasPrev := !w.pred[0].head
	if hasPrev {
		prevOff = w.pred[0].block
	}

	touchesPrev := hasPrev && prevOff+a.blockSize(prevOff) == p
	touchesNext := w.current != nullAddr && p+size == w.current

	switch {
	case touchesPrev && touchesNext:
		a.stats.CoalesceBoth++
		a.coalesceBoth(w, prevOff, p, size)
		a.trace("free p=%d size=%d -> coalesce both (prev=%d, next=%d)", p, size, prevOff, w.current)
	case touchesPrev:
		a.stats.CoalescePrev++
		a.expandEntry(w, prevOff, size)
		a.trace("free p=%d size=%d -> coalesce prev=%d", p, size, prevOff)
	case touchesNext:
		a.stats.CoalesceNext++
		a.insertAndCoalesceWithCurrent(w, p, size)
		a.trace("free p=%d size=%d -> coalesce next=%d", p, size, w.current)
	default:
		a.insertNewBlock(w, p, size)
		a.trace("free p=%d size=%d -> standalone block", p, size)
	}
	return nil
}

// coalesceBoth merges prevOff, the size bytes being freed at p, and
// w.current into a single block rooted at prevOff, relinking every level
// prevOff or current occupied and any new, higher level the merged size
// now qualifies for.
func (a *Allocator) coalesceBoth(w *walker, prevOff, p, size int64) {
	prevSize := a.blockSize(prevOff)
	prevCls := classOf(prevSize)
	curSize := a.blockSize(w.current)
	curCls := classOf(curSize)
	total := prevSize + size + curSize
	newCls := classOf(total)

	a.setBlockSize(prevOff, total)
	// prevOff keeps its own address, so every level it already occupied
	// (0..prevCls) is still correctly pointed to by whatever preceded it —
	// only its own outgoing pointers change. Only levels beyond prevCls
	// need their incoming pointer redirected to prevOff, since prevOff is
	// newly present there.
	for i := 0; i <= curCls; i++ {
		a.setBlockNext(prevOff, i, a.blockNext(w.current, i))
	}
	for i := curCls + 1; i <= newCls; i++ {
		a.setBlockNext(prevOff, i, a.slotValue(w.pred[i]))
	}
	for i := prevCls + 1; i <= newCls; i++ {
		a.setSlot(w.pred[i], prevOff)
	}
}

// resize attempts to grow or shrink the block at p from oldSize to
// newSize without moving it, absorbing or shedding bytes from the free
// block immediately following it. ok is false only when the caller asked
// to grow and no adjacent free block (or one too small) exists; the
// caller is expected to fall back to allocate-copy-free, not treat false
// as an error.
func (a *Allocator) resize(oldSize, newSize, p int64) (int64, bool) {
	a.stats.ResizeCalls++
	growing := newSize > oldSize

	w := a.newWalker(0)
	for w.current != nullAddr && w.current <= p {
		a.moveNext(w)
	}

	if w.current != nullAddr && p+oldSize == w.current {
		if growing && a.blockSize(w.current) < newSize-oldSize {
			return nullAddr, false
		}
		a.stats.ResizeInPlace++
		return a.resizeAdjacent(w, p, oldSize, newSize)
	}
	if growing {
		return nullAddr, false
	}

	diff := oldSize - newSize
	if diff < minBlockSize {
		return p, true
	}
	a.stats.ResizeInPlace++
	a.stats.BytesLive -= diff
	a.insertNewBlock(w, p+newSize, diff)
	return p, true
}

// resizeAdjacent handles the case resize found a free block immediately
// following p: shrinking p always succeeds by growing that block to
// absorb the freed bytes; growing succeeds either by absorbing the whole
// following block (if what would remain is below minBlockSize) or by
// shrinking it from the front.
func (a *Allocator) resizeAdjacent(w *walker, p, oldSize, newSize int64) (int64, bool) {
	if oldSize > newSize {
		diff := oldSize - newSize
		snap := a.snapshotBlock(w.current)
		newBlock := p + newSize
		a.copyAndResize(w, newBlock, snap, snap.size+diff)
		w.current = newBlock
		a.stats.BytesLive -= diff
		return p, true
	}

	diff := newSize - oldSize
	curSize := a.blockSize(w.current)
	if curSize-diff < minBlockSize {
		a.allocateEntireBlock(w)
		a.stats.BytesLive += curSize
		return p, true
	}
	snap := a.snapshotBlock(w.current)
	newBlock := w.current + diff
	a.copyAndResize(w, newBlock, snap, snap.size-diff)
	a.stats.BytesLive += diff
	w.current = newBlock
	return p, true
}

// Extend folds a newly grown contiguous region — assumed to immediately
// follow the arena's previous end, since this package never supports
// multiple disjoint regions — into the free structure. It is the
// allocator-side half of the heap-growth contract: whatever grows the
// backing Arena calls this afterward so the new bytes become usable.
func (a *Allocator) Extend(extra int64) error {
	oldEnd, err := a.arena.Grow(extra)
	if err != nil {
		return err
	}
	a.stats.GrowCalls++
	a.trace("extend by=%d at=%d", extra, oldEnd)
	if err := a.free(extra, oldEnd); err != nil {
		return err
	}
	// free assumes it is always releasing bytes that were previously live
	// and debits BytesLive accordingly; the grown region was never
	// allocated, so undo that debit here.
	a.stats.BytesLive += extra
	return nil
}
