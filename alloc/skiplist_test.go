package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func freshWalkerAllocator(t *testing.T, size int) *Allocator {
	t.Helper()
	a := &Allocator{arena: NewArena(size)}
	for i := range a.heads {
		a.heads[i] = nullAddr
	}
	return a
}

func TestInsertNewBlock_ThreadsIntoEveryQualifyingLevel(t *testing.T) {
	// freshWalkerAllocator leaves the rest of the arena untracked (neither
	// free nor live), unlike New's whole-arena free block, so this checks
	// level threading directly rather than through requireInvariants'
	// whole-arena accounting.
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)

	a.insertNewBlock(w, 0, 64) // class 2: qualifies for levels 0,1,2
	require.Equal(t, 2, classOf(64))
	for lvl := 0; lvl <= 2; lvl++ {
		require.EqualValues(t, 0, a.heads[lvl], "level %d", lvl)
	}
	require.Equal(t, nullAddr, a.heads[3])

	runs := walkLevel0(a)
	require.Len(t, runs, 1)
	require.EqualValues(t, 0, runs[0].off)
	require.EqualValues(t, 64, runs[0].size)
}

func TestAllocateEntireBlock_SplicesOutOfEveryLevel(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 0, 64)

	w2 := a.newWalker(0)
	a.allocateEntireBlock(w2)
	for lvl := 0; lvl <= 2; lvl++ {
		require.Equal(t, nullAddr, a.heads[lvl], "level %d should be empty after the only block is taken", lvl)
	}
}

func TestExpandEntry_OnlyTouchesNewlyQualifyingLevels(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 0, 16) // class 0 only

	require.Equal(t, nullAddr, a.heads[1])

	w2 := a.newWalker(0)
	a.expandEntry(w2, 0, 48) // 16+48=64, class 2
	require.EqualValues(t, 64, a.blockSize(0))
	require.EqualValues(t, 0, a.heads[1])
	require.EqualValues(t, 0, a.heads[2])
	require.Equal(t, nullAddr, a.heads[3])
}

func TestShrinkEntry_SplicesOutOfLevelsNoLongerQualified(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 0, 64) // class 2
	require.EqualValues(t, 0, a.heads[2])

	w2 := a.newWalker(0)
	a.shrinkEntry(w2, 0, 48) // 64-48=16, class 0
	require.EqualValues(t, 16, a.blockSize(0))
	require.Equal(t, nullAddr, a.heads[1])
	require.Equal(t, nullAddr, a.heads[2])
	require.EqualValues(t, 0, a.heads[0])
}

func TestInsertAndCoalesceWithCurrent_MergesAndUpdatesWalker(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 100, 32) // a free block starting at 100

	w2 := a.newWalker(0)
	merged := a.insertAndCoalesceWithCurrent(w2, 50, 50) // 50 bytes immediately before the block at 100
	require.EqualValues(t, 50, merged)
	require.EqualValues(t, 50, w2.current)
	require.EqualValues(t, 82, a.blockSize(50)) // 50 + 32
	require.EqualValues(t, 50, a.heads[0])
}

func TestCopyAndResize_GrowPreservesOldLinksAndAddsNew(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 0, 16) // class 0

	snap := a.snapshotBlock(0)
	w2 := a.newWalker(0)
	a.copyAndResize(w2, 0, snap, 64) // grow in place to class 2
	require.EqualValues(t, 64, a.blockSize(0))
	require.EqualValues(t, 0, a.heads[1])
	require.EqualValues(t, 0, a.heads[2])
}

func TestCopyAndResize_ShrinkDropsHigherLevels(t *testing.T) {
	a := freshWalkerAllocator(t, 4096)
	w := a.newWalker(0)
	a.insertNewBlock(w, 0, 64) // class 2

	snap := a.snapshotBlock(0)
	w2 := a.newWalker(0)
	a.copyAndResize(w2, 0, snap, 16) // shrink to class 0
	require.EqualValues(t, 16, a.blockSize(0))
	require.Equal(t, nullAddr, a.heads[1])
	require.Equal(t, nullAddr, a.heads[2])
	require.EqualValues(t, 0, a.heads[0])
}
