package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// freeRun describes one free block as observed by walking level 0.
type freeRun struct {
	off  int64
	size int64
}

// walkLevel0 returns every free block in ascending address order by
// following level 0's chain from its head.
func walkLevel0(a *Allocator) []freeRun {
	var runs []freeRun
	off := a.heads[0]
	for off != nullAddr {
		runs = append(runs, freeRun{off: off, size: a.blockSize(off)})
		off = a.blockNext(off, 0)
	}
	return runs
}

// requireInvariants is the oracle-walk invariant checker: after any
// sequence of malloc/free/resize calls, it re-derives everything that
// should be true of the free structure directly from the arena bytes,
// independent of whatever bookkeeping the allocator itself did.
func requireInvariants(t *testing.T, a *Allocator) {
	t.Helper()

	runs := walkLevel0(a)
	var prevEnd int64 = -1
	var freeBytes int64
	for _, r := range runs {
		require.GreaterOrEqual(t, r.off, int64(0), "free block offset must be within arena")
		require.LessOrEqual(t, r.off+r.size, a.arena.Len(), "free block must not run past arena end")
		require.GreaterOrEqual(t, r.size, minBlockSize, "free block below minimum size")
		if prevEnd >= 0 {
			require.Greater(t, r.off, prevEnd, "two free blocks are adjacent or overlapping — a coalesce was missed")
		}
		prevEnd = r.off + r.size
		freeBytes += r.size
	}

	// Every byte is either live (tracked by BytesLive) or sitting in a
	// free block level 0's chain reaches — nothing may have fallen out of
	// every list without also leaving BytesLive.
	require.Equal(t, a.arena.Len(), a.stats.BytesLive+freeBytes,
		"BytesLive + free bytes must account for the whole arena — a block has leaked out of the free structure")

	// Every level-i block must also appear in level 0, at the same
	// offset and size, and its class must actually support level i.
	level0Offsets := make(map[int64]int64, len(runs))
	for _, r := range runs {
		level0Offsets[r.off] = r.size
	}
	for lvl := 1; lvl < numLevels; lvl++ {
		off := a.heads[lvl]
		for off != nullAddr {
			size, ok := level0Offsets[off]
			require.True(t, ok, "level %d contains block at %d that is not in level 0", lvl, off)
			require.Equal(t, size, a.blockSize(off))
			require.GreaterOrEqual(t, classOf(size), lvl, "block at %d linked into level %d but classOf(size)=%d", off, lvl, classOf(size))
			off = a.blockNext(off, lvl)
		}
	}
}

// newTestAllocator builds an Allocator over a plain Go-heap arena of the
// given size, for tests that don't need a syscall-backed arena.
func newTestAllocator(t *testing.T, size int) *Allocator {
	t.Helper()
	return New(NewArena(size))
}
