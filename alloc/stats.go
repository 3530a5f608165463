package alloc

// Stats are allocator-internal counters, not part of the distilled
// algorithm: the original source has no visibility into its own
// fragmentation, but every allocator in this corpus (hive/alloc's
// allocatorStats) carries counters like these, and they're plain int64
// fields rather than atomics because nothing here is concurrent — the
// caller serializing access is what makes these safe to read at all.
type Stats struct {
	MallocCalls    int64
	FreeCalls      int64
	ResizeCalls    int64
	ResizeInPlace  int64
	ResizeFallback int64
	SplitCount     int64
	CoalesceBoth   int64
	CoalescePrev   int64
	CoalesceNext   int64
	GrowCalls      int64
	BytesLive      int64
	NoSpaceCount   int64
}

// Snapshot returns a copy of the allocator's current counters.
func (a *Allocator) Snapshot() Stats { return a.stats }
