package main

import (
	"encoding/json"
	"fmt"

	"github.com/oskernel/sramalloc/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Allocate and free a synthetic workload, then report counters",
		Long: `stats runs a small fixed workload (a mix of mallocs and frees)
against a fresh arena and prints the resulting allocator
counters: split/coalesce counts, live bytes, and fallback reallocs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	arena, err := alloc.NewMmappedArena(heapSize)
	if err != nil {
		return fmt.Errorf("allocate arena: %w", err)
	}
	defer arena.Close()

	eng := alloc.New(arena)
	fa := alloc.NewFacade(eng)

	var live []alloc.Ptr
	for i := 0; i < 200; i++ {
		size := int64(32 + (i%17)*64)
		p, buf := fa.Malloc(size)
		if p == alloc.NullPtr {
			break
		}
		_ = buf
		live = append(live, p)
		if i%5 == 0 && len(live) > 1 {
			fa.Free(live[0])
			live = live[1:]
		}
	}
	for _, p := range live {
		fa.Free(p)
	}

	snap := eng.Snapshot()
	if jsonOut {
		enc := json.NewEncoder(cmdOut())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	printInfo("Allocator Statistics\n")
	printInfo("  malloc calls:      %d\n", snap.MallocCalls)
	printInfo("  free calls:        %d\n", snap.FreeCalls)
	printInfo("  resize calls:      %d (in-place %d, fallback %d)\n", snap.ResizeCalls, snap.ResizeInPlace, snap.ResizeFallback)
	printInfo("  splits:            %d\n", snap.SplitCount)
	printInfo("  coalesce (both):   %d\n", snap.CoalesceBoth)
	printInfo("  coalesce (prev):   %d\n", snap.CoalescePrev)
	printInfo("  coalesce (next):   %d\n", snap.CoalesceNext)
	printInfo("  no-space events:   %d\n", snap.NoSpaceCount)
	printInfo("  bytes live:        %d\n", snap.BytesLive)
	return nil
}
