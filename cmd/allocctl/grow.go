package main

import (
	"fmt"

	"github.com/oskernel/sramalloc/alloc"
	"github.com/spf13/cobra"
)

var growBy int

func init() {
	cmd := newGrowCmd()
	cmd.Flags().IntVar(&growBy, "by", 64*1024, "Bytes to grow the arena by once it fills up")
	rootCmd.AddCommand(cmd)
}

func newGrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grow",
		Short: "Fill a growable arena, extend it, and keep allocating",
		Long: `grow demonstrates the heap-growth seam: it backs the allocator with a
plain Go-heap arena (the only kind this package can grow, unlike the
fixed-size mmap/VirtualAlloc arenas the other subcommands use), allocates
until the arena is exhausted, folds a freshly grown region in with
Extend, and shows the following allocation succeeding against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
}

func runGrow() error {
	arena := alloc.NewArena(heapSize)
	eng := alloc.New(arena)
	fa := alloc.NewFacade(eng)

	var count int
	for {
		if p, _ := fa.Malloc(256); p != alloc.NullPtr {
			count++
			continue
		}
		break
	}
	printInfo("filled initial %d-byte arena with %d allocations\n", heapSize, count)

	if err := eng.Extend(int64(growBy)); err != nil {
		return fmt.Errorf("extend: %w", err)
	}
	printInfo("extended arena by %d bytes\n", growBy)

	var grown int
	for {
		if p, _ := fa.Malloc(256); p != alloc.NullPtr {
			grown++
			continue
		}
		break
	}
	printInfo("allocated %d more from the grown region\n", grown)

	snap := eng.Snapshot()
	printInfo("grow calls: %d, bytes live: %d\n", snap.GrowCalls, snap.BytesLive)
	return nil
}
