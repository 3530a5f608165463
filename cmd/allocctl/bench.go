package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oskernel/sramalloc/alloc"
	"github.com/spf13/cobra"
)

var benchOps int

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 10000, "Number of alloc/free operations to run")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time a fixed-seed random malloc/free workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	arena, err := alloc.NewMmappedArena(heapSize)
	if err != nil {
		return fmt.Errorf("allocate arena: %w", err)
	}
	defer arena.Close()

	eng := alloc.New(arena)
	fa := alloc.NewFacade(eng)
	rng := rand.New(rand.NewSource(42))

	var live []alloc.Ptr
	start := time.Now()
	for i := 0; i < benchOps; i++ {
		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			size := int64(16 + rng.Intn(512))
			if p, _ := fa.Malloc(size); p != alloc.NullPtr {
				live = append(live, p)
			}
		default:
			idx := rng.Intn(len(live))
			fa.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}
	elapsed := time.Since(start)

	printInfo("Ran %d ops in %s (%.0f ops/sec)\n", benchOps, elapsed, float64(benchOps)/elapsed.Seconds())
	printVerbose("live allocations at end: %d\n", len(live))
	return nil
}
