package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oskernel/sramalloc/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a line-oriented malloc/free/realloc script against a fresh arena",
		Long: `Each line of the script is one of:
  malloc <size>
  free <index>
  realloc <size> <index>
Indices refer to the order allocations were returned in, starting at 0.
Unrecognized or failing lines are reported but do not stop the replay.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0])
		},
	}
}

func runReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	arena, err := alloc.NewMmappedArena(heapSize)
	if err != nil {
		return fmt.Errorf("allocate arena: %w", err)
	}
	defer arena.Close()

	eng := alloc.New(arena)
	fa := alloc.NewFacade(eng)
	var live []alloc.Ptr

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if need := map[string]int{"malloc": 2, "free": 2, "realloc": 3}[fields[0]]; len(fields) < need {
			printInfo("line %d: missing arguments for %s\n", lineNo, fields[0])
			continue
		}
		switch fields[0] {
		case "malloc":
			size, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				printInfo("line %d: bad size: %v\n", lineNo, err)
				continue
			}
			p, _ := fa.Malloc(size)
			if p == alloc.NullPtr {
				printInfo("line %d: malloc(%d) failed\n", lineNo, size)
				continue
			}
			live = append(live, p)
			printVerbose("line %d: malloc(%d) -> slot %d\n", lineNo, size, len(live)-1)
		case "free":
			idx, err := strconv.Atoi(fields[1])
			if err != nil || idx < 0 || idx >= len(live) {
				printInfo("line %d: bad index\n", lineNo)
				continue
			}
			fa.Free(live[idx])
			printVerbose("line %d: free(slot %d)\n", lineNo, idx)
		case "realloc":
			size, serr := strconv.ParseInt(fields[1], 10, 64)
			idx, ierr := strconv.Atoi(fields[2])
			if serr != nil || ierr != nil || idx < 0 || idx >= len(live) {
				printInfo("line %d: bad realloc args\n", lineNo)
				continue
			}
			np, _ := fa.Realloc(size, live[idx])
			if np == alloc.NullPtr && size > 0 {
				printInfo("line %d: realloc(%d, slot %d) failed\n", lineNo, size, idx)
				continue
			}
			live[idx] = np
			printVerbose("line %d: realloc(%d, slot %d)\n", lineNo, size, idx)
		default:
			printInfo("line %d: unknown op %q\n", lineNo, fields[0])
		}
	}
	return scanner.Err()
}
