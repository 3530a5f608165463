package alloc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// L is the package-level structured logger. It defaults to discarding
// everything, matching cmd/hiveexplorer's logger package: importing this
// package should never produce output on its own.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// debugAlloc is a compile-time toggle for the high-volume per-operation
// trace below, analogous to hive/alloc's const debugAlloc. It stays false
// in committed code; flip it locally when chasing a specific bug.
const debugAlloc = false

// traceEnabled additionally gates the trace on an environment variable,
// the runtime analogue of hive/alloc's HIVE_LOG_ALLOC, for turning tracing
// on in a built binary without a recompile.
var traceEnabled = os.Getenv("ALLOC_LOG_DEBUG") != ""

func (a *Allocator) trace(format string, args ...any) {
	if !debugAlloc && !traceEnabled {
		return
	}
	L.Debug("alloc trace", slog.String("event", fmt.Sprintf(format, args...)))
}
