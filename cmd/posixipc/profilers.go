package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
)

// startCPUProfile starts writing a CPU profile to the file at path, which is
// mostly of interest for the busy-waiting commands. The returned function
// stops the profiler and closes the file, and must be called before exit.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			slog.Warn("Failed to close cpu profile.",
				"file", path,
				"err", err,
			)
		}
	}, nil
}
