// Command wstbench is a benchmark/demo CLI for
// github.com/rutvijjoshi26/wstpool/pool: it counts primes across a
// range of integers, partitioned into chunks and dispatched through
// one of three strategies (-impl pool|bsp|seq), to exercise the
// work-stealing thread pool with a realistic, variable-cost CPU-bound
// workload. The workload itself (internal/workload) is synthetic —
// chosen to exercise the scheduler without reproducing this pack's
// source compressor.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	impl := flag.String("impl", "pool", "implementation: pool, bsp, or seq")
	workers := flag.Int("workers", 4, "worker count for pool/bsp implementations")
	rangeEnd := flag.Int("range", 2_000_000, "count primes in [0, range)")
	chunkSize := flag.Int("chunk", 20_000, "integers per task/partition")
	flag.Parse()

	start := time.Now()

	var (
		count int
		err   error
	)
	switch *impl {
	case "pool":
		count, err = countPrimesWithPool(*rangeEnd, *chunkSize, *workers)
	case "bsp":
		count, err = countPrimesWithBSP(*rangeEnd, *chunkSize, *workers)
	case "seq":
		count = countPrimesSequential(*rangeEnd, *chunkSize)
	default:
		err = fmt.Errorf("unknown impl %q", *impl)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "wstbench:", err)
		os.Exit(1)
	}

	fmt.Printf("impl=%s range=[0,%d) chunk=%d workers=%d primes=%d elapsed=%s\n",
		*impl, *rangeEnd, *chunkSize, *workers, count, time.Since(start))
}
