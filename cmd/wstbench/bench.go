package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rutvijjoshi26/wstpool/internal/workload"
	"github.com/rutvijjoshi26/wstpool/pool"
)

// chunkRanges splits [0, rangeEnd) into chunkSize-wide [start, end)
// partitions.
func chunkRanges(rangeEnd, chunkSize int) [][2]int {
	if chunkSize < 1 {
		chunkSize = 1
	}
	var ranges [][2]int
	for s := 0; s < rangeEnd; s += chunkSize {
		e := s + chunkSize
		if e > rangeEnd {
			e = rangeEnd
		}
		ranges = append(ranges, [2]int{s, e})
	}
	return ranges
}

// countPrimesWithPool submits one CountPrimes task per chunk to a
// pool.ThreadPool and sums the partial counts from each Future.
func countPrimesWithPool(rangeEnd, chunkSize, workers int) (int, error) {
	p, err := pool.New(workers)
	if err != nil {
		return 0, fmt.Errorf("create pool: %w", err)
	}
	defer p.Close()

	ranges := chunkRanges(rangeEnd, chunkSize)
	futures := make([]*pool.Future[int], len(ranges))
	for i, r := range ranges {
		s, e := r[0], r[1]
		f, err := pool.Submit(p, func() (int, error) {
			return workload.CountPrimes(s, e), nil
		})
		if err != nil {
			return 0, fmt.Errorf("submit chunk %d: %w", i, err)
		}
		futures[i] = f
	}

	total := 0
	for i, f := range futures {
		v, err := f.Result()
		if err != nil {
			return 0, fmt.Errorf("chunk %d: %w", i, err)
		}
		total += v
	}
	return total, nil
}

// countPrimesWithBSP partitions chunks contiguously across `workers`
// goroutines and sums their results with an errgroup — a bulk-
// synchronous-parallel baseline with no stealing, for comparison
// against the pool's load-balancing behavior.
func countPrimesWithBSP(rangeEnd, chunkSize, workers int) (int, error) {
	ranges := chunkRanges(rangeEnd, chunkSize)
	if len(ranges) == 0 {
		return 0, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(ranges) {
		workers = len(ranges)
	}

	per := (len(ranges) + workers - 1) / workers
	partials := make([]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		s := w * per
		e := s + per
		if e > len(ranges) {
			e = len(ranges)
		}
		if s >= e {
			continue
		}
		g.Go(func() error {
			sum := 0
			for _, r := range ranges[s:e] {
				sum += workload.CountPrimes(r[0], r[1])
			}
			partials[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, v := range partials {
		total += v
	}
	return total, nil
}

// countPrimesSequential runs every chunk on the calling goroutine, the
// baseline both other strategies are measured against.
func countPrimesSequential(rangeEnd, chunkSize int) int {
	total := 0
	for _, r := range chunkRanges(rangeEnd, chunkSize) {
		total += workload.CountPrimes(r[0], r[1])
	}
	return total
}
