// Package sem implements a lightweight counting semaphore with an
// integrated user-space spin, following Jeff Preshing's "lightweight
// semaphore" pattern: most release/acquire pairs never touch the kernel,
// because acquireMany collapses every pending release into a single
// wakeup instead of paying one kernel round trip per task.
package sem

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// DefaultSpinCount is the number of CAS attempts AcquireMany makes
// before falling back to the kernel. Spec.md §9 OQ3 calls this out as a
// platform-tuned magic number; it is a per-Semaphore field, not a
// package constant, so pool.Config can override it.
const DefaultSpinCount = 10000

// kernelSem is the blocking OS primitive backing the slow path. Two
// implementations exist, selected per-GOOS: sema_linux.go (eventfd) and
// sema_other.go (sync.Cond fallback).
type kernelSem interface {
	wait()
	signal(n int)
	name() string
}

// Semaphore is a counting semaphore. The zero value is not usable; build
// one with New. count is cache-line padded since each worker's
// semaphore is released/acquired from different goroutines far more
// often than it is read alongside ksem/spinCount, and sits next to its
// pool siblings in a slice.
type Semaphore struct {
	count atomic.Int64
	_     cpu.CacheLinePad

	ksem      kernelSem
	spinCount int
}

// New creates a semaphore with the given non-negative initial count,
// spinning up to spinCount times in AcquireMany before blocking. A
// spinCount <= 0 uses DefaultSpinCount.
func New(initial int64, spinCount int) *Semaphore {
	if initial < 0 {
		initial = 0
	}
	if spinCount <= 0 {
		spinCount = DefaultSpinCount
	}
	s := &Semaphore{ksem: newKernelSem(), spinCount: spinCount}
	s.count.Store(initial)
	return s
}

// Backend reports the name of the kernel-blocking primitive this
// semaphore fell back to ("eventfd" or "cond"), for startup logging.
func (s *Semaphore) Backend() string {
	return s.ksem.name()
}

// Release atomically adds n (n >= 1) to the count. If there were
// waiters blocked in the kernel (count was negative), wakes min(n,
// waiters) of them.
func (s *Semaphore) Release(n int64) {
	if n < 1 {
		return
	}
	prev := s.count.Add(n) - n
	if prev < 0 {
		toWake := -prev
		if toWake > n {
			toWake = n
		}
		s.ksem.signal(int(toWake))
	}
}

// AcquireMany blocks until at least one unit is available. On the spin
// and raced-positive paths it atomically claims every unit currently
// available (not just one); on the kernel-blocking path it consumes only
// the unit that woke it and leaves any surplus in the count for the next
// call. The pool wakes a worker once per batch of arrivals,
// and the worker then drains everything reachable through the deque, so
// there is no point metering acquisition one task at a time.
func (s *Semaphore) AcquireMany() {
	// Fast path: spin attempting to claim a positive count down to zero.
	for i := 0; i < s.spinCount; i++ {
		c := s.count.Load()
		if c > 0 && s.count.CompareAndSwap(c, 0) {
			return
		}
	}

	// Slow path: decrement by one. A prior value <= 0 means we must
	// block; a prior value > 0 means a concurrent Release raced us
	// positive between the spin above and here, so claim the remainder
	// without blocking.
	prev := s.count.Add(-1) + 1
	if prev <= 0 {
		s.ksem.wait()
		return
	}
	for {
		c := s.count.Load()
		if s.count.CompareAndSwap(c, 0) {
			return
		}
	}
}
