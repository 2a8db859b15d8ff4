// Package pool implements a fixed-size work-stealing thread pool: N
// worker goroutines, each paired with a semaphore and a work-stealing
// deque, draining their own queue preferentially and stealing from
// random peers when idle.
//
// Grounded on this pack's core/worksteal.go (self-first pop, spin-steal
// N random victims, yield-and-retry, give-up), generalized from a
// one-shot per-file task list into a persistent pool with semaphore-
// gated worker wakeup.
package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rutvijjoshi26/wstpool/internal/deque"
	"github.com/rutvijjoshi26/wstpool/internal/rng"
	"github.com/rutvijjoshi26/wstpool/internal/sem"
	"github.com/rutvijjoshi26/wstpool/internal/task"
)

// ErrClosed is returned by Submit/SubmitDetach once Close has been
// called.
var ErrClosed = errors.New("pool: closed")

// job is the type-erased unit stored in each worker's deque: a closure
// that invokes the user's function and publishes its result to the
// matching Future, already bound via closure capture.
type job func()

type workerSlot struct {
	id  int
	dq  *deque.Deque[job]
	sem *sem.Semaphore
	rng *rng.Stream
}

// ThreadPool owns N worker goroutines and their per-worker deque/
// semaphore pairs, a global in-flight counter, and an atomic round-robin
// submission cursor.
type ThreadPool struct {
	cfg     Config
	workers []*workerSlot

	inFlight    atomic.Int64
	submitIndex atomic.Uint64

	stop   atomic.Bool
	wg     sync.WaitGroup
	closed atomic.Bool
	once   sync.Once
}

// New constructs a pool with n worker goroutines, n >= 1. Workers start
// immediately with zero in-flight work.
func New(n int, opts ...Option) (*ThreadPool, error) {
	if n < 1 {
		return nil, fmt.Errorf("pool: n must be >= 1, got %d", n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &ThreadPool{cfg: cfg, workers: make([]*workerSlot, n)}

	for i := 0; i < n; i++ {
		dq, err := deque.New[job](cfg.DequeCapacity)
		if err != nil {
			return nil, fmt.Errorf("pool: worker %d: %w", i, err)
		}
		p.workers[i] = &workerSlot{
			id:  i,
			dq:  dq,
			sem: sem.New(0, cfg.SemaphoreSpinCount),
			rng: rng.New(seedFromTime(), i),
		}
	}

	cfg.Logger.Info().
		Int("workers", n).
		Str("semaphore_backend", p.workers[0].sem.Backend()).
		Msg("pool starting")

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.workerLoop(p.workers[i])
	}

	return p, nil
}

// Submit enqueues fn onto the pool and returns a Future for its result.
// fn's failure (a non-nil error, or a recovered panic) is captured and
// delivered through the Future rather than killing the worker.
func Submit[R any](p *ThreadPool, fn func() (R, error)) (*Future[R], error) {
	future := newFuture[R]()
	if p.closed.Load() {
		return nil, ErrClosed
	}
	p.execute(func() {
		v, err := task.Invoke(fn)
		if task.IsPanic(err) {
			p.cfg.Logger.Warn().Err(err).Msg("worker recovered a task panic")
		}
		future.complete(v, err)
	})
	return future, nil
}

// SubmitDetach enqueues fn for its side effects only; there is no handle
// and no way to observe its result. A failure (error or panic) is
// dropped, per spec.md §7/§9 OQ2 — but logged at debug level if the pool
// was constructed WithLogger.
func SubmitDetach(p *ThreadPool, fn func() error) error {
	if p.closed.Load() {
		return ErrClosed
	}
	p.execute(func() {
		_, err := task.Invoke(func() (struct{}, error) {
			return struct{}{}, fn()
		})
		if err != nil {
			p.cfg.Logger.Debug().Err(err).Msg("detached task failed, result dropped")
		}
	})
	return nil
}

// execute is the shared submission path described in spec.md §4.3:
// round-robin onto a worker, bump in-flight, push, release.
func (p *ThreadPool) execute(run job) {
	i := p.submitIndex.Add(1) - 1
	w := p.workers[i%uint64(len(p.workers))]

	p.inFlight.Add(1)
	w.dq.PushBottom(run)
	w.sem.Release(1)
}

// Close blocks until every in-flight task completes and every worker has
// joined. Work submitted before Close is still executed to completion,
// since workers only observe the stop flag once the inner loop notices
// in-flight has drained to zero.
func (p *ThreadPool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		p.stop.Store(true)
		for _, w := range p.workers {
			w.sem.Release(1)
		}
		p.wg.Wait()
		p.cfg.Logger.Info().Msg("pool closed")
	})
}

func (p *ThreadPool) workerLoop(w *workerSlot) {
	defer p.wg.Done()

	n := len(p.workers)
	for {
		w.sem.AcquireMany()

		spinBudget := p.cfg.SpinBudget
		for p.inFlight.Load() > 0 {
			var (
				j  job
				ok bool
			)
			if spinBudget > 0 || w.dq.Len() > 0 {
				if spinBudget > 0 {
					spinBudget--
				}
				j, ok = w.dq.Steal()
			} else {
				// Probe up to StealTries random peers before giving up on
				// this pass; a single pick too often lands on an empty
				// deque when most of the pool has already drained.
				for try := 0; try < p.cfg.StealTries && !ok; try++ {
					victim := w.rng.IntN(n)
					if victim == w.id {
						continue
					}
					j, ok = p.workers[victim].dq.Steal()
				}
			}

			if ok {
				p.inFlight.Add(-1)
				j()
			}

			if p.inFlight.Load() == 0 {
				break
			}
		}

		if p.stop.Load() {
			return
		}
	}
}
