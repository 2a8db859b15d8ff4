package pool

import (
	"context"
	"sync"
)

// Future is the submitter-side handle for a task's eventual result. It
// is the external collaborator spec.md §1/§9 names as "the future/promise
// plumbing" — here realized as a single-write, single-read channel with
// a failure-or-value payload, per spec.md's Result Publication note.
type Future[R any] struct {
	done  chan struct{}
	once  sync.Once
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) complete(value R, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Result blocks until the task completes and returns its value or its
// captured failure.
func (f *Future[R]) Result() (R, error) {
	<-f.done
	return f.value, f.err
}

// Wait blocks until the task completes or ctx is done, whichever comes
// first.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Done reports whether the future has already completed, without
// blocking.
func (f *Future[R]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
