package pool

import "github.com/rs/zerolog"

// Config holds the scheduler tunables spec.md §9 OQ3 flags as
// platform-tuned magic numbers that belong in a configuration record
// rather than inline constants. Shape follows this pack's
// hayabusa-cloud-lfq/options.go fluent builder, adapted to the more
// common Go functional-options form since pool.New takes all
// options at one call site.
type Config struct {
	// DequeCapacity is the initial capacity of each worker's deque. Must
	// be a power of two; default 1024.
	DequeCapacity int

	// SpinBudget bounds how many inner-loop iterations a worker spends
	// preferring its own deque before it starts considering random
	// victims, reset on every wakeup. Default 100.
	SpinBudget int

	// SemaphoreSpinCount is the number of user-space CAS attempts a
	// worker's wakeup semaphore makes before blocking in the kernel.
	// Default 10000.
	SemaphoreSpinCount int

	// StealTries bounds how many random victims a worker probes per idle
	// pass before giving up and re-checking in-flight/stop state, matching
	// this pack's worksteal.go bounded-retry shape. Default 10.
	StealTries int

	// Logger receives structured lifecycle events (pool start/stop,
	// worker panics, kernel-semaphore backend selection, dropped
	// detached-task failures). The zero value (zerolog.Nop()) disables
	// all logging, matching the teacher's current silent behavior.
	Logger zerolog.Logger
}

func defaultConfig() Config {
	return Config{
		DequeCapacity:      1024,
		SpinBudget:         100,
		SemaphoreSpinCount: 10000,
		StealTries:         10,
		Logger:             zerolog.Nop(),
	}
}

// Option configures a ThreadPool at construction.
type Option func(*Config)

// WithDequeCapacity overrides the initial per-worker deque capacity.
func WithDequeCapacity(capacity int) Option {
	return func(c *Config) { c.DequeCapacity = capacity }
}

// WithSpinBudget overrides the inner-loop self-first spin budget.
func WithSpinBudget(n int) Option {
	return func(c *Config) { c.SpinBudget = n }
}

// WithSemaphoreSpinCount overrides the wakeup semaphore's user-space
// spin count.
func WithSemaphoreSpinCount(n int) Option {
	return func(c *Config) { c.SemaphoreSpinCount = n }
}

// WithStealTries overrides how many random victims a worker probes per
// pass before yielding.
func WithStealTries(n int) Option {
	return func(c *Config) { c.StealTries = n }
}

// WithLogger attaches a structured logger for pool lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}
