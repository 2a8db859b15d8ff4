package deque

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	_, err := New[int](3)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestNewDefaultsWhenZero(t *testing.T) {
	d, err := New[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestPushPopLIFO(t *testing.T) {
	d, err := New[int](4)
	require.NoError(t, err)

	d.PushBottom(1)
	d.PushBottom(2)
	d.PushBottom(3)

	v, ok := d.PopBottom()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = d.PopBottom()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = d.PopBottom()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = d.PopBottom()
	assert.False(t, ok)
}

func TestPushStealFIFO(t *testing.T) {
	d, err := New[int](4)
	require.NoError(t, err)

	const n = 200
	for i := 0; i < n; i++ {
		d.PushBottom(i)
	}

	for i := 0; i < n; i++ {
		v, ok := d.Steal()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := d.Steal()
	assert.False(t, ok)
}

func TestResizeSurvivesAllItems(t *testing.T) {
	d, err := New[int](2)
	require.NoError(t, err)

	const n = 5000
	for i := 0; i < n; i++ {
		d.PushBottom(i)
	}
	assert.Equal(t, n, d.Len())

	got := make([]int, 0, n)
	for {
		v, ok := d.PopBottom()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Len(t, got, n)
	// PopBottom is LIFO so items come back in reverse.
	for i, v := range got {
		assert.Equal(t, n-1-i, v)
	}
}

func TestConcurrentPopStealExactlyOneWinner(t *testing.T) {
	const trials = 2000
	var popWins, stealWins, bothEmpty int64

	for trial := 0; trial < trials; trial++ {
		d, err := New[int](2)
		require.NoError(t, err)
		d.PushBottom(trial)

		var wg sync.WaitGroup
		var popOK, stealOK atomic.Bool
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, ok := d.PopBottom()
			popOK.Store(ok)
		}()
		go func() {
			defer wg.Done()
			_, ok := d.Steal()
			stealOK.Store(ok)
		}()
		wg.Wait()

		switch {
		case popOK.Load() && stealOK.Load():
			t.Fatalf("trial %d: both pop and steal succeeded", trial)
		case popOK.Load():
			popWins++
		case stealOK.Load():
			stealWins++
		default:
			bothEmpty++
		}
	}

	assert.Zero(t, bothEmpty, "at least one of pop/steal must win a singleton race")
	assert.Greater(t, popWins+stealWins, int64(0))
}

func TestConcurrentStealersExactlyOneWinnerPerItem(t *testing.T) {
	d, err := New[int](1024)
	require.NoError(t, err)

	const n = 1000
	const thieves = 8
	for i := 0; i < n; i++ {
		d.PushBottom(i)
	}

	var wg sync.WaitGroup
	results := make(chan int, n)
	wg.Add(thieves)
	for i := 0; i < thieves; i++ {
		go func() {
			defer wg.Done()
			for {
				v, ok := d.Steal()
				if !ok {
					if d.Len() <= 0 {
						return
					}
					continue
				}
				results <- v
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, n)
	for v := range results {
		assert.False(t, seen[v], "item %d stolen twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)
}

func TestPushIsSafeForConcurrentSubmitters(t *testing.T) {
	d, err := New[int](2)
	require.NoError(t, err)

	const producers = 16
	const perProducer = 200
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				d.PushBottom(base*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, d.Len())
}
