package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctWorkersDivergeImmediately(t *testing.T) {
	a := New(42, 0)
	b := New(42, 1)

	var same int
	for i := 0; i < 64; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	assert.Less(t, same, 64, "jump-ahead streams should not be identical")
}

func TestIntNStaysInRange(t *testing.T) {
	s := New(7, 3)
	for i := 0; i < 10000; i++ {
		v := s.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func TestSameSeedSameWorkerIsDeterministic(t *testing.T) {
	a := New(123, 2)
	b := New(123, 2)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
