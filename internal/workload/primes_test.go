package workload

import "testing"

func TestCountPrimesKnownRanges(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{0, 2, 0},
		{0, 10, 4},   // 2, 3, 5, 7
		{10, 20, 4},  // 11, 13, 17, 19
		{2, 3, 1},
		{1, 2, 0},
	}
	for _, c := range cases {
		if got := CountPrimes(c.start, c.end); got != c.want {
			t.Errorf("CountPrimes(%d, %d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestIsPrimeRejectsBelowTwo(t *testing.T) {
	for _, x := range []int{-5, 0, 1} {
		if isPrime(x) {
			t.Errorf("isPrime(%d) = true, want false", x)
		}
	}
}
