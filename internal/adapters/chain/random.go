package chain

import "math/rand/v2"

// IntN returns a value in [0, n). Parsers that pick among several results
// take one so tests can make the choice deterministic.
type IntN func(n int) int

// RandomIntN is backed by the global math/rand/v2 source and is safe for
// concurrent use.
var RandomIntN IntN = rand.IntN

// OrDefault returns f, or RandomIntN when f is nil.
func (f IntN) OrDefault() IntN {
	if f == nil {
		return RandomIntN
	}
	return f
}

// Sample returns k distinct indices drawn from [0, n), in draw order. k is
// clamped to n.
func Sample(intn IntN, n, k int) []int {
	intn = intn.OrDefault()
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
