package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	tests := []struct {
		name    string
		n, k    int
		wantLen int
	}{
		{name: "subset", n: 10, k: 3, wantLen: 3},
		{name: "clamped to n", n: 2, k: 3, wantLen: 2},
		{name: "zero k", n: 5, k: 0, wantLen: 0},
		{name: "empty population", n: 0, k: 3, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(nil, tt.n, tt.k)
			assert.Len(t, got, tt.wantLen)

			seen := map[int]bool{}
			for _, i := range got {
				assert.GreaterOrEqual(t, i, 0)
				assert.Less(t, i, tt.n)
				assert.False(t, seen[i], "duplicate index %d", i)
				seen[i] = true
			}
		})
	}
}

func TestSample_Deterministic(t *testing.T) {
	// Always picking offset 0 keeps the identity order.
	first := func(int) int { return 0 }
	assert.Equal(t, []int{0, 1, 2}, Sample(first, 5, 3))

	last := func(n int) int { return n - 1 }
	assert.Equal(t, []int{4, 0, 1}, Sample(last, 5, 3))
}
