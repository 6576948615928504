package generator

import "math/rand/v2"

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

type runtimeSource struct{}

func (runtimeSource) IntN(n int) int {
	return rand.IntN(n)
}

// RuntimeSource is backed by the automatically seeded math/rand/v2 generator.
var RuntimeSource Source = runtimeSource{}

// Sample draws min(len(items), k) distinct items uniformly at random. The
// input slice is not modified.
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)
	// partial Fisher-Yates: the first k slots end up holding the sample
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
