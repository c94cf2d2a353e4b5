package zeta

import (
	"strconv"
	"testing"
)

func BenchmarkEvaluateDirect(b *testing.B) {
	for _, terms := range []int{100, 1000, 10000} {
		b.Run(strconv.Itoa(terms), func(b *testing.B) {
			e, _ := New(DefaultLaurent(), nil, WithMaxTerms(terms))
			b.ResetTimer()
			for i := range b.N {
				// Distinct keys so every call misses the cache.
				e.ClearCache()
				_, _ = e.Evaluate(2 + float64(i%7))
			}
		})
	}
}
