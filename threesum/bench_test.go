package threesum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/zerosum/threesum"
)

// benchmarkFind runs Find on n pseudo-random values in [-n, n].
func benchmarkFind(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(seedDet))
	nums := make([]int, n)
	for i := range nums {
		nums[i] = rng.Intn(2*n+1) - n
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = threesum.Find(nums)
	}
}

// BenchmarkFind_Small benchmarks 100 values.
func BenchmarkFind_Small(b *testing.B) { benchmarkFind(b, 100) }

// BenchmarkFind_Medium benchmarks 1000 values.
func BenchmarkFind_Medium(b *testing.B) { benchmarkFind(b, 1000) }

// BenchmarkFind_AllZeros stresses the duplicate-skipping paths.
func BenchmarkFind_AllZeros(b *testing.B) {
	nums := make([]int, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = threesum.Find(nums)
	}
}
