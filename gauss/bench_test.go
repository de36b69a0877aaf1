package gauss_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vcm/gauss"
)

var sinkResult gauss.Result

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{3, 10, 50} {
		for _, trace := range []bool{false, true} {
			b.Run(fmt.Sprintf("n=%d/trace=%t", n, trace), func(b *testing.B) {
				m := mustSystem(b, randomSystem(rand.New(rand.NewSource(int64(n))), n))
				opts := gauss.Options{TraceSteps: trace}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, err := gauss.Solve(m, opts)
					if err != nil {
						b.Fatal(err)
					}
					sinkResult = res
				}
			})
		}
	}
}

func BenchmarkDeterminant(b *testing.B) {
	m := mustSystem(b, randomSystem(rand.New(rand.NewSource(7)), 50))
	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = gauss.Determinant(m)
	}
	_ = sink
}
