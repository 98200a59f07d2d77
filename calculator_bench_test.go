package aoc2024

import (
	"math/rand/v2"
	"testing"

	"github.com/botirk38/aoc2024/options"
	"github.com/botirk38/aoc2024/types"
)

func benchRows(n int) []types.Row[int64] {
	rng := rand.New(rand.NewPCG(7, 11))
	rows := make([]types.Row[int64], n)
	for i := range rows {
		rows[i] = types.Row[int64]{rng.Int64N(100000), rng.Int64N(100000)}
	}
	return rows
}

func BenchmarkCompute(b *testing.B) {
	counters := map[string]options.Option[int64]{
		"frequency": options.WithFrequencyCounter[int64](),
		"scan":      options.WithScanCounter[int64](options.DefaultScanCacheSize),
	}

	rows := benchRows(1000)
	for name, opt := range counters {
		b.Run(name, func(b *testing.B) {
			calc, err := New(opt)
			if err != nil {
				b.Fatalf("Failed to create calculator: %v", err)
			}

			b.ResetTimer()
			for b.Loop() {
				if _, err := calc.Compute(rows); err != nil {
					b.Fatalf("Compute failed: %v", err)
				}
			}
		})
	}
}
