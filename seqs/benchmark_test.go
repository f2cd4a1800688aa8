package seqs_test

import (
	"slices"
	"testing"

	"lazyseq/seqs"
)

// heavyCalc simulates a CPU intensive operation
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

func benchInput(size int) []int {
	input := make([]int, size)
	for i := range input {
		input[i] = i
	}
	return input
}

// BenchmarkUnified_MapFilter compares a lazy chain against a hand-written loop and a
// range-over-func pipeline.
func BenchmarkUnified_MapFilter(b *testing.B) {
	input := benchInput(1_000_000)

	workloads := []struct {
		name      string
		transform func(int) int
	}{
		{"Light", func(x int) int { return x * 2 }},
		{"Heavy", heavyCalc},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Loop", func(b *testing.B) {
				for b.Loop() {
					out := make([]int, 0, len(input))
					for _, v := range input {
						if w := wl.transform(v); w%3 == 0 {
							out = append(out, w)
						}
					}
				}
			})

			b.Run("Seq_Lazy", func(b *testing.B) {
				for b.Loop() {
					mapped := seqs.Map[int](seqs.FromSlice(input), wl.transform)
					_ = seqs.ToSlice(seqs.Filter(mapped, func(v int) bool { return v%3 == 0 }))
				}
			})

			b.Run("Seq_RangeFunc", func(b *testing.B) {
				for b.Loop() {
					for v := range seqs.All[int](seqs.FromSlice(input)) {
						_ = wl.transform(v)
					}
				}
			})
		})
	}
}

// BenchmarkShortCircuit shows that early termination does not depend on the source length.
func BenchmarkShortCircuit(b *testing.B) {
	for _, size := range []int{1_000, 1_000_000} {
		input := benchInput(size)
		chain := seqs.Map(seqs.Filter[int](seqs.FromSlice(input), func(v int) bool { return v%2 == 0 }), func(v int) int {
			return v + 1
		})

		b.Run("Contains/"+sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = seqs.Contains(chain, 21)
			}
		})
		b.Run("SliceContains/"+sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = slices.Contains(input, 20)
			}
		})
	}
}

func BenchmarkSetOps(b *testing.B) {
	input := benchInput(100_000)
	other := benchInput(50_000)

	b.Run("Uniq", func(b *testing.B) {
		for b.Loop() {
			_ = seqs.Count[int](seqs.Uniq[int](seqs.FromSlice(input)))
		}
	})
	b.Run("Intersection", func(b *testing.B) {
		for b.Loop() {
			_ = seqs.Count[int](seqs.Intersection[int](seqs.FromSlice(input), other))
		}
	})
	b.Run("Sort", func(b *testing.B) {
		for b.Loop() {
			_ = seqs.ToSlice[int](seqs.Sort(seqs.Reverse[int](seqs.FromSlice(input))))
		}
	})
}

func sizeName(n int) string {
	if n >= 1_000_000 {
		return "1M"
	}
	return "1K"
}
