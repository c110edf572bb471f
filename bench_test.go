package partition_test

import (
	"testing"

	"github.com/katalvlaran/partition"
)

// benchElements is a synthetic 24-element instance, large enough to
// exercise OrderedSubsets/ESS's Horowitz-Sahni split meaningfully without
// making the exact engines too slow for routine benchmarking.
var benchElements = []partition.Element{
	40318, 41141, 41141, 57598, 57598, 57598, 28799, 82283,
	82283, 82283, 20570, 20570, 20570, 20570, 95997, 95997,
	95997, 95997, 95997, 53758, 53758, 53758, 12345, 67890,
}

func BenchmarkOrderedSubsets_Up(b *testing.B) {
	mask := uint64(1)<<uint(len(benchElements)) - 1
	for i := 0; i < b.N; i++ {
		it := partition.NewOrderedSubsets(mask, benchElements, partition.Up)
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkESS_NarrowRange(b *testing.B) {
	mask := uint64(1)<<uint(len(benchElements)) - 1
	var total partition.Element
	for _, v := range benchElements {
		total += v
	}
	lo, hi := total/2-1000, total/2+1000
	for i := 0; i < b.N; i++ {
		it := partition.NewESS(mask, benchElements, lo, hi)
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkCKK(b *testing.B) {
	elements := benchElements[:16]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		partition.CKK(elements)
	}
}

func BenchmarkSNP(b *testing.B) {
	elements := benchElements[:16]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Partition(partition.MethodSNP, elements, 4)
	}
}
