package partition_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/partition"
	"github.com/stretchr/testify/require"
)

func drainESS(it interface{ Next() (partition.Subset, bool) }) []partition.Subset {
	var out []partition.Subset
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

func allSubsetsInRange(mask uint64, elements []partition.Element, lo, hi partition.Element) map[uint64]partition.Element {
	out := make(map[uint64]partition.Element)
	it := partition.NewSubmasks(mask)
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		s := partition.NewSubset(m, elements)
		if s.Sum >= lo && s.Sum < hi {
			out[m] = s.Sum
		}
	}
	return out
}

// TestESS_IsRangeFilter pins spec property 6: ESS's output, as a set of
// masks, equals exactly the submasks whose sum falls in [lo, hi).
func TestESS_IsRangeFilter(t *testing.T) {
	elements := []partition.Element{1, 3, 5}
	const mask = uint64(0b111)

	got := drainESS(partition.NewESS(mask, elements, 3, 6))
	want := allSubsetsInRange(mask, elements, 3, 6)

	require.Len(t, got, len(want))
	for _, s := range got {
		sum, ok := want[s.Mask]
		require.True(t, ok, "mask %b not expected in range", s.Mask)
		require.Equal(t, sum, s.Sum)
	}

	sums := make([]int, len(got))
	for i, s := range got {
		sums[i] = int(s.Sum)
	}
	sort.Ints(sums)
	require.Equal(t, []int{3, 4, 5}, sums)
}

func TestESS_EmptyRangeYieldsNothing(t *testing.T) {
	elements := []partition.Element{1, 2, 4, 8}
	const mask = uint64(0b1111)

	got := drainESS(partition.NewESS(mask, elements, 100, 200))
	require.Empty(t, got)
}

func TestESS_FullRangeYieldsEverySubset(t *testing.T) {
	elements := []partition.Element{1, 2, 4}
	const mask = uint64(0b111)

	got := drainESS(partition.NewESS(mask, elements, 0, 100))
	require.Len(t, got, 8)
}

func TestESS_RestrictRangeNarrowsMidStream(t *testing.T) {
	elements := []partition.Element{1, 2, 3, 4, 5}
	const mask = uint64(0b11111)

	it := partition.NewESS(mask, elements, 0, 100)
	// Drain a handful, then tighten hi down to 6; every subsequent sum
	// must respect the new bound.
	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		require.True(t, ok)
	}
	it.RestrictRange(0, 6)
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		require.Less(t, int(s.Sum), 6)
	}
}

// TestBiasedESS_IsRangeFilter checks BiasedESS returns exactly the submasks
// whose sum falls in [lo, hi), and additionally yields them in
// nonincreasing sum order (spec 4.3's "biased" variant).
func TestBiasedESS_IsRangeFilter(t *testing.T) {
	elements := []partition.Element{1, 3, 5, 7}
	const mask = uint64(0b1111)

	got := drainESS(partition.NewBiasedESS(mask, elements, 4, 12))
	want := allSubsetsInRange(mask, elements, 4, 12)
	require.Len(t, got, len(want))

	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Sum, got[i].Sum)
	}
	for _, s := range got {
		sum, ok := want[s.Mask]
		require.True(t, ok)
		require.Equal(t, sum, s.Sum)
	}
}

func TestBiasedESS_RestrictRange(t *testing.T) {
	elements := []partition.Element{2, 4, 6, 8}
	const mask = uint64(0b1111)

	it := partition.NewBiasedESS(mask, elements, 0, 100)
	_, ok := it.Next()
	require.True(t, ok)
	it.RestrictRange(0, 5)
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		require.Less(t, int(s.Sum), 5)
	}
}
