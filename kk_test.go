package partition_test

import (
	"testing"

	"github.com/katalvlaran/partition"
	"github.com/stretchr/testify/require"
)

func TestKKTwoWay_Simple(t *testing.T) {
	elements := []partition.Element{8, 7, 6, 5, 4}
	p := partition.KKTwoWay(elements)
	require.Equal(t, p.Left.Sum-p.Right.Sum, p.Score)

	var total partition.Element
	for _, v := range elements {
		total += v
	}
	require.Equal(t, total, p.Left.Sum+p.Right.Sum)
	require.Equal(t, uint64(0), p.Left.Mask&p.Right.Mask)
}

func TestKKTwoWay_SingleElement(t *testing.T) {
	p := partition.KKTwoWay([]partition.Element{42})
	require.Equal(t, partition.Element(42), p.Left.Sum)
	require.Equal(t, partition.Element(0), p.Right.Sum)
	require.Equal(t, partition.Element(42), p.Score)
}

// TestNKK_TwoWayMatchesKKTwoWay pins spec 9's pinned contract: n_kk(e,2)
// and the plain two-way KKTwoWay must agree on score (both use the same
// Diff-merge heuristic, just generalized machinery for n=2).
func TestNKK_TwoWayMatchesKKTwoWay(t *testing.T) {
	elements := []partition.Element{91, 34, 22, 17, 5, 77, 63, 12}

	twoWay := partition.KKTwoWay(elements)
	nway := partition.NKK(elements, 2)

	require.Equal(t, twoWay.Score, nway.Score())
}

func TestNKK_PartitionsSortedDescending(t *testing.T) {
	elements := []partition.Element{9, 1, 5, 3, 7, 2}
	p := partition.NKK(elements, 3)

	require.Len(t, p.Partitions, 3)
	for i := 1; i < len(p.Partitions); i++ {
		require.GreaterOrEqual(t, p.Partitions[i-1].Sum, p.Partitions[i].Sum)
	}

	var total partition.Element
	var unionMask uint64
	for _, s := range p.Partitions {
		total += s.Sum
		unionMask |= s.Mask
	}
	var want partition.Element
	for _, v := range elements {
		want += v
	}
	require.Equal(t, want, total)
	require.Equal(t, uint64(0b111111), unionMask)
}

func TestNKK_MoreBucketsThanElements(t *testing.T) {
	elements := []partition.Element{5, 3}
	p := partition.NKK(elements, 4)

	require.Len(t, p.Partitions, 4)
	var total partition.Element
	for _, s := range p.Partitions {
		total += s.Sum
	}
	require.Equal(t, partition.Element(8), total)
}
