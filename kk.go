package partition

import (
	"container/heap"
	"sort"
)

// KKPartition is a two-way candidate split: every element ends up on the
// Left or the Right side, and Score is Left.Sum - Right.Sum. Engines that
// build up a KKPartition through repeated merges maintain the invariant
// that Score is always nonnegative (each merge always subtracts the
// smaller running score from the larger).
type KKPartition struct {
	Left, Right Subset
	Score       Element
}

func kkSingleton(i int, elements []Element) KKPartition {
	s := SubsetFromIndex(i, elements)
	return KKPartition{Left: s, Right: EmptySubset(), Score: s.Sum}
}

// kkMergeDiff pairs opposite sides (a.Left with b.Right, a.Right with
// b.Left) and subtracts scores. This is the branch the plain greedy KK
// heuristic always takes, and one of the two branches CKK's
// branch-and-bound explores at every level of its decision tree.
func kkMergeDiff(a, b KKPartition) KKPartition {
	return KKPartition{
		Left:  UnionSubsets(a.Left, b.Right),
		Right: UnionSubsets(a.Right, b.Left),
		Score: a.Score - b.Score,
	}
}

// kkMergeSum pairs like sides (a.Left with b.Left, a.Right with b.Right)
// and adds scores. This is CKK's other branch: the hypothesis that the two
// elements under consideration end up on the same side of the final split.
func kkMergeSum(a, b KKPartition) KKPartition {
	return KKPartition{
		Left:  UnionSubsets(a.Left, b.Left),
		Right: UnionSubsets(a.Right, b.Right),
		Score: a.Score + b.Score,
	}
}

// kkHeap is a max-heap of KKPartition by Score, the same small
// heap.Interface adapter pattern used throughout this package (see
// pairHeap in ordered_subsets.go and dijkstra's nodePQ in the reference
// module).
type kkHeap []KKPartition

func (h kkHeap) Len() int            { return len(h) }
func (h kkHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h kkHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *kkHeap) Push(x any)         { *h = append(*h, x.(KKPartition)) }
func (h *kkHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// KKTwoWay runs the classical Karmarkar–Karp heuristic: repeatedly take
// the two largest remaining values and replace them with their
// difference, until one value remains. It runs in O(n log n) and is not
// generally optimal, but is an excellent upper-bound seed for the exact
// engines.
func KKTwoWay(elements []Element) KKPartition {
	if len(elements) == 0 {
		return KKPartition{}
	}
	h := make(kkHeap, 0, len(elements))
	for i := range elements {
		h = append(h, kkSingleton(i, elements))
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(KKPartition)
		b := heap.Pop(&h).(KKPartition)
		heap.Push(&h, kkMergeDiff(a, b))
	}
	return h[0]
}

// Partitioning is an n-way candidate split: every element belongs to
// exactly one of Partitions, which is kept sorted in nonincreasing order
// of Sum.
type Partitioning struct {
	Partitions []Subset
}

// Score is max-min across Partitions: the heuristic priority n-KK's merge
// heap orders by (spec's pinned contract; this is not the makespan used
// to compare complete exact-engine solutions, see scorePartitioning in
// gcc.go).
func (p Partitioning) Score() Element {
	if len(p.Partitions) == 0 {
		return 0
	}
	max, min := p.Partitions[0].Sum, p.Partitions[0].Sum
	for _, s := range p.Partitions[1:] {
		if s.Sum > max {
			max = s.Sum
		}
		if s.Sum < min {
			min = s.Sum
		}
	}
	return max - min
}

func partitioningSingleton(i int, elements []Element, n int) Partitioning {
	parts := make([]Subset, n)
	parts[0] = SubsetFromIndex(i, elements)
	for k := 1; k < n; k++ {
		parts[k] = EmptySubset()
	}
	return Partitioning{Partitions: parts}
}

// mergePartitionings zips a's buckets against b's buckets in reverse
// order - largest-of-a with smallest-of-b and so on - then resorts the
// result descending. Pairing largest against smallest is what keeps the
// n-way heuristic balanced as singletons coalesce.
func mergePartitionings(a, b Partitioning) Partitioning {
	n := len(a.Partitions)
	merged := make([]Subset, n)
	for i := 0; i < n; i++ {
		merged[i] = UnionSubsets(a.Partitions[i], b.Partitions[n-1-i])
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Sum > merged[j].Sum })
	return Partitioning{Partitions: merged}
}

type partitioningHeap []Partitioning

func (h partitioningHeap) Len() int            { return len(h) }
func (h partitioningHeap) Less(i, j int) bool  { return h[i].Score() > h[j].Score() }
func (h partitioningHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *partitioningHeap) Push(x any)         { *h = append(*h, x.(Partitioning)) }
func (h *partitioningHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// NKK generalizes KKTwoWay to n buckets: every element starts as its own
// singleton Partitioning with n-1 empty buckets, and the two most
// unbalanced Partitionings are repeatedly merged until one remains.
func NKK(elements []Element, n int) Partitioning {
	if len(elements) == 0 {
		parts := make([]Subset, n)
		for i := range parts {
			parts[i] = EmptySubset()
		}
		return Partitioning{Partitions: parts}
	}
	h := make(partitioningHeap, 0, len(elements))
	for i := range elements {
		h = append(h, partitioningSingleton(i, elements, n))
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(Partitioning)
		b := heap.Pop(&h).(Partitioning)
		heap.Push(&h, mergePartitionings(a, b))
	}
	return h[0]
}
