package partition

import (
	"container/heap"
	"sort"
)

// Direction selects whether an OrderedSubsets or ESS stream yields
// nondecreasing (Up) or nonincreasing (Down) sums.
type Direction int

const (
	Up Direction = iota
	Down
)

func lessFor(dir Direction) func(a, b Element) bool {
	if dir == Down {
		return func(a, b Element) bool { return a > b }
	}
	return func(a, b Element) bool { return a < b }
}

// pairItem is one Horowitz–Sahni merge candidate: a fixed right-half
// subset, the current union with the left-half vector's entry at index,
// and that index itself.
type pairItem struct {
	fixed Subset
	union Subset
	index int
}

// pairHeap is a container/heap.Interface over pairItem, ordered by the
// current union's sum according to less. This is the same pattern as
// dijkstra's nodePQ and tsp/bb.go's neighborOrder: a small unexported type
// implementing the four heap.Interface methods plus Push/Pop, rather than
// a hand-rolled binary heap.
type pairHeap struct {
	items []pairItem
	less  func(a, b Element) bool
}

func (h pairHeap) Len() int { return len(h.items) }
func (h pairHeap) Less(i, j int) bool {
	return h.less(h.items[i].union.Sum, h.items[j].union.Sum)
}
func (h pairHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *pairHeap) Push(x any)   { h.items = append(h.items, x.(pairItem)) }
func (h *pairHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// OrderedSubsets lazily enumerates every subset of mask in nondecreasing
// (Up) or nonincreasing (Down) order of sum, without materializing all
// 2^popcount(mask) subsets up front. It splits mask into two halves via
// splitMask, fully sorts the left half (2^|left| subsets, cheap since
// |left| ~= popcount(mask)/2), and merges it against the right half's
// 2^|right| subsets via a container/heap k-way merge: one heap entry per
// right-half subset, each advancing through the sorted left vector in
// lockstep. This is the classical Horowitz–Sahni split: a 2^n space is
// streamed in sorted order while holding only about 2^(n/2) entries.
type OrderedSubsets struct {
	vec  []Subset
	heap *pairHeap
}

// NewOrderedSubsets builds the iterator for every subset of mask.
func NewOrderedSubsets(mask uint64, elements []Element, dir Direction) *OrderedSubsets {
	left, right := splitMask(mask, elements)
	less := lessFor(dir)

	vec := subsetsOf(left, elements)
	sort.SliceStable(vec, func(i, j int) bool { return less(vec[i].Sum, vec[j].Sum) })

	h := &pairHeap{less: less}
	if len(vec) > 0 {
		sm := NewSubmasks(right)
		for {
			m, ok := sm.Next()
			if !ok {
				break
			}
			fixed := NewSubset(m, elements)
			h.items = append(h.items, pairItem{
				fixed: fixed,
				union: UnionSubsets(vec[0], fixed),
				index: 0,
			})
		}
	}
	heap.Init(h)
	return &OrderedSubsets{vec: vec, heap: h}
}

// Next returns the next subset in sorted order, or (Subset{}, false) once
// all 2^popcount(mask) subsets have been emitted.
func (o *OrderedSubsets) Next() (Subset, bool) {
	if o.heap.Len() == 0 {
		return Subset{}, false
	}
	top := &o.heap.items[0]
	out := top.union
	top.index++
	if top.index >= len(o.vec) {
		heap.Pop(o.heap)
		return out, true
	}
	top.union = UnionSubsets(o.vec[top.index], top.fixed)
	heap.Fix(o.heap, 0)
	return out, true
}
