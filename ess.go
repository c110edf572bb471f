package partition

import (
	"container/heap"
	"sort"
)

// lazyQueue is a pop-from-front, cache-as-you-go wrapper over an
// OrderedSubsets stream: Get(i) pulls from the underlying stream only as
// far as needed to answer index i, and Pop discards the current front
// permanently. This mirrors the reference design's VecDeque-backed lazy
// cache, adapted to a Go slice since there is no stdlib deque.
type lazyQueue struct {
	cached []Subset
	rest   *OrderedSubsets
}

func newLazyQueue(rest *OrderedSubsets) *lazyQueue {
	return &lazyQueue{rest: rest}
}

func (q *lazyQueue) cacheThrough(index int) bool {
	for len(q.cached) <= index {
		v, ok := q.rest.Next()
		if !ok {
			return false
		}
		q.cached = append(q.cached, v)
	}
	return true
}

func (q *lazyQueue) Get(index int) (Subset, bool) {
	if !q.cacheThrough(index) {
		return Subset{}, false
	}
	return q.cached[index], true
}

func (q *lazyQueue) Pop() (Subset, bool) {
	if !q.cacheThrough(0) {
		return Subset{}, false
	}
	v := q.cached[0]
	q.cached = q.cached[1:]
	return v, true
}

// ESS (Extended Subset Sum) lazily enumerates every subset of mask whose
// sum falls in the half-open range [lo, hi), without materializing or even
// visiting every subset outside that range. It runs a monotone two-pointer
// sweep over one ascending and one descending OrderedSubsets stream: the
// descending stream is consumed one value at a time (the "plateau"), and
// for each plateau the ascending stream is rescanned from its current
// front, advancing past sums still below lo (which can never satisfy a
// smaller future plateau and are dropped permanently) and stopping once a
// sum reaches hi (advancing to the next, smaller plateau instead).
type ESS struct {
	ascending      *lazyQueue
	ascendingIndex int
	descending     *OrderedSubsets
	peek           Subset
	havePeek       bool
	lo, hi         Element
}

// NewESS builds the range iterator for mask against elements over
// [lo, hi).
func NewESS(mask uint64, elements []Element, lo, hi Element) *ESS {
	left, right := splitMask(mask, elements)
	return &ESS{
		ascending:  newLazyQueue(NewOrderedSubsets(left, elements, Up)),
		descending: NewOrderedSubsets(right, elements, Down),
		lo:         lo,
		hi:         hi,
	}
}

// RestrictRange narrows the iterator to a new, smaller range. Per the
// contract exercised by SNP, newHi must not exceed the current hi and
// newLo must not be below the current lo; the sweep's correctness depends
// on the range only ever shrinking mid-iteration.
func (e *ESS) RestrictRange(newLo, newHi Element) {
	if newLo > e.lo {
		e.lo = newLo
	}
	if newHi < e.hi {
		e.hi = newHi
	}
}

func (e *ESS) peekDescending() (Subset, bool) {
	if !e.havePeek {
		v, ok := e.descending.Next()
		if !ok {
			return Subset{}, false
		}
		e.peek = v
		e.havePeek = true
	}
	return e.peek, true
}

func (e *ESS) stepDescending() {
	e.havePeek = false
	e.ascendingIndex = 0
}

// Next returns the next subset with sum in [lo, hi), or (Subset{}, false)
// once no more remain.
func (e *ESS) Next() (Subset, bool) {
	for {
		d, ok := e.peekDescending()
		if !ok {
			return Subset{}, false
		}
		a, ok := e.ascending.Get(e.ascendingIndex)
		if !ok {
			e.stepDescending()
			continue
		}
		out := UnionSubsets(a, d)
		switch {
		case out.Sum < e.lo:
			e.ascending.Pop()
		case out.Sum >= e.hi:
			e.stepDescending()
		default:
			e.ascendingIndex++
			return out, true
		}
	}
}

// biasedCell is one frontier candidate in BiasedESS's max-heap search: the
// pairing of left[i] and right[j].
type biasedCell struct {
	i, j int
	sum  Element
}

type biasedHeap []biasedCell

func (h biasedHeap) Len() int            { return len(h) }
func (h biasedHeap) Less(i, j int) bool  { return h[i].sum > h[j].sum }
func (h biasedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *biasedHeap) Push(x any)         { *h = append(*h, x.(biasedCell)) }
func (h *biasedHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// BiasedESS enumerates subsets of mask with sum in [lo, hi) in exact
// nonincreasing order of sum, so SNP sees its largest feasible candidates
// first and can tighten its bound as early as possible (spec.md §4.3's
// "biased" variant, whose concrete shape the distilled sources left
// implicit). It is built from the classical "kth largest pair sum from two
// sorted arrays" frontier search: both halves are sorted ascending, the
// initial frontier cell is the pair of largest elements, and popping a
// cell pushes its two smaller neighbors, guarded by a visited set so no
// cell is ever queued twice. Because the heap always pops the globally
// largest remaining sum, the sweep can stop the instant a popped sum drops
// below lo — everything left in the heap is smaller still.
type BiasedESS struct {
	left, right []Subset
	h           *biasedHeap
	visited     map[[2]int]bool
	lo, hi      Element
	done        bool
}

// NewBiasedESS builds the descending range iterator for mask against
// elements over [lo, hi).
func NewBiasedESS(mask uint64, elements []Element, lo, hi Element) *BiasedESS {
	lm, rm := splitMask(mask, elements)
	left := subsetsOf(lm, elements)
	right := subsetsOf(rm, elements)
	sort.Slice(left, func(i, j int) bool { return left[i].Sum < left[j].Sum })
	sort.Slice(right, func(i, j int) bool { return right[i].Sum < right[j].Sum })

	b := &BiasedESS{
		left: left, right: right,
		h:       &biasedHeap{},
		visited: map[[2]int]bool{},
		lo:      lo, hi: hi,
	}
	if len(left) > 0 && len(right) > 0 {
		b.push(len(left)-1, len(right)-1)
	} else {
		b.done = true
	}
	return b
}

func (b *BiasedESS) push(i, j int) {
	if i < 0 || j < 0 {
		return
	}
	key := [2]int{i, j}
	if b.visited[key] {
		return
	}
	b.visited[key] = true
	heap.Push(b.h, biasedCell{i: i, j: j, sum: b.left[i].Sum + b.right[j].Sum})
}

// RestrictRange narrows hi downward, matching ESS's contract.
func (b *BiasedESS) RestrictRange(newLo, newHi Element) {
	if newLo > b.lo {
		b.lo = newLo
	}
	if newHi < b.hi {
		b.hi = newHi
	}
}

// Next returns the next subset with sum in [lo, hi), in nonincreasing
// order of sum, or (Subset{}, false) once no more remain.
func (b *BiasedESS) Next() (Subset, bool) {
	for {
		if b.done || b.h.Len() == 0 {
			return Subset{}, false
		}
		top := heap.Pop(b.h).(biasedCell)
		if top.sum < b.lo {
			b.done = true
			return Subset{}, false
		}
		b.push(top.i-1, top.j)
		b.push(top.i, top.j-1)
		if top.sum >= b.hi {
			continue
		}
		return UnionSubsets(b.left[top.i], b.right[top.j]), true
	}
}
