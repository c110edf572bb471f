package partition

import "container/heap"

// ckkDirection records, for one merge step of the Karmarkar-Karp decision
// tree, whether the two top elements were combined by absolute difference
// (Diff, opposite sides of the eventual split) or by sum (Sum, same side).
type ckkDirection int

const (
	ckkDiff ckkDirection = iota
	ckkSum
)

// CKK runs the Complete Karmarkar-Karp search: an exhaustive
// branch-and-bound exploration of KK's Diff/Sum decision tree that returns
// the exact optimal two-way split of elements. It always finds the
// optimum, at the cost of (worst case) exponential time; KKTwoWay is its
// linear-time, non-optimal approximation.
func CKK(elements []Element) KKPartition {
	if len(elements) == 0 {
		panic(ErrEmptyElements)
	}
	work := make([]Element, len(elements))
	copy(work, elements)

	var total Element
	for _, v := range elements {
		total += v
	}

	best := total
	var directions, bestDirections []ckkDirection
	ckkRaw(work, total, &directions, &best, &bestDirections)

	return reconstructCKK(elements, bestDirections)
}

// CKKFromSubset runs CKK restricted to the indices selected by s, returning
// a KKPartition whose Left/Right subsets are expressed in terms of the full
// elements slice (not the restricted sub-list). This is SNP's n==2 shortcut
// entry point (original_source's ckk::from_subset), letting SNP hand off a
// masked residual mask directly instead of re-deriving a fresh index space.
func CKKFromSubset(s Subset, elements []Element) KKPartition {
	indices := subsetIndices(s.Mask, len(elements))
	if len(indices) == 0 {
		return KKPartition{}
	}

	work := make([]Element, len(indices))
	for i, idx := range indices {
		work[i] = elements[idx]
	}

	best := s.Sum
	var directions, bestDirections []ckkDirection
	ckkRaw(work, s.Sum, &directions, &best, &bestDirections)

	return reconstructCKKIndexed(indices, elements, bestDirections)
}

// subsetIndices returns the original element indices selected by mask, in
// increasing order.
func subsetIndices(mask uint64, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// ckkRaw is the branch-and-bound core. It mirrors the classical KK
// decision tree: at each step, find the two largest remaining residuals
// and recurse on the Diff branch (opposite sides, new residual =
// first-snd) and the Sum branch (same side, new residual = first+snd).
//
// Exit contract: on return, elements[0] is unchanged and elements[1:] is a
// permutation of its pre-call contents. This lets the whole search reuse a
// single backing slice instead of cloning at every level - the same trick
// the source this is ported from relies on, and the only reason the
// in-place swapping below is worth its complexity over a per-frame clone.
func ckkRaw(elements []Element, sum Element, directions *[]ckkDirection, best *Element, bestDirections *[]ckkDirection) {
	first := &elements[0]
	tail := elements[1:]
	originalFirst := *first

	if len(tail) == 0 {
		if *best > *first {
			*best = *first
			*bestDirections = append([]ckkDirection(nil), *directions...)
		}
		return
	}

	snd := &tail[0]
	rest := tail[1:]
	if *snd > *first {
		*first, *snd = *snd, *first
	}
	for i := range rest {
		x := &rest[i]
		if *x > *snd {
			*x, *snd = *snd, *x
			if *snd > *first {
				*first, *snd = *snd, *first
			}
		}
	}
	sndVal := *snd

	sumRest := sum - *first
	if *first >= sumRest {
		bestPossible := *first - sumRest
		if *best > bestPossible {
			*best = bestPossible
			*bestDirections = append([]ckkDirection(nil), *directions...)
		}
		restoreFirst(first, tail, originalFirst)
		return
	}

	*directions = append(*directions, ckkDiff)
	tail[0] = *first - sndVal
	ckkRaw(tail, sum-sndVal-sndVal, directions, best, bestDirections)
	*directions = (*directions)[:len(*directions)-1]

	*directions = append(*directions, ckkSum)
	tail[0] = *first + sndVal
	ckkRaw(tail, sum, directions, best, bestDirections)
	*directions = (*directions)[:len(*directions)-1]

	tail[0] = sndVal
	restoreFirst(first, tail, originalFirst)
}

// restoreFirst re-establishes *first == originalFirst by swapping it back
// in from wherever it ended up in tail, completing ckkRaw's exit contract.
func restoreFirst(first *Element, tail []Element, originalFirst Element) {
	if *first == originalFirst {
		return
	}
	for i := range tail {
		if tail[i] == originalFirst {
			*first, tail[i] = tail[i], *first
			return
		}
	}
	panic(errHeapEmpty)
}

// reconstructCKK replays bestDirections over a fresh heap of singleton
// KKPartitions indexed 0..len(elements)-1, yielding the concrete Left/Right
// split that produced the winning score.
func reconstructCKK(elements []Element, directions []ckkDirection) KKPartition {
	h := make(kkHeap, len(elements))
	for i := range elements {
		h[i] = kkSingleton(i, elements)
	}
	return replayDirections(h, directions)
}

// reconstructCKKIndexed is reconstructCKK's counterpart for CKKFromSubset:
// the heap is seeded from indices into elements rather than 0..n-1.
func reconstructCKKIndexed(indices []int, elements []Element, directions []ckkDirection) KKPartition {
	h := make(kkHeap, len(indices))
	for pos, idx := range indices {
		h[pos] = kkSingleton(idx, elements)
	}
	return replayDirections(h, directions)
}

// replayDirections drives the shared reconstruction loop: pop the current
// top two, merge per the recorded direction, push, repeat. Once directions
// are exhausted, any remaining heap contents are folded into the
// accumulator by Diff - the "fill" step for branches pruned before every
// element had an assigned direction.
func replayDirections(h kkHeap, directions []ckkDirection) KKPartition {
	heap.Init(&h)
	for _, d := range directions {
		first := heap.Pop(&h).(KKPartition)
		if h.Len() == 0 {
			return first
		}
		snd := heap.Pop(&h).(KKPartition)
		var merged KKPartition
		if d == ckkDiff {
			merged = kkMergeDiff(first, snd)
		} else {
			merged = kkMergeSum(first, snd)
		}
		heap.Push(&h, merged)
	}
	if h.Len() == 0 {
		panic(errHeapEmpty)
	}
	first := heap.Pop(&h).(KKPartition)
	for h.Len() > 0 {
		first = kkMergeDiff(first, heap.Pop(&h).(KKPartition))
	}
	return first
}
