package partition

import "sort"

// GCC ("generate complete collection") is an alternative exact n-way
// partitioner, grounded in original_source/src/gcc.rs: instead of peeling
// whole subsets per level like SNP, it assigns elements one at a time to
// one of n partitions, pruned the instant the partial assignment's largest
// sum already meets or exceeds the best complete assignment found so far.
// It is used primarily as SNP's second oracle/cross-check (original
// source's own test suite compares SNP against GCC up to n=4).
func GCC(elements []Element, n int) []Subset {
	if len(elements) == 0 {
		panic(ErrEmptyElements)
	}

	best := make([]Subset, n)
	best[0] = AllSubset(elements)
	st := &gccState{
		elements:  elements,
		best:      best,
		bestScore: scorePartitioning(best),
	}

	partitions := make([]Subset, n)
	st.expand(0, partitions)

	return st.best
}

type gccState struct {
	elements  []Element
	best      []Subset
	bestScore Element
}

// scorePartitioning is the makespan: the largest partition sum.
func scorePartitioning(partitions []Subset) Element {
	max := partitions[0].Sum
	for _, p := range partitions[1:] {
		if p.Sum > max {
			max = p.Sum
		}
	}
	return max
}

// expand assigns elements[index] to every partition in ascending-sum
// order (trying the currently-lightest partition first tends to find good
// solutions - and thus tighten bestScore - early), recursing until every
// element is placed. partitions is mutated and restored in place across
// the loop, the same single-buffer technique ckkRaw uses.
func (st *gccState) expand(index int, partitions []Subset) {
	if index >= len(st.elements) {
		if score := scorePartitioning(partitions); score < st.bestScore {
			st.bestScore = score
			copy(st.best, partitions)
		}
		return
	}

	largestSum := scorePartitioning(partitions)
	if largestSum >= st.bestScore {
		return
	}

	order := make([]int, len(partitions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return partitions[order[a]].Sum < partitions[order[b]].Sum })

	for _, i := range order {
		saved := partitions[i]
		partitions[i] = UnionSubsets(partitions[i], SubsetFromIndex(index, st.elements))
		st.expand(index+1, partitions)
		partitions[i] = saved
		if largestSum == st.bestScore {
			return
		}
	}
}
