package partition

import "math/bits"

// SNP (Sequential Number Partitioning) finds the exact n-way partitioning
// minimizing makespan by peeling one subset per level: at each level it
// picks a candidate first bucket from a feasibility-restricted ESS sweep,
// then recurses on the remaining elements with n-1 buckets left. It seeds
// its upper bound from NKK and tightens that bound on every improvement,
// restricting the ESS range in place so later candidates at the same
// level are pruned immediately.
func SNP(elements []Element, n int) []Subset {
	mask := fullMask(len(elements))
	seed := NKK(elements, n)

	var total Element
	for _, p := range seed.Partitions {
		total += p.Sum
	}
	minScore := (total-1)/Element(n) + 1

	st := &snpSearch{
		elements: elements,
		best:     append([]Subset(nil), seed.Partitions...),
		ub:       seed.Partitions[0].Sum,
	}

	current := make([]Subset, 0, n)
	st.helper(mask, n, minScore, total, &current)

	return st.best
}

type snpSearch struct {
	elements []Element
	best     []Subset
	ub       Element
}

// partitionRange computes the feasibility range [lo, hi) for the next
// bucket: it must beat ub (hi=ub), and the remaining n-1 buckets can't
// individually exceed ub-1, so this bucket must cover at least the
// complement (lo = total - (n-1)*(ub-1)).
func partitionRange(ub, total Element, n int) (lo, hi Element) {
	return total - Element(n-1)*(ub-1), ub
}

// helper searches one level: mask is the elements still unassigned, n is
// the buckets left to fill, minScore is a lower bound already guaranteed
// by buckets peeled at shallower levels (and by total/n), and
// totalRemaining is the sum of elements still in mask. It returns the best
// achievable score at or below this node, and whether any candidate gave a
// result at all (the n==1 base case always does; the n==2 CKK shortcut
// comes back empty when its split cannot beat ub, and the recursive branch
// when it exhausts its candidates without an improvement).
func (s *snpSearch) helper(mask uint64, n int, minScore, totalRemaining Element, current *[]Subset) (Element, bool) {
	_, hi := partitionRange(s.ub, totalRemaining, n)

	if n == 1 {
		last := NewSubset(mask, s.elements)
		score := minScore
		if last.Sum > score {
			score = last.Sum
		}
		s.recordBest(*current, last)
		return score, true
	}

	if n == 2 && bits.OnesCount64(mask) < 12 {
		masked := Subset{Mask: mask, Sum: totalRemaining}
		split := CKKFromSubset(masked, s.elements)
		splitMakespan := max(split.Left.Sum, split.Right.Sum)
		if splitMakespan >= s.ub {
			return 0, false
		}
		s.recordBest(*current, split.Left, split.Right)
		score := minScore
		if splitMakespan > score {
			score = splitMakespan
		}
		return score, true
	}

	lo, _ := partitionRange(s.ub, totalRemaining, n)
	it := NewBiasedESS(mask, s.elements, lo, hi)

	var returnValue Element
	haveReturn := false
	for {
		first, ok := it.Next()
		if !ok {
			break
		}

		childMask := mask ^ first.Mask
		childTotal := totalRemaining - first.Sum
		childMinScore := minScore
		if first.Sum > childMinScore {
			childMinScore = first.Sum
		}

		*current = append(*current, first)
		newBest, ok := s.helper(childMask, n-1, childMinScore, childTotal, current)
		if ok {
			if newBest <= minScore {
				*current = (*current)[:len(*current)-1]
				return minScore, true
			}
			returnValue = newBest
			haveReturn = true
			s.ub = newBest
			newLo, newHi := partitionRange(s.ub, totalRemaining, n)
			it.RestrictRange(newLo, newHi)
		}
		*current = (*current)[:len(*current)-1]
	}

	return returnValue, haveReturn
}

// recordBest overwrites s.best with current plus the trailing buckets,
// the partial partitioning assembled by the call stack up to this point.
func (s *snpSearch) recordBest(current []Subset, tail ...Subset) {
	out := make([]Subset, 0, len(current)+len(tail))
	out = append(out, current...)
	out = append(out, tail...)
	s.best = out
}
