package partition

// RNPKind tags the shape of an RNPResult node.
type RNPKind int

const (
	// RNPTwoWay is a leaf: a single CKK-optimal two-way split.
	RNPTwoWay RNPKind = iota
	// RNPEvenSplit composes two children of equal size (RNP's only
	// constructed composite: n=4 splits evenly into two 2-way halves).
	RNPEvenSplit
	// RNPOddSplit would compose one standalone Subset with one child
	// covering the rest. Declared for completeness (the source's result
	// type has this variant) but never constructed: RNP only supports
	// n==4, so no caller ever needs an odd peel. See DESIGN.md Open
	// Question 2.
	RNPOddSplit
	// RNPHeuristic carries the n-KK seed when the branch-and-bound search
	// finds nothing better than the heuristic it started from.
	RNPHeuristic
)

// RNPResult is the tagged result tree RNP returns: either a plain two-way
// split, a composition of two (or, in principle, one Subset plus one)
// sub-results, or a fallback to the n-KK heuristic.
type RNPResult struct {
	Kind      RNPKind
	TwoWay    KKPartition // valid when Kind == RNPTwoWay
	Left      *RNPResult  // valid when Kind == RNPEvenSplit or RNPOddSplit
	Right     *RNPResult  // valid when Kind == RNPEvenSplit
	Odd       Subset      // valid when Kind == RNPOddSplit
	Heuristic []Subset    // valid when Kind == RNPHeuristic
}

// Flatten walks the result tree into the ordered list of leaf Subsets it
// composes.
func (r RNPResult) Flatten() []Subset {
	switch r.Kind {
	case RNPTwoWay:
		return []Subset{r.TwoWay.Left, r.TwoWay.Right}
	case RNPEvenSplit:
		return append(r.Left.Flatten(), r.Right.Flatten()...)
	case RNPOddSplit:
		return append([]Subset{r.Odd}, r.Left.Flatten()...)
	case RNPHeuristic:
		return r.Heuristic
	default:
		panic(ErrUnknownMethod)
	}
}

// rnpSearchState threads the elements, the current best makespan (ub), and
// the best result found through RNP's branch-and-bound recursion.
type rnpSearchState struct {
	elements []Element
	ub       Element
	best     RNPResult
}

// RNP partitions elements into exactly four subsets, exactly: it explores
// the same Diff/Sum branching tree as CKK, but over KKPartitions instead
// of scalar residuals, so every leaf (a single remaining KKPartition) is
// itself a concrete candidate top-level 2-way split. Each leaf's Left and
// Right sides are then independently optimized by CKK, and the four
// resulting subsets' combined makespan is compared against the best seen.
// RNP takes no n: the selector rejects any n != 4 with ErrRNPRequiresFour
// before calling it, and this function itself only ever produces four
// subsets.
func RNP(elements []Element) RNPResult {
	if len(elements) == 0 {
		panic(ErrEmptyElements)
	}

	seed := NKK(elements, 4)
	st := &rnpSearchState{
		elements: elements,
		ub:       seed.Partitions[0].Sum,
		best: RNPResult{
			Kind:      RNPHeuristic,
			Heuristic: append([]Subset(nil), seed.Partitions...),
		},
	}

	parts := make([]KKPartition, len(elements))
	for i := range elements {
		parts[i] = kkSingleton(i, elements)
	}
	st.search(parts)

	return st.best
}

// search explores one node of the branching tree. parts is never mutated
// in place across branches - each branch gets its own slice - trading the
// allocation for a simple, obviously-correct recursion (the allowed
// simpler alternative to CKK's in-place restore contract; RNP is original
// to this repository, not ported line-for-line from a proven source, so
// correctness is worth more here than avoiding a clone).
func (st *rnpSearchState) search(parts []KKPartition) {
	if len(parts) == 1 {
		st.leaf(parts[0])
		return
	}

	hi, lo := 0, 1
	if parts[lo].Score > parts[hi].Score {
		hi, lo = lo, hi
	}
	for i := 2; i < len(parts); i++ {
		switch {
		case parts[i].Score > parts[hi].Score:
			lo, hi = hi, i
		case parts[i].Score > parts[lo].Score:
			lo = i
		}
	}
	first, snd := parts[hi], parts[lo]

	rest := make([]KKPartition, 0, len(parts)-2)
	for i, p := range parts {
		if i != hi && i != lo {
			rest = append(rest, p)
		}
	}
	var sumRest Element
	for _, p := range rest {
		sumRest += p.Score
	}

	// Pruning (spec 4.7): once first can no longer be beaten down by
	// further Diff branching (first >= snd + sumRest), every leaf below
	// this node has a top-level score of at least first-snd-sumRest, and
	// half that floor never exceeds the four-way makespan of any of those
	// leaves. If even that can't beat ub, the whole subtree is dead;
	// otherwise both branches are still explored, since a less balanced
	// top-level split can still split better four ways.
	if first.Score >= snd.Score+sumRest {
		floor := first.Score - snd.Score - sumRest
		if floor/2 >= st.ub {
			return
		}
	}

	diffChild := make([]KKPartition, 0, len(rest)+1)
	diffChild = append(diffChild, kkMergeDiff(first, snd))
	diffChild = append(diffChild, rest...)
	st.search(diffChild)

	sumChild := make([]KKPartition, 0, len(rest)+1)
	sumChild = append(sumChild, kkMergeSum(first, snd))
	sumChild = append(sumChild, rest...)
	st.search(sumChild)
}

// leaf evaluates one concrete top-level 2-way split: CKK each side
// independently, and if the combined four-way makespan (the largest of the
// four resulting sums) beats ub, record it and tighten ub. Two early exits
// avoid needless CKK runs: skip entirely if half of the heavier side,
// rounded up, can't beat ub, and skip the right-hand CKK if the left
// side's own makespan already rules out an improvement.
func (st *rnpSearchState) leaf(top KKPartition) {
	if (max(top.Left.Sum, top.Right.Sum)+1)/2 >= st.ub {
		return
	}

	left := CKKFromSubset(top.Left, st.elements)
	leftMakespan := max(left.Left.Sum, left.Right.Sum)
	if leftMakespan >= st.ub {
		return
	}

	right := CKKFromSubset(top.Right, st.elements)
	makespan := max(leftMakespan, right.Left.Sum, right.Right.Sum)
	if makespan >= st.ub {
		return
	}

	st.ub = makespan
	st.best = RNPResult{
		Kind: RNPEvenSplit,
		Left: &RNPResult{Kind: RNPTwoWay, TwoWay: left},
		Right: &RNPResult{Kind: RNPTwoWay, TwoWay: right},
	}
}
