// Package partition solves exact multiway number partitioning: given a
// multiset of up to 64 nonnegative integers and an integer n, split the
// multiset into exactly n disjoint subsets minimizing the largest subset
// sum (the makespan).
//
// # What & Why
//
// Every element is identified by its bit position, so any subset is a
// uint64 mask and arithmetic over subsets (union, sum, enumeration) is
// bitmask arithmetic. That representation is the hard 64-element ceiling
// this package accepts in exchange for dense, allocation-light search.
//
// # Algorithms & Complexity
//
//	NKK / KKTwoWay (Karmarkar-Karp heuristic)
//	  Time: O(L log L).  Not generally optimal; NKK seeds the upper
//	  bound of SNP and RNP.
//
//	CKK (Complete KK, exact, n=2)
//	  Branch-and-bound DFS over KK's Diff/Sum decision tree.
//	  Time: worst case exponential, pruned whenever the largest residual
//	  alone can't be beaten by the sum of the rest.
//
//	SNP (Sequential Number Partitioning, exact, any n>=1)
//	  Peels one bucket per level via a feasibility-restricted ESS sweep,
//	  tightening its bound on every improvement. Falls back to CKK for
//	  the last two buckets when few elements remain.
//	  Time: exponential, space O(2^(L/2)) per live ESS iterator.
//
//	RNP (Recursive Number Partitioning, exact, n=4)
//	  Explores the same Diff/Sum tree as CKK but over whole KKPartitions;
//	  each leaf is independently split by CKK into its own two halves.
//	  Time: exponential.
//
//	GCC (exhaustive element-at-a-time search, exact, any n>=1)
//	  Assigns elements one at a time, trying every bucket lightest first,
//	  pruned by the running makespan. Used chiefly as a second oracle.
//
//	Brute (test oracle, any n>=1)
//	  Enumerates every n-way cover via Submasks. O(n^L); unusable above
//	  ~10 elements. Never use outside tests.
//
// # Combinatorial substrate
//
//	Subset        - (mask, sum) value pair; Submasks enumerates all
//	                 submasks of a mask in strictly decreasing order.
//	OrderedSubsets - lazy Horowitz-Sahni enumeration of every subset of a
//	                 mask in nondecreasing or nonincreasing sum order.
//	ESS            - lazy "subsets with sum in [lo, hi)" iterator built
//	                 from two OrderedSubsets streams; supports shrinking
//	                 its range mid-iteration. BiasedESS is the descending-
//	                 first variant SNP uses to see its best candidates
//	                 first.
//
// # Determinism
//
// Every engine is a pure function of its inputs: identical elements and n
// always produce identical output. Tie-breaking follows from Submasks'
// descending order, OrderedSubsets' stable sort, and CKK/RNP always trying
// Diff before Sum.
//
// # Errors (strict sentinels)
//
//	ErrEmptyElements, ErrTooManyElements, ErrNegativeElement, ErrInvalidN,
//	ErrCKKRequiresTwo, ErrRNPRequiresFour, ErrUnknownMethod.
//
// # Entry point
//
//	func Partition(method Method, elements []Element, n int) ([]Subset, error)
//
// dispatches to the engine named by method, after validating elements and
// the method's arity constraint, and returns exactly n subsets sorted by
// sum descending.
package partition
