// Package partition - sentinel errors shared across all engines and the
// selector. Grouped by concern, exactly as the reference module's per-package
// types.go files group their sentinels (validation vs. governance).
package partition

import "errors"

// Input-shape / validation errors.
var (
	// ErrEmptyElements indicates an empty input multiset was supplied.
	ErrEmptyElements = errors.New("partition: elements is empty")

	// ErrTooManyElements indicates more than 64 elements were supplied; the
	// 64-bit mask representation forbids this (spec hard invariant).
	ErrTooManyElements = errors.New("partition: more than 64 elements")

	// ErrInvalidN indicates n is out of the valid range [1, len(elements)].
	ErrInvalidN = errors.New("partition: n out of range")

	// ErrNegativeElement indicates a negative integer was found in elements;
	// the engines operate on nonnegative integers only (spec §1).
	ErrNegativeElement = errors.New("partition: negative element")
)

// Method-arity / governance errors.
var (
	// ErrCKKRequiresTwo indicates CKK was invoked with n != 2.
	ErrCKKRequiresTwo = errors.New("partition: ckk requires n == 2")

	// ErrRNPRequiresFour indicates RNP was invoked with n != 4.
	ErrRNPRequiresFour = errors.New("partition: rnp requires n == 4")

	// ErrUnknownMethod indicates an unrecognized Method tag or name.
	ErrUnknownMethod = errors.New("partition: unknown method")
)

// Internal invariant violations. These indicate a bug in the engine itself,
// not a caller error, and are only ever raised from states the engine
// guarantees are unreachable (empty heaps at known-populated points,
// overlapping masks at union). Mirrors the reference module's posture of
// failing loudly on broken invariants rather than returning a wrapped error.
var (
	errHeapEmpty        = errors.New("partition: heap unexpectedly empty")
	errOverlappingMasks = errors.New("partition: union of overlapping masks")
)
