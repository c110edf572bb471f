package partition

// Element is the arithmetic type every engine in this package operates on:
// a nonnegative integer weight. The reference module's tsp package favors a
// concrete float64 over a generic numeric type parameter throughout its hot
// paths (see tsp/exact.go's dense-buffer prefetch), trading generality for
// allocation-free inner loops; the same trade is made here with int64 in
// place of a generic Arith type parameter.
type Element = int64

// zero is the additive identity, spelled out once so every sum starts from
// the same named value rather than a bare 0 literal.
const zero Element = 0
