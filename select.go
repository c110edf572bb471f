package partition

import "sort"

// Method identifies which engine Partition should dispatch to.
type Method int

const (
	MethodKK Method = iota
	MethodCKK
	MethodSNP
	MethodRNP
	MethodGCC
	MethodBrute
)

// String renders the method the way the CLI subcommand spells it.
func (m Method) String() string {
	switch m {
	case MethodKK:
		return "kk"
	case MethodCKK:
		return "ckk"
	case MethodSNP:
		return "snp"
	case MethodRNP:
		return "rnp"
	case MethodGCC:
		return "gcc"
	case MethodBrute:
		return "brute"
	default:
		return "unknown"
	}
}

// ParseMethod maps a CLI subcommand name to its Method, or ErrUnknownMethod
// if it names none of {kk, ckk, snp, rnp, gcc, brute}.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "kk":
		return MethodKK, nil
	case "ckk":
		return MethodCKK, nil
	case "snp":
		return MethodSNP, nil
	case "rnp":
		return MethodRNP, nil
	case "gcc":
		return MethodGCC, nil
	case "brute":
		return MethodBrute, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Partition validates (elements, n) against method's arity constraints and
// dispatches to the requested engine, returning exactly n subsets sorted
// by sum descending (spec 6's output convention).
//
// Errors: ErrEmptyElements, ErrTooManyElements, ErrNegativeElement,
// ErrInvalidN, ErrCKKRequiresTwo, ErrRNPRequiresFour, ErrUnknownMethod.
func Partition(method Method, elements []Element, n int) ([]Subset, error) {
	if err := validateElements(elements); err != nil {
		return nil, err
	}
	if err := validateN(elements, n); err != nil {
		return nil, err
	}
	if err := validateArity(method, n); err != nil {
		return nil, err
	}

	var out []Subset
	switch method {
	case MethodKK:
		out = NKK(elements, n).Partitions
	case MethodCKK:
		p := CKK(elements)
		out = []Subset{p.Left, p.Right}
	case MethodSNP:
		out = SNP(elements, n)
	case MethodRNP:
		out = RNP(elements).Flatten()
	case MethodGCC:
		out = GCC(elements, n)
	case MethodBrute:
		out = Brute(elements, n)
	default:
		return nil, ErrUnknownMethod
	}

	sorted := append([]Subset(nil), out...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sum > sorted[j].Sum })
	return sorted, nil
}
