// Package op defines the operator catalog for decision graphs.
//
// An operator is a pure function from a node's current input values to a
// single scalar. Operators are identified by a [Kind], a small integer that
// doubles as the operator's position in the registry. The registry order is
// a compatibility contract: external tooling (mutation and search processes
// in particular) stores and compares nodes by operator index, so existing
// entries must never be reordered or removed. Appending new kinds is safe.
//
// # Evaluation
//
// Operators never touch graph structure directly. They evaluate against a
// [Source], a read-only view of one node that yields input values and the
// node's default scalar. Dispatch goes through the single [Eval] function,
// which keeps the catalog closed and exhaustiveness checkable.
//
// # Degraded inputs
//
// No operator fails. An operator that needs k positional inputs and finds
// fewer returns the node's default; reductions over an empty input list
// return their identity (0 for sums, 1 for products) or the default where
// noted on each kind.
package op

// Kind identifies one operator in the registry.
//
// The integer value of a Kind is its registry index. Constant is index 0
// and means "no operator": the node reports its default scalar.
type Kind int

const (
	// Constant applies no operator; the node's default is its output.
	Constant Kind = iota
	// Sum adds all input values. 0 with no inputs.
	Sum
	// And yields 1 if no input equals 0, else 0. Vacuously 1 with no inputs.
	And
	// AnyEq yields 1 if any input beyond the first equals the first, else 0.
	// Default with no inputs, 0 with exactly one.
	AnyEq
	// Not yields 1 if the first input is 0, else 0. Default with no inputs.
	Not
	// Gate passes the first input through when the second is non-zero,
	// else 0. Default with fewer than two inputs.
	Gate
	// Sin sums sin(x) over all inputs.
	Sin
	// Cos sums cos(x) over all inputs.
	Cos
	// Product multiplies all input values. 1 with no inputs.
	Product
	// Exp sums e^x over all inputs.
	Exp
	// LessThan yields 1 if the inputs are in non-decreasing order, else 0.
	// Vacuously 1 with zero or one inputs.
	LessThan
	// GreaterThan yields 1 if the inputs are in non-increasing order, else 0.
	// Vacuously 1 with zero or one inputs.
	GreaterThan
	// Max yields the largest input, or the default with no inputs.
	Max
	// Min yields the smallest input, or the default with no inputs.
	Min
	// NegSum is the negation of Sum.
	NegSum
	// Square sums x*x over all inputs.
	Square
	// PosClamp sums max(0, x) over all inputs.
	PosClamp
	// NegClamp sums min(0, x) over all inputs.
	NegClamp
	// Sqrt sums sqrt(max(0, x)) over all inputs.
	Sqrt

	kindCount // sentinel, keep last
)

// Source is the read-only view of a node that an operator evaluates against.
// Pulling a value from a Source may recursively evaluate upstream nodes and
// populate their caches; it never changes any logical node state.
type Source interface {
	// InputValues returns the current value of every input, in input order.
	InputValues() []float64

	// InputValuesAt returns the values of the inputs at the given positional
	// indices, in the order requested. The second result is false if any
	// index is out of range for the current input count; callers must then
	// fall back to Default rather than use a partial read.
	InputValuesAt(indices ...int) ([]float64, bool)

	// Default returns the node's default scalar.
	Default() float64
}

// Count returns the number of registry entries, including Constant.
func Count() int { return int(kindCount) }

// Valid reports whether k is a registry entry.
func Valid(k Kind) bool { return k >= 0 && k < kindCount }

// Kinds returns every registry entry in index order, starting with Constant.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
