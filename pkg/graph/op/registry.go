package op

import "fmt"

// kindNames is indexed by Kind. The order mirrors the const block and is
// part of the registry's published shape.
var kindNames = [...]string{
	Constant:    "Constant",
	Sum:         "Sum",
	And:         "And",
	AnyEq:       "AnyEq",
	Not:         "Not",
	Gate:        "Gate",
	Sin:         "Sin",
	Cos:         "Cos",
	Product:     "Product",
	Exp:         "Exp",
	LessThan:    "LessThan",
	GreaterThan: "GreaterThan",
	Max:         "Max",
	Min:         "Min",
	NegSum:      "NegSum",
	Square:      "Square",
	PosClamp:    "PosClamp",
	NegClamp:    "NegClamp",
	Sqrt:        "Sqrt",
}

// String returns the operator's registry name, or "Kind(n)" for values
// outside the registry.
func (k Kind) String() string {
	if Valid(k) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MinArity returns the number of inputs k needs to produce a non-default
// result. Operators invoked with fewer inputs return the node's default.
func (k Kind) MinArity() int {
	switch k {
	case Not, AnyEq, Max, Min:
		return 1
	case Gate:
		return 2
	default:
		return 0
	}
}

// Synopsis returns a one-line description of k for diagnostic listings.
func (k Kind) Synopsis() string {
	switch k {
	case Constant:
		return "no operator, report the default scalar"
	case Sum:
		return "sum of all inputs"
	case And:
		return "1 if no input is 0"
	case AnyEq:
		return "1 if any later input equals the first"
	case Not:
		return "1 if the first input is 0"
	case Gate:
		return "first input if the second is non-zero, else 0"
	case Sin:
		return "sum of sin(x) over inputs"
	case Cos:
		return "sum of cos(x) over inputs"
	case Product:
		return "product of all inputs"
	case Exp:
		return "sum of e^x over inputs"
	case LessThan:
		return "1 if inputs are non-decreasing"
	case GreaterThan:
		return "1 if inputs are non-increasing"
	case Max:
		return "largest input"
	case Min:
		return "smallest input"
	case NegSum:
		return "negated sum of all inputs"
	case Square:
		return "sum of x*x over inputs"
	case PosClamp:
		return "sum of max(0, x) over inputs"
	case NegClamp:
		return "sum of min(0, x) over inputs"
	case Sqrt:
		return "sum of sqrt(max(0, x)) over inputs"
	default:
		return "unknown operator"
	}
}
