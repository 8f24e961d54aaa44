package op

import "math"

// Eval applies k to the node view src and returns the resulting scalar.
//
// An unknown kind behaves like Constant, so graphs built against a newer
// registry degrade to defaults instead of panicking on an older binary.
func Eval(k Kind, src Source) float64 {
	switch k {
	case Sum:
		return sum(src.InputValues())
	case And:
		for _, v := range src.InputValues() {
			if v == 0 {
				return 0
			}
		}
		return 1
	case AnyEq:
		vals := src.InputValues()
		if len(vals) == 0 {
			return src.Default()
		}
		for _, v := range vals[1:] {
			if v == vals[0] {
				return 1
			}
		}
		return 0
	case Not:
		vals, ok := src.InputValuesAt(0)
		if !ok {
			return src.Default()
		}
		if vals[0] == 0 {
			return 1
		}
		return 0
	case Gate:
		vals, ok := src.InputValuesAt(0, 1)
		if !ok {
			return src.Default()
		}
		if vals[1] != 0 {
			return vals[0]
		}
		return 0
	case Sin:
		return mapSum(src.InputValues(), math.Sin)
	case Cos:
		return mapSum(src.InputValues(), math.Cos)
	case Product:
		return product(src.InputValues())
	case Exp:
		return mapSum(src.InputValues(), math.Exp)
	case LessThan:
		return sorted(src.InputValues(), func(a, b float64) bool { return a <= b })
	case GreaterThan:
		return sorted(src.InputValues(), func(a, b float64) bool { return a >= b })
	case Max:
		vals := src.InputValues()
		if len(vals) == 0 {
			return src.Default()
		}
		best := vals[0]
		for _, v := range vals[1:] {
			best = math.Max(best, v)
		}
		return best
	case Min:
		vals := src.InputValues()
		if len(vals) == 0 {
			return src.Default()
		}
		best := vals[0]
		for _, v := range vals[1:] {
			best = math.Min(best, v)
		}
		return best
	case NegSum:
		return -sum(src.InputValues())
	case Square:
		return mapSum(src.InputValues(), func(v float64) float64 { return v * v })
	case PosClamp:
		return mapSum(src.InputValues(), func(v float64) float64 { return math.Max(0, v) })
	case NegClamp:
		return mapSum(src.InputValues(), func(v float64) float64 { return math.Min(0, v) })
	case Sqrt:
		return mapSum(src.InputValues(), func(v float64) float64 { return math.Sqrt(math.Max(0, v)) })
	default:
		return src.Default()
	}
}

// sorted reports (as 1 or 0) whether every adjacent pair satisfies ok.
// Zero or one inputs are vacuously ordered.
func sorted(vals []float64, ok func(a, b float64) bool) float64 {
	for i := 1; i < len(vals); i++ {
		if !ok(vals[i-1], vals[i]) {
			return 0
		}
	}
	return 1
}
