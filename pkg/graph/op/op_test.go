package op

import (
	"math"
	"testing"
)

// fakeSource is a standalone Source for exercising operators without a graph.
type fakeSource struct {
	vals []float64
	def  float64
}

func (s fakeSource) InputValues() []float64 { return s.vals }

func (s fakeSource) InputValuesAt(indices ...int) ([]float64, bool) {
	out := make([]float64, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.vals) {
			return nil, false
		}
		out = append(out, s.vals[i])
	}
	return out, true
}

func (s fakeSource) Default() float64 { return s.def }

const tolerance = 1e-9

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		vals []float64
		def  float64
		want float64
	}{
		{name: "ConstantUsesDefault", kind: Constant, vals: []float64{1, 2}, def: 42, want: 42},

		{name: "Sum", kind: Sum, vals: []float64{2, 3, -1}, want: 4},
		{name: "SumEmpty", kind: Sum, vals: nil, def: 7, want: 0},
		{name: "NegSum", kind: NegSum, vals: []float64{2, 3, -1}, want: -4},

		{name: "Product", kind: Product, vals: []float64{2, 3, 4}, want: 24},
		{name: "ProductEmpty", kind: Product, vals: nil, def: 7, want: 1},
		{name: "ProductWithZero", kind: Product, vals: []float64{5, 0, 3}, want: 0},

		{name: "AndAllTruthy", kind: And, vals: []float64{1, 2, 3}, want: 1},
		{name: "AndWithZero", kind: And, vals: []float64{1, 2, 0}, want: 0},
		{name: "AndVacuous", kind: And, vals: nil, def: 9, want: 1},

		{name: "NotZero", kind: Not, vals: []float64{0}, want: 1},
		{name: "NotNonZero", kind: Not, vals: []float64{5}, want: 0},
		{name: "NotNoInputs", kind: Not, vals: nil, def: 3, want: 3},

		{name: "AnyEqMatch", kind: AnyEq, vals: []float64{2, 5, 2}, want: 1},
		{name: "AnyEqNoMatch", kind: AnyEq, vals: []float64{2, 5, 3}, want: 0},
		{name: "AnyEqSingle", kind: AnyEq, vals: []float64{2}, want: 0},
		{name: "AnyEqEmpty", kind: AnyEq, vals: nil, def: 6, want: 6},

		{name: "GateOpen", kind: Gate, vals: []float64{7, 1}, want: 7},
		{name: "GateClosed", kind: Gate, vals: []float64{7, 0}, want: 0},
		{name: "GateOneInput", kind: Gate, vals: []float64{7}, def: 4, want: 4},
		{name: "GateNoInputs", kind: Gate, vals: nil, def: 4, want: 4},

		{name: "LessThanSorted", kind: LessThan, vals: []float64{1, 2, 2, 5}, want: 1},
		{name: "LessThanUnsorted", kind: LessThan, vals: []float64{3, 1}, want: 0},
		{name: "LessThanSingle", kind: LessThan, vals: []float64{3}, want: 1},
		{name: "LessThanEmpty", kind: LessThan, vals: nil, want: 1},
		{name: "GreaterThanSorted", kind: GreaterThan, vals: []float64{5, 2, 2, 1}, want: 1},
		{name: "GreaterThanUnsorted", kind: GreaterThan, vals: []float64{1, 3}, want: 0},

		{name: "Max", kind: Max, vals: []float64{1, 9, -4}, want: 9},
		{name: "MaxEmpty", kind: Max, vals: nil, def: 9, want: 9},
		{name: "Min", kind: Min, vals: []float64{1, 9, -4}, want: -4},
		{name: "MinEmpty", kind: Min, vals: nil, def: -2, want: -2},

		{name: "Sin", kind: Sin, vals: []float64{0, math.Pi / 2}, want: 1},
		{name: "Cos", kind: Cos, vals: []float64{0, math.Pi}, want: 0},
		{name: "Exp", kind: Exp, vals: []float64{0, 1}, want: 1 + math.E},
		{name: "Square", kind: Square, vals: []float64{2, -3}, want: 13},
		{name: "PosClamp", kind: PosClamp, vals: []float64{-2, 3, -1}, want: 3},
		{name: "NegClamp", kind: NegClamp, vals: []float64{-2, 3, -1}, want: -3},
		{name: "Sqrt", kind: Sqrt, vals: []float64{4, -9, 16}, want: 6},
		{name: "ElementwiseEmpty", kind: Square, vals: nil, def: 5, want: 0},

		{name: "UnknownKind", kind: Kind(999), vals: []float64{1, 2}, def: 8, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fakeSource{vals: tt.vals, def: tt.def}
			got := Eval(tt.kind, src)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("Eval(%v, %v) = %v, want %v", tt.kind, tt.vals, got, tt.want)
			}
		})
	}
}

// TestRegistryOrder pins the index-to-operator mapping. The registry shape
// is a compatibility contract with external tooling that stores nodes by
// operator index: entries may be appended but never reordered or removed.
func TestRegistryOrder(t *testing.T) {
	want := []string{
		"Constant", "Sum", "And", "AnyEq", "Not", "Gate", "Sin", "Cos",
		"Product", "Exp", "LessThan", "GreaterThan", "Max", "Min", "NegSum",
		"Square", "PosClamp", "NegClamp", "Sqrt",
	}

	if Count() < len(want) {
		t.Fatalf("Count() = %d, want at least %d", Count(), len(want))
	}
	for i, name := range want {
		if got := Kind(i).String(); got != name {
			t.Errorf("Kind(%d) = %q, want %q", i, got, name)
		}
	}
	if Constant != 0 {
		t.Errorf("Constant = %d, want index 0", int(Constant))
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != Count() {
		t.Fatalf("len(Kinds()) = %d, want %d", len(kinds), Count())
	}
	for i, k := range kinds {
		if int(k) != i {
			t.Errorf("Kinds()[%d] = %d, want %d", i, int(k), i)
		}
		if !Valid(k) {
			t.Errorf("Valid(%v) = false, want true", k)
		}
	}
	if Valid(Kind(Count())) {
		t.Error("Valid(kindCount) = true, want false")
	}
	if Valid(Kind(-1)) {
		t.Error("Valid(-1) = true, want false")
	}
}

func TestMinArity(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Constant, 0},
		{Sum, 0},
		{Not, 1},
		{AnyEq, 1},
		{Gate, 2},
		{Max, 1},
		{Min, 1},
		{Sqrt, 0},
	}
	for _, tt := range tests {
		if got := tt.kind.MinArity(); got != tt.want {
			t.Errorf("%v.MinArity() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

// TestParallelReductions pushes fan-in past the chunking threshold and
// checks agreement with a sequential fold within tolerance. Chunked float
// addition may associate differently, hence the tolerance rather than
// exact equality.
func TestParallelReductions(t *testing.T) {
	vals := make([]float64, parallelThreshold*3+17)
	var seq float64
	for i := range vals {
		vals[i] = float64(i%13) - 6
		seq += vals[i]
	}

	src := fakeSource{vals: vals}
	if got := Eval(Sum, src); math.Abs(got-seq) > 1e-6 {
		t.Errorf("Sum over %d inputs = %v, want %v", len(vals), got, seq)
	}

	var seqSq float64
	for _, v := range vals {
		seqSq += v * v
	}
	if got := Eval(Square, src); math.Abs(got-seqSq) > 1e-6 {
		t.Errorf("Square over %d inputs = %v, want %v", len(vals), got, seqSq)
	}

	ones := make([]float64, parallelThreshold*2)
	for i := range ones {
		ones[i] = 1
	}
	ones[100] = 2
	ones[2*parallelThreshold-1] = 0.5
	if got := Eval(Product, fakeSource{vals: ones}); math.Abs(got-1) > tolerance {
		t.Errorf("Product over %d inputs = %v, want 1", len(ones), got)
	}
}
