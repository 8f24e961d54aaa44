package graph

import (
	"github.com/avendt/policygraph/pkg/graph/op"
)

// Output returns the node's current scalar, evaluating and caching as
// needed. A valid cache is returned as-is; otherwise the node's operator is
// applied to the current input values (recursively evaluating inputs in
// order) and the result is memoized.
//
// Output is logically pure: the same structure and defaults always yield
// the same value. It does write the node's cache cell, so treat the node as
// read-only except for caching. Evaluation recurses over input edges;
// calling Output on a node of a cyclic graph does not terminate.
func (n Node) Output() float64 {
	st := &n.g.nodes[n.id]
	if st.valid {
		n.g.hooks().OnCacheHit(int(n.id))
		return st.cached
	}

	result := st.def
	if st.kind != op.Constant {
		result = op.Eval(st.kind, n)
	}
	n.g.hooks().OnEvaluate(int(n.id), int(st.kind), len(st.inputs))

	st.cached = result
	st.valid = true
	return result
}

// InputValues returns the current value of every input in wiring order,
// evaluating each input as needed. Node satisfies [op.Source] through this
// method and [Node.InputValuesAt].
func (n Node) InputValues() []float64 {
	ins := n.g.nodes[n.id].inputs
	vals := make([]float64, len(ins))
	for i, id := range ins {
		vals[i] = (Node{g: n.g, id: id}).Output()
	}
	return vals
}

// InputValuesAt returns the values of the inputs at the given positional
// indices, in the order requested. If any index is out of range for the
// current input count, it returns (nil, false) without evaluating anything:
// an operator must then fall back to the node's default, never consume a
// partial read.
func (n Node) InputValuesAt(indices ...int) ([]float64, bool) {
	ins := n.g.nodes[n.id].inputs
	for _, i := range indices {
		if i < 0 || i >= len(ins) {
			return nil, false
		}
	}
	vals := make([]float64, len(indices))
	for i, idx := range indices {
		vals[i] = (Node{g: n.g, id: ins[idx]}).Output()
	}
	return vals, true
}
