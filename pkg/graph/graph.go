package graph

import (
	"errors"
	"slices"

	"github.com/avendt/policygraph/pkg/graph/op"
)

// ErrForeignNode is returned by [Node.AddInput], [Node.AddInputs], and
// [Node.SetInputs] when a candidate input is the zero Node or belongs to a
// different graph's arena. Edges are only defined between nodes of the same
// arena.
var ErrForeignNode = errors.New("node belongs to a different graph")

// ID addresses a node within its graph's arena. IDs are assigned
// sequentially from 0 and stay stable for the life of the graph.
type ID int

// nodeState is one arena slot. The cached/valid pair is the node's cache
// cell: it is the only state mutated on the read path and carries no
// logical identity.
type nodeState struct {
	kind    op.Kind
	def     float64
	inputs  []ID // ordered, owning: operators index these positionally
	outputs []ID // back-references for invalidation only, never evaluated

	cached float64
	valid  bool
}

// Graph is an arena of decision nodes. The zero value is usable and empty,
// but use [New] for symmetry with the rest of the package.
//
// Graph is not safe for concurrent use without external synchronization,
// including concurrent calls to the read-looking [Node.Output].
type Graph struct {
	nodes []nodeState
}

// New creates an empty graph.
func New() *Graph { return &Graph{} }

// NewConstant allocates a node with no operator whose output is def.
// Constants are the usual leaves of a graph; the driving loop feeds them
// fresh values via [Node.SetDefault].
func (g *Graph) NewConstant(def float64) Node {
	return g.alloc(nodeState{kind: op.Constant, def: def})
}

// NewNode allocates a node bound to the given operator kind with a zero
// default. Inputs are wired afterwards with [Node.AddInput] and friends.
func (g *Graph) NewNode(kind op.Kind) Node {
	return g.alloc(nodeState{kind: kind})
}

func (g *Graph) alloc(st nodeState) Node {
	g.nodes = append(g.nodes, st)
	return Node{g: g, id: ID(len(g.nodes) - 1)}
}

// NodeCount returns the number of nodes allocated in the arena.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns a handle for the given ID and true, or the zero Node and
// false if the ID was never allocated.
func (g *Graph) Node(id ID) (Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, false
	}
	return Node{g: g, id: id}, true
}

// Node is a handle to one node of a [Graph]. Handles are small and freely
// copyable; all state lives in the graph's arena. The zero Node is not
// usable.
type Node struct {
	g  *Graph
	id ID
}

// ID returns the node's arena index.
func (n Node) ID() ID { return n.id }

// Operator returns the node's current operator kind.
func (n Node) Operator() op.Kind { return n.g.nodes[n.id].kind }

// Default returns the node's default scalar, used when no operator is set
// or an operator's arity precondition is not met.
func (n Node) Default() float64 { return n.g.nodes[n.id].def }

// CacheValid reports whether the node's memoized value is current.
// This is an observability hook for tests and diagnostics; it has no side
// effects and correctness-dependent logic must not rely on it.
func (n Node) CacheValid() bool { return n.g.nodes[n.id].valid }

// Inputs returns the node's input IDs in wiring order.
func (n Node) Inputs() []ID { return slices.Clone(n.g.nodes[n.id].inputs) }

// Outputs returns the IDs of nodes that consume this node as an input.
// The order is not meaningful; the list exists only for invalidation.
func (n Node) Outputs() []ID { return slices.Clone(n.g.nodes[n.id].outputs) }

// SetOperator changes the node's operator kind and invalidates this node
// and all of its transitive dependents.
func (n Node) SetOperator(kind op.Kind) {
	n.g.nodes[n.id].kind = kind
	n.g.invalidate(n.id)
}

// SetDefault changes the node's default scalar and invalidates this node
// and all of its transitive dependents. Writing the current value again is
// a no-op: no caches are disturbed, so per-tick sensor refreshes with
// unchanged readings cost nothing.
func (n Node) SetDefault(v float64) {
	st := &n.g.nodes[n.id]
	if st.def == v {
		return
	}
	st.def = v
	n.g.invalidate(n.id)
}

// AddInput appends in to the node's ordered input list, registers the
// reverse edge for invalidation, and invalidates the node's dependents.
// Returns ErrForeignNode if in is not from the same arena.
func (n Node) AddInput(in Node) error {
	if in.g != n.g || n.g == nil {
		return ErrForeignNode
	}
	n.g.link(n.id, in.id)
	n.g.invalidate(n.id)
	return nil
}

// AddInputs appends the given nodes to the input list in order.
// On ErrForeignNode nothing is wired: the inputs are validated up front so
// a failed call never leaves a partially extended edge set.
func (n Node) AddInputs(ins ...Node) error {
	for _, in := range ins {
		if in.g != n.g || n.g == nil {
			return ErrForeignNode
		}
	}
	for _, in := range ins {
		n.g.link(n.id, in.id)
	}
	n.g.invalidate(n.id)
	return nil
}

// SetInputs replaces the node's input list. Back-edges of the previous
// inputs are unhooked and back-edges for the new inputs registered, keeping
// the input/output relation an exact inverse. On ErrForeignNode the
// existing wiring is left untouched.
func (n Node) SetInputs(ins ...Node) error {
	for _, in := range ins {
		if in.g != n.g || n.g == nil {
			return ErrForeignNode
		}
	}
	st := &n.g.nodes[n.id]
	for _, old := range st.inputs {
		n.g.unlinkOutput(old, n.id)
	}
	st.inputs = st.inputs[:0]
	for _, in := range ins {
		n.g.link(n.id, in.id)
	}
	n.g.invalidate(n.id)
	return nil
}

// link wires input edge node→in and the matching back-edge. A node wired
// as an input twice appears twice on both sides, which keeps the relation
// invertible and is harmless to the visited-set invalidation walk.
func (g *Graph) link(node, in ID) {
	g.nodes[node].inputs = append(g.nodes[node].inputs, in)
	g.nodes[in].outputs = append(g.nodes[in].outputs, node)
}

// unlinkOutput removes one occurrence of dependent from in's back-edges.
func (g *Graph) unlinkOutput(in, dependent ID) {
	outs := g.nodes[in].outputs
	if i := slices.Index(outs, dependent); i >= 0 {
		g.nodes[in].outputs = slices.Delete(outs, i, i+1)
	}
}
