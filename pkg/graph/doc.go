// Package graph provides scalar decision graphs with memoized,
// dependency-aware evaluation.
//
// # Overview
//
// A decision graph is a directed graph of nodes, each producing one scalar.
// A node either reports a default value (a constant, typically a sensor fed
// by the driving loop) or applies an operator from the [op] catalog to the
// current values of its input nodes. Every node memoizes its last result;
// mutating any node marks the caches of all downstream dependents stale, so
// re-evaluation recomputes exactly the affected subgraph.
//
// # Arena Representation
//
// Nodes live in an arena owned by a [Graph] and are addressed by stable
// integer [ID] values. Input edges and output back-edges are both ID lists
// over the same arena, so back-references can never dangle and the two edge
// directions stay exact inverses of each other: B lists A as an output iff
// A lists B as an input. [Node] is a lightweight handle (graph pointer plus
// ID) that is freely copyable.
//
// # Basic Usage
//
// Create a graph with [New], allocate nodes, then wire inputs:
//
//	g := graph.New()
//	a := g.NewConstant(2)
//	b := g.NewConstant(5)
//	sum := g.NewNode(op.Sum)
//	sum.AddInputs(a, b)
//	v := sum.Output() // 7
//
// Wiring is two-phase: allocate first, connect after. Mutators may be called
// at any time; [Node.Output] always reflects the latest structure.
//
// # Caching
//
// [Node.Output] is logically pure: for fixed structure and defaults it
// always returns the same value. Internally it writes the node's cache cell,
// so the node is read-only except for caching. [Node.CacheValid] exposes the
// cell's validity for diagnostics and tests only; correctness must never
// depend on it.
//
// Invalidation runs as an explicit worklist with a visited set rather than
// recursion. Deep dependency chains therefore cannot exhaust the stack, and
// an accidentally cyclic graph makes invalidation a safe no-op on revisited
// nodes instead of looping forever. Evaluation itself is recursive descent
// over input edges: evaluating a node of a cyclic graph is still a caller
// error and will not terminate. The graph performs no cycle detection at
// construction time.
//
// # Concurrency
//
// Graphs are designed for a single logical thread of control. Output mutates
// cache cells despite its read-only signature, and invalidation walks shared
// back-edges, so concurrent calls into any two nodes of the same graph
// require external synchronization. Operators may fan reductions over a
// node's own input values out to multiple goroutines; that parallelism is
// confined to the single Output call.
//
// # Observability
//
// Cache hits, recomputations, and invalidation waves are reported through
// the hooks in the [observe] subpackage. The default hooks are no-ops.
//
// [op]: github.com/avendt/policygraph/pkg/graph/op
// [observe]: github.com/avendt/policygraph/pkg/graph/observe
package graph
