package graph

import "github.com/avendt/policygraph/pkg/graph/observe"

// hooks returns the active observation hooks. Indirection point so every
// emit site reads the same registry.
func (g *Graph) hooks() observe.Hooks { return observe.Active() }

// invalidate marks origin and every node reachable from it over output
// back-edges as stale. It runs as an explicit worklist with a visited set:
// chains deeper than the goroutine stack are fine, and a back-edge cycle
// terminates after one visit per node instead of recursing forever. Each
// mutator calls this exactly once, after its structural change.
func (g *Graph) invalidate(origin ID) {
	visited := make([]bool, len(g.nodes))
	stack := []ID{origin}
	marked := 0

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		g.nodes[id].valid = false
		marked++
		stack = append(stack, g.nodes[id].outputs...)
	}

	g.hooks().OnInvalidate(int(origin), marked)
}
