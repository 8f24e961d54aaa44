package cli

import (
	"fmt"

	"github.com/avendt/policygraph/pkg/graph"
	"github.com/avendt/policygraph/pkg/graph/op"
)

// actuator is a named output node of a policy, ordered for stable display.
type actuator struct {
	name string
	node graph.Node
}

// policy bundles a decision graph with its named sensor and actuator nodes.
// Sensors are constant leaves the driving loop feeds each tick; actuators
// are the nodes whose outputs the loop reads back.
type policy struct {
	g         *graph.Graph
	sensors   map[string]graph.Node
	actuators []actuator
}

// buildPatrolPolicy constructs the built-in demo policy: an agent that
// patrols until a threat appears, attacks while it has energy in reserve,
// and retreats when it runs low.
//
// Sensors: "threat" (non-zero when an enemy is visible) and "energy".
// Actuators: "patrol" (1 when idle), "attack" (committed energy, 0 when
// holding back), "retreat" (1 when fleeing).
func buildPatrolPolicy() (*policy, error) {
	g := graph.New()

	threat := g.NewConstant(0)
	energy := g.NewConstant(5)
	reserve := g.NewConstant(2)

	// 1 when energy has drained to the reserve threshold or below.
	low := g.NewNode(op.LessThan)
	if err := low.AddInputs(energy, reserve); err != nil {
		return nil, fmt.Errorf("wire low: %w", err)
	}

	healthy := g.NewNode(op.Not)
	if err := healthy.AddInput(low); err != nil {
		return nil, fmt.Errorf("wire healthy: %w", err)
	}

	fight := g.NewNode(op.And)
	if err := fight.AddInputs(threat, healthy); err != nil {
		return nil, fmt.Errorf("wire fight: %w", err)
	}

	patrol := g.NewNode(op.Not)
	if err := patrol.AddInput(threat); err != nil {
		return nil, fmt.Errorf("wire patrol: %w", err)
	}

	attack := g.NewNode(op.Gate)
	if err := attack.AddInputs(energy, fight); err != nil {
		return nil, fmt.Errorf("wire attack: %w", err)
	}

	retreat := g.NewNode(op.And)
	if err := retreat.AddInputs(threat, low); err != nil {
		return nil, fmt.Errorf("wire retreat: %w", err)
	}

	return &policy{
		g: g,
		sensors: map[string]graph.Node{
			"threat": threat,
			"energy": energy,
		},
		actuators: []actuator{
			{name: "patrol", node: patrol},
			{name: "attack", node: attack},
			{name: "retreat", node: retreat},
		},
	}, nil
}
