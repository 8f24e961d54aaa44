package cli

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avendt/policygraph/pkg/graph/observe"
)

// newSimulateCmd creates the "simulate" command, which drives the built-in
// demo policy through the tick-based mutate/evaluate cycle.
func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [scenario.toml]",
		Short: "Run the built-in demo policy through a tick cycle",
		Long: `Run the built-in patrol policy: each tick feeds the scenario's sensor
readings into the graph's constant leaves and reads the actuator outputs
back. Only nodes downstream of a changed sensor recompute; everything else
is served from cache.

Without an argument a bundled scenario is used. A scenario file configures
the driving loop (tick count and sensor readings), not the graph itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc := defaultScenario()
			if len(args) == 1 {
				var err error
				sc, err = loadScenario(args[0])
				if err != nil {
					return fmt.Errorf("load scenario: %w", err)
				}
			}

			pol, err := buildPatrolPolicy()
			if err != nil {
				return fmt.Errorf("build policy: %w", err)
			}
			for name := range sc.Sensors {
				if _, ok := pol.sensors[name]; !ok {
					return fmt.Errorf("scenario %s: unknown sensor %q", sc.Name, name)
				}
			}

			runID := uuid.NewString()
			logger = logger.With("run", runID[:8])
			observe.SetHooks(&logHooks{logger: logger})
			defer observe.Reset()

			printInfo("Scenario %s, %d ticks", sc.Name, sc.Ticks)
			printDetail("run %s, %d nodes", runID, pol.g.NodeCount())

			prog := newProgress(logger)
			for tick := 0; tick < sc.Ticks; tick++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				for name, series := range sc.Sensors {
					pol.sensors[name].SetDefault(sampleAt(series, tick))
				}

				fields := []any{"tick", tick}
				for _, a := range pol.actuators {
					fields = append(fields, a.name, a.node.Output())
				}
				logger.Info("tick", fields...)
			}
			prog.done(fmt.Sprintf("Simulated %d ticks", sc.Ticks))

			printSuccess("Final actuator state")
			for _, a := range pol.actuators {
				printKeyValue(a.name, strconv.FormatFloat(a.node.Output(), 'g', -1, 64))
			}
			return nil
		},
	}
}
