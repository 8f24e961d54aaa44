package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// scenario configures a simulate run: how many ticks to drive and the
// per-tick readings for each named sensor. Scenarios configure the driving
// loop only; the policy graph itself is built in code.
type scenario struct {
	Name    string               `toml:"name"`
	Ticks   int                  `toml:"ticks"`
	Sensors map[string][]float64 `toml:"sensors"`
}

// loadScenario reads and decodes a TOML scenario file.
func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, err
	}
	var sc scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return scenario{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if sc.Ticks <= 0 {
		return scenario{}, fmt.Errorf("scenario %s: ticks must be positive, got %d", path, sc.Ticks)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// sampleAt returns the reading for the given tick. A series shorter than
// the run holds its last value, so steady sensors don't need padding.
func sampleAt(series []float64, tick int) float64 {
	if len(series) == 0 {
		return 0
	}
	if tick >= len(series) {
		return series[len(series)-1]
	}
	return series[tick]
}

// defaultScenario is the bundled run used when no file is given: a threat
// appears while energy drains, exercising both the attack and retreat paths.
func defaultScenario() scenario {
	return scenario{
		Name:  "skirmish",
		Ticks: 6,
		Sensors: map[string][]float64{
			"threat": {0, 0, 1, 1, 1, 0},
			"energy": {5, 5, 5, 3, 1, 1},
		},
	}
}
