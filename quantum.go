package main

import (
	"fmt"
	"slices"

	"stabsim/chpsim"
)

// MeasurementRecord is one measurement outcome recorded while running a
// Circuit, in circuit order.
type MeasurementRecord struct {
	Qubit  int
	Step   int
	Result bool
}

// SimulationResult is the outcome of running a Circuit to completion:
// the resulting stabilizer generators and every measurement recorded
// along the way.
type SimulationResult struct {
	Generators []string
	Measured   []MeasurementRecord
}

// RunCircuit drives circuit's gates and measurements, in step order,
// through a fresh chpsim.Simulator and reports the resulting stabilizer
// generators plus every measurement outcome. bias is the coin-flip bias
// passed to every non-deterministic measurement; 0.5 gives the usual
// fair-coin CHP behavior. seed selects the simulator's RNG: 0 seeds
// nondeterministically from crypto/rand, matching chpsim.New; any other
// value reproduces the same run every time via chpsim.NewSeeded.
func RunCircuit(circuit *Circuit, bias float64, seed uint64) (*SimulationResult, error) {
	numQubits := max(circuit.NumQubits, 1)
	for _, g := range circuit.Gates {
		numQubits = max(numQubits, g.Target+1, g.Control+1)
	}

	var sim *chpsim.Simulator
	var err error
	if seed == 0 {
		sim, err = chpsim.New(numQubits)
	} else {
		sim, err = chpsim.NewSeeded(numQubits, seed, seed^0x9e3779b97f4a7c15)
	}
	if err != nil {
		return nil, fmt.Errorf("allocating simulator: %w", err)
	}

	gates := slices.Clone(circuit.Gates)
	slices.SortStableFunc(gates, func(a, b Gate) int { return a.Step - b.Step })

	result := &SimulationResult{}
	for _, g := range gates {
		switch g.Type {
		case "BARRIER":
			continue
		case "MEASURE":
			outcome, err := sim.Measure(g.Target, bias)
			if err != nil {
				return nil, fmt.Errorf("measuring q[%d] at step %d: %w", g.Target, g.Step, err)
			}
			result.Measured = append(result.Measured, MeasurementRecord{
				Qubit: g.Target, Step: g.Step, Result: outcome,
			})
		default:
			targets := []int{g.Target}
			if g.Control >= 0 {
				targets = []int{g.Control, g.Target}
			}
			if err := sim.Op(g.Type, targets); err != nil {
				return nil, fmt.Errorf("applying %s at step %d: %w", g.Type, g.Step, err)
			}
		}
	}

	result.Generators = sim.StabilizerGenerators()
	return result, nil
}
