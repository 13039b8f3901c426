package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		numQubits = flag.IntP("qubits", "n", 4, "number of qubits to start the circuit with")
		bias      = flag.Float64P("bias", "b", 0.5, "coin-flip bias in [0,1] used for non-deterministic measurements")
		seed      = flag.Uint64P("seed", "s", 0, "RNG seed for reproducible runs (0 seeds nondeterministically)")
		load      = flag.StringP("load", "l", "", "path to a circuit assembly file to load on startup")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if *numQubits < 1 {
		logger.Fatal("qubits must be at least 1", "qubits", *numQubits)
	}
	if *bias < 0 || *bias > 1 {
		logger.Fatal("bias must be within [0,1]", "bias", *bias)
	}

	m := newModel(*numQubits, *bias, *seed)

	if *load != "" {
		data, err := os.ReadFile(*load)
		if err != nil {
			logger.Fatal("reading circuit file", "path", *load, "err", err)
		}
		dag := NewCircuitDAG()
		if err := dag.ParseQASM(string(data)); err != nil {
			logger.Fatal("parsing circuit file", "path", *load, "err", err)
		}
		m.dag = dag
		m.syncFromDAG()
		logger.Info("loaded circuit", "path", *load, "qubits", dag.NumQubits, "gates", len(m.circuit.Gates))
	}

	logger.Info("starting stabsim", "qubits", *numQubits, "bias", *bias)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("program exited with error", "err", err)
	}
}
