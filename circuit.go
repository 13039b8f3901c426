package main

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Pre-compiled regexps for the circuit's textual assembly format. The
// format mirrors OpenQASM's qubit-reference syntax but the gate
// vocabulary is exactly chpsim's recognized Clifford gate names, since
// there is no standard QASM spelling for H_XY, SQRT_X_DAG, XCY and
// friends.
var (
	singleGateRegex = regexp.MustCompile(`^([A-Z_]+\w*)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^([A-Z_]+\w*)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex    = regexp.MustCompile(`^MEASURE\s+q\[(\d+)\](?:\s*->\s*c\[(\d+)\])?;?$`)
	qregRegex       = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
	cregRegex       = regexp.MustCompile(`creg\s+(\w+)\[(\d+)\]`)
	barrierRegex    = regexp.MustCompile(`^BARRIER\s+`)
)

// Gate represents a Clifford gate or measurement placed on the circuit.
// Type is always one of chpsim's recognized gate names (see gates.go),
// or "MEASURE" / "BARRIER".
type Gate struct {
	Type    string
	Target  int
	Control int // -1 for single-qubit gates and MEASURE
	Step    int // position in circuit timeline
}

// Circuit holds the quantum circuit state.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
}

// AddGate appends a single-qubit gate or MEASURE to the circuit.
func (c *Circuit) AddGate(gateType string, target, step int) {
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: -1, Step: step})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddTwoQubitGate appends a two-qubit gate to the circuit. control is
// the first qubit role (the "a" qubit for basis-controlled gates), and
// target is the second.
func (c *Circuit) AddTwoQubitGate(gateType string, control, target, step int) {
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: control, Step: step})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddBarrier appends a barrier spanning all qubits at the given step.
func (c *Circuit) AddBarrier(step int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g Gate) bool {
		return g.Step == step && g.Type == "BARRIER"
	})
	c.Gates = append(c.Gates, Gate{Type: "BARRIER", Target: -1, Control: -1, Step: step})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// gateReferences reports whether the gate references the given qubit.
func (g Gate) gateReferences(qubit int) bool {
	return g.Target == qubit || g.Control == qubit
}

// RemoveGateAt removes any gate at the given step and qubit. Barriers
// at that step are also removed since they span all qubits.
func (c *Circuit) RemoveGateAt(step, qubit int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g Gate) bool {
		if g.Step == step && g.Type == "BARRIER" {
			return true
		}
		return g.Step == step && g.gateReferences(qubit)
	})
}

// RemoveGatesOnQubit removes all gates that reference the given qubit index.
func (c *Circuit) RemoveGatesOnQubit(qubit int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g Gate) bool {
		return g.gateReferences(qubit)
	})
}

// GetGateAt returns the gate at the given step and qubit, or nil.
func (c *Circuit) GetGateAt(step, qubit int) *Gate {
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Step == step && g.gateReferences(qubit) {
			return g
		}
	}
	return nil
}

// NumCbits returns the number of classical bits needed (one per measured
// qubit index). Returns 0 when no measurements exist.
func (c *Circuit) NumCbits() int {
	maxMeasureQubit := -1
	for _, gate := range c.Gates {
		if gate.Type == "MEASURE" {
			maxMeasureQubit = max(maxMeasureQubit, gate.Target)
		}
	}
	if maxMeasureQubit < 0 {
		return 0
	}
	return maxMeasureQubit + 1
}

// GetMeasureAtStep returns the qubit index being measured at the given
// step, or -1 if none.
func (c *Circuit) GetMeasureAtStep(step int) int {
	for _, g := range c.Gates {
		if g.Step == step && g.Type == "MEASURE" {
			return g.Target
		}
	}
	return -1
}

// ToQASM generates the circuit's textual assembly form.
func (c *Circuit) ToQASM() string {
	maxQubit := -1
	maxMeasureQubit := -1
	for _, gate := range c.Gates {
		maxQubit = max(maxQubit, gate.Target, gate.Control)
		if gate.Type == "MEASURE" {
			maxMeasureQubit = max(maxMeasureQubit, gate.Target)
		}
	}

	numQubits := max(maxQubit+1, c.NumQubits, 1)
	numCbits := max(maxMeasureQubit+1, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"stabsim.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", numCbits)

	for step := range c.MaxSteps {
		for _, gate := range c.Gates {
			if gate.Step != step {
				continue
			}
			switch {
			case gate.Type == "BARRIER":
				qubits := make([]string, numQubits)
				for q := range numQubits {
					qubits[q] = fmt.Sprintf("q[%d]", q)
				}
				fmt.Fprintf(&sb, "BARRIER %s;\n", strings.Join(qubits, ", "))
			case gate.Type == "MEASURE":
				fmt.Fprintf(&sb, "MEASURE q[%d] -> c[%d];\n", gate.Target, gate.Target)
			case gate.Control >= 0:
				fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", gate.Type, gate.Control, gate.Target)
			default:
				fmt.Fprintf(&sb, "%s q[%d];\n", gate.Type, gate.Target)
			}
		}
	}

	return sb.String()
}

// ParseQASM parses the circuit's textual assembly form and rebuilds the
// circuit from it.
func (c *Circuit) ParseQASM(qasm string) error {
	c.Gates = nil
	c.MaxSteps = 0
	step := 0

	lines := strings.Split(qasm, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); len(matches) > 1 {
				n, _ := strconv.Atoi(matches[2])
				c.NumQubits = n
			}
			continue
		}
		if strings.HasPrefix(line, "creg") {
			continue
		}
		if barrierRegex.MatchString(line) {
			c.AddBarrier(step)
			step++
			continue
		}
		if matches := measureRegex.FindStringSubmatch(line); matches != nil {
			target, _ := strconv.Atoi(matches[1])
			c.AddGate("MEASURE", target, step)
			step++
			continue
		}
		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			qubit1, _ := strconv.Atoi(matches[2])
			qubit2, _ := strconv.Atoi(matches[3])
			c.AddTwoQubitGate(gateType, qubit1, qubit2, step)
			step++
			continue
		}
		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			target, _ := strconv.Atoi(matches[2])
			c.AddGate(gateType, target, step)
			step++
			continue
		}
	}

	return nil
}

// getStepWidth returns the cell width needed for the given step.
func (c *Circuit) getStepWidth(step int) int {
	maxW := 3
	for _, g := range c.Gates {
		if g.Step != step || g.Type == "BARRIER" {
			continue
		}
		name := gateDisplayName(g.Type)
		if cw := cellWidthForName(name); cw > maxW {
			maxW = cw
		}
	}
	return maxW
}

// getStepWidths returns cell widths for steps in [startStep, startStep+count).
func (c *Circuit) getStepWidths(startStep, count int) []int {
	widths := make([]int, count)
	for i := range count {
		widths[i] = c.getStepWidth(startStep + i)
	}
	return widths
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	gate         *Gate
	isControl    bool
	isTarget     bool
	vertAbove    bool
	vertBelow    bool
	passThrough  bool
	measureBelow bool
	isBarrier    bool
}

// getCellInfo returns rendering information for the cell at (step, qubit).
func (c *Circuit) getCellInfo(step, qubit int) cellInfo {
	var info cellInfo

	gate := c.GetGateAt(step, qubit)
	if gate != nil {
		info.gate = gate
		info.isControl = gate.Control == qubit
		info.isTarget = gate.Target == qubit && gate.Control >= 0
	}

	for i := range c.Gates {
		if c.Gates[i].Step == step && c.Gates[i].Type == "BARRIER" {
			info.isBarrier = true
			if info.gate == nil {
				info.gate = &c.Gates[i]
			}
			break
		}
	}

	for _, g := range c.Gates {
		if g.Step != step || g.Control < 0 {
			continue
		}
		minQ, maxQ := min(g.Control, g.Target), max(g.Control, g.Target)
		if qubit >= minQ && qubit <= maxQ {
			if qubit > minQ {
				info.vertAbove = true
			}
			if qubit < maxQ {
				info.vertBelow = true
			}
			if qubit > minQ && qubit < maxQ && info.gate == nil {
				info.passThrough = true
			}
		}
	}

	for _, g := range c.Gates {
		if g.Step == step && g.Type == "MEASURE" && qubit > g.Target {
			info.measureBelow = true
		}
	}

	return info
}

// cellWidthForName returns the cell width needed for a gate name.
func cellWidthForName(name string) int {
	if len(name) <= 1 {
		return 3
	}
	return len(name) + 2
}
