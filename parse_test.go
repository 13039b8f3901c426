package main

import (
	"strings"
	"testing"
)

func TestParseSingleAndTwoQubitGates(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "stabsim.inc";

qreg q[3];
creg c[1];

H q[1];
CX q[1], q[2];
CX q[0], q[1];
H q[0];
MEASURE q[0] -> c[0];`

	c := Circuit{NumQubits: 3}
	if err := c.ParseQASM(qasm); err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}

	if len(c.Gates) != 5 {
		t.Fatalf("expected 5 gates, got %d", len(c.Gates))
	}

	want := []struct {
		typ             string
		control, target int
	}{
		{"H", -1, 1},
		{"CX", 1, 2},
		{"CX", 0, 1},
		{"H", -1, 0},
		{"MEASURE", -1, 0},
	}
	for i, w := range want {
		g := c.Gates[i]
		if g.Type != w.typ || g.Control != w.control || g.Target != w.target {
			t.Errorf("gate %d: got Type=%s Control=%d Target=%d, want Type=%s Control=%d Target=%d",
				i, g.Type, g.Control, g.Target, w.typ, w.control, w.target)
		}
	}
}

func TestRoundTripQASM(t *testing.T) {
	c := Circuit{NumQubits: 3}
	c.AddGate("H", 0, 0)
	c.AddTwoQubitGate("CX", 0, 1, 1)
	c.AddGate("MEASURE", 1, 2)

	qasm := c.ToQASM()

	c2 := Circuit{}
	if err := c2.ParseQASM(qasm); err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}

	if len(c2.Gates) != 3 {
		t.Fatalf("round-trip: expected 3 gates, got %d", len(c2.Gates))
	}

	g := c2.Gates[2]
	if g.Type != "MEASURE" || g.Target != 1 {
		t.Errorf("round-trip gate 2: expected MEASURE q[1], got Type=%s Target=%d", g.Type, g.Target)
	}
}

func TestCliffordGateVocabularyRoundTrips(t *testing.T) {
	names := []string{
		"I", "X", "Y", "Z", "H", "H_XY", "H_YZ",
		"SQRT_X", "SQRT_X_DAG", "SQRT_Y", "SQRT_Y_DAG", "S", "S_DAG",
	}
	c := Circuit{NumQubits: 1}
	for i, name := range names {
		c.AddGate(name, 0, i)
	}

	qasm := c.ToQASM()
	c2 := Circuit{}
	if err := c2.ParseQASM(qasm); err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}
	if len(c2.Gates) != len(names) {
		t.Fatalf("expected %d gates, got %d", len(names), len(c2.Gates))
	}
	for i, name := range names {
		if c2.Gates[i].Type != name {
			t.Errorf("gate %d: got %s, want %s", i, c2.Gates[i].Type, name)
		}
	}
}

func TestParseBarrier(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "stabsim.inc";

qreg q[2];
creg c[1];

H q[0];
BARRIER q[0], q[1];
CX q[0], q[1];`

	c := Circuit{NumQubits: 2}
	if err := c.ParseQASM(qasm); err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}

	var sawBarrier bool
	for _, g := range c.Gates {
		if g.Type == "BARRIER" {
			sawBarrier = true
		}
	}
	if !sawBarrier {
		t.Errorf("expected a BARRIER gate in parsed output:\n%s", qasm)
	}
}

func TestDAGParseParallelGates(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "stabsim.inc";
qreg q[4];
creg c[1];

H q[0];
H q[1];
CX q[0], q[1];
X q[2];
`

	dag := NewCircuitDAG()
	dag.ParseQASM(qasm)

	h0Step, h1Step := -1, -1
	for _, node := range dag.Nodes {
		if node.Type == "H" {
			if node.Target == 0 {
				h0Step = node.Step
			} else if node.Target == 1 {
				h1Step = node.Step
			}
		}
	}

	if h0Step != h1Step {
		t.Errorf("H q[0] at step %d, H q[1] at step %d - expected same step for parallel gates", h0Step, h1Step)
	}

	cxStep := -1
	for _, node := range dag.Nodes {
		if node.Type == "CX" && node.Target == 1 && node.Control == 0 {
			cxStep = node.Step
			break
		}
	}
	if cxStep <= h0Step {
		t.Errorf("CX should be after H gates, got CX at step %d, H at step %d", cxStep, h0Step)
	}
}

func TestToQASMUsesGateVocabularyDirectly(t *testing.T) {
	c := Circuit{NumQubits: 2}
	c.AddGate("SQRT_X_DAG", 0, 0)
	c.AddTwoQubitGate("XCY", 0, 1, 1)

	qasm := c.ToQASM()
	if !strings.Contains(qasm, "SQRT_X_DAG q[0];") {
		t.Errorf("expected 'SQRT_X_DAG q[0];' in QASM, got:\n%s", qasm)
	}
	if !strings.Contains(qasm, "XCY q[0], q[1];") {
		t.Errorf("expected 'XCY q[0], q[1];' in QASM, got:\n%s", qasm)
	}
}
