package chpsim

import (
	"fmt"

	"stabsim/tableau"
)

// step is one primitive call in a named gate's forward decomposition:
// prim names one of the tableau package's self-contained gate
// primitives, and qubits gives the role indices (0 = first target, 1 =
// second target) that get mapped onto the caller's actual qubits.
type step struct {
	prim   string
	qubits []int
}

// gateDef is a named gate's forward action, expressed as an ordered
// sequence of primitive steps. Applying the gate means prepending the
// steps in this order; prepending the gate's inverse (what every
// Simulator method actually does, per the inverse-tableau trick) means
// walking the sequence backwards and prepending each step's dagger.
type gateDef struct {
	arity int
	steps []step
}

// primDag maps each primitive name to the primitive that undoes it.
// H, H_XY, H_YZ, the Paulis, CX, CZ and SWAP are self-inverse; the
// three sqrt gates swap with their daggers.
var primDag = map[string]string{
	"H":            "H",
	"H_XY":         "H_XY",
	"H_YZ":         "H_YZ",
	"X":            "X",
	"Y":            "Y",
	"Z":            "Z",
	"CX":           "CX",
	"CZ":           "CZ",
	"SWAP":         "SWAP",
	"SQRT_X":       "SQRT_X_DAG",
	"SQRT_X_DAG":   "SQRT_X",
	"SQRT_Y":       "SQRT_Y_DAG",
	"SQRT_Y_DAG":   "SQRT_Y",
	"SQRT_Z":       "SQRT_Z_DAG",
	"SQRT_Z_DAG":   "SQRT_Z",
}

// gateTable is the process-wide, immutable name -> decomposition
// mapping described in the design notes as a lazily initialized global.
// Go guarantees package-level var initializers run before any
// goroutine starts, so a plain map literal built once here is safe to
// read concurrently from many Simulators without further locking.
var gateTable = buildGateTable()

func buildGateTable() map[string]gateDef {
	one := func(prim string) gateDef { return gateDef{arity: 1, steps: []step{{prim, []int{0}}}} }
	two := func(prim string) gateDef { return gateDef{arity: 2, steps: []step{{prim, []int{0, 1}}}} }

	cySteps := []step{{"SQRT_Z", []int{1}}, {"CX", []int{0, 1}}, {"SQRT_Z_DAG", []int{1}}}

	t := map[string]gateDef{
		"I":            {arity: 1, steps: nil},
		"X":            one("X"),
		"Y":            one("Y"),
		"Z":            one("Z"),
		"H":            one("H"),
		"H_XY":         one("H_XY"),
		"H_YZ":         one("H_YZ"),
		"SQRT_X":       one("SQRT_X"),
		"SQRT_X_DAG":   one("SQRT_X_DAG"),
		"SQRT_Y":       one("SQRT_Y"),
		"SQRT_Y_DAG":   one("SQRT_Y_DAG"),
		"S":            one("SQRT_Z"),
		"S_DAG":        one("SQRT_Z_DAG"),
		"SQRT_Z":       one("SQRT_Z"),
		"SQRT_Z_DAG":   one("SQRT_Z_DAG"),
		"CX":           two("CX"),
		"CZ":           two("CZ"),
		"SWAP":         two("SWAP"),
		"CY":           {arity: 2, steps: cySteps},

		// ISWAP = SWAP; CZ; S(a); S(b). ISWAP_DAG is its exact reverse-and-
		// dagger, given as its own table entry so both directions run
		// through the same forward-decomposition machinery as every other
		// gate; see DESIGN.md for the derivation.
		"ISWAP": {arity: 2, steps: []step{
			{"SWAP", []int{0, 1}},
			{"CZ", []int{0, 1}},
			{"SQRT_Z", []int{0}},
			{"SQRT_Z", []int{1}},
		}},
		"ISWAP_DAG": {arity: 2, steps: []step{
			{"SQRT_Z_DAG", []int{1}},
			{"SQRT_Z_DAG", []int{0}},
			{"CZ", []int{0, 1}},
			{"SWAP", []int{0, 1}},
		}},

		// The basis-controlled family: XCX/XCY/XCZ conjugate the control
		// qubit into the X basis with H, YCX/YCY/YCZ into the Y basis with
		// H_YZ, around the matching Z-basis-controlled gate (CX/CY/CZ).
		// See DESIGN.md for the conjugation argument.
		"XCX": {arity: 2, steps: []step{{"H", []int{0}}, {"CX", []int{0, 1}}, {"H", []int{0}}}},
		"XCZ": {arity: 2, steps: []step{{"H", []int{0}}, {"CZ", []int{0, 1}}, {"H", []int{0}}}},
		"XCY": {arity: 2, steps: append(append([]step{{"H", []int{0}}}, cySteps...), step{"H", []int{0}})},

		"YCX": {arity: 2, steps: []step{{"H_YZ", []int{0}}, {"CX", []int{0, 1}}, {"H_YZ", []int{0}}}},
		"YCZ": {arity: 2, steps: []step{{"H_YZ", []int{0}}, {"CZ", []int{0, 1}}, {"H_YZ", []int{0}}}},
		"YCY": {arity: 2, steps: append(append([]step{{"H_YZ", []int{0}}}, cySteps...), step{"H_YZ", []int{0}})},
	}
	return t
}

// prependPrimitive dispatches one decomposition step onto the tableau.
func prependPrimitive(t *tableau.Tableau, prim string, qs []int) {
	switch prim {
	case "H":
		t.PrependH(qs[0])
	case "H_XY":
		t.PrependHXY(qs[0])
	case "H_YZ":
		t.PrependHYZ(qs[0])
	case "X":
		t.PrependX(qs[0])
	case "Y":
		t.PrependY(qs[0])
	case "Z":
		t.PrependZ(qs[0])
	case "SQRT_X":
		t.PrependSqrtX(qs[0])
	case "SQRT_X_DAG":
		t.PrependSqrtXDag(qs[0])
	case "SQRT_Y":
		t.PrependSqrtY(qs[0])
	case "SQRT_Y_DAG":
		t.PrependSqrtYDag(qs[0])
	case "SQRT_Z":
		t.PrependSqrtZ(qs[0])
	case "SQRT_Z_DAG":
		t.PrependSqrtZDag(qs[0])
	case "CX":
		t.PrependCX(qs[0], qs[1])
	case "CZ":
		t.PrependCZ(qs[0], qs[1])
	case "SWAP":
		t.PrependSwap(qs[0], qs[1])
	default:
		panic(fmt.Sprintf("chpsim: unknown decomposition primitive %q", prim))
	}
}

// mapQubits resolves a step's role indices against the caller's actual
// target qubits.
func mapQubits(roles []int, targets []int) []int {
	out := make([]int, len(roles))
	for i, r := range roles {
		out[i] = targets[r]
	}
	return out
}

// prependInverse applies def's inverse to t: the sequence run backwards
// with every step replaced by its dagger. This is what every gate
// application does to the stored inverse tableau (see the inverse-
// tableau trick in DESIGN.md): applying user-facing gate G means
// prepending G^-1.
func prependInverse(t *tableau.Tableau, def gateDef, targets []int) {
	for i := len(def.steps) - 1; i >= 0; i-- {
		st := def.steps[i]
		prependPrimitive(t, primDag[st.prim], mapQubits(st.qubits, targets))
	}
}

func lookupGate(name string) (gateDef, bool) {
	def, ok := gateTable[name]
	return def, ok
}
