package chpsim

import (
	"math/rand/v2"

	"stabsim/tableau"
)

// measureWhileTransposed runs the pivoted-elimination collapse for one
// non-deterministic target against an already-borrowed transposed view,
// mirroring the reference measure_while_transposed step for step: find
// the pivot qubit, cancel every other qubit carrying the same X
// component, collapse the pivot onto a bare Z generator, then flip a
// biased coin and reconcile its sign against Z_obs[target].
func measureWhileTransposed(view *tableau.BlockTransposedTableau, target int, bias float64, rng *rand.Rand) bool {
	n := view.N()

	pivot := -1
	for q := 0; q < n; q++ {
		if view.ZObsXBit(target, q) {
			pivot = q
			break
		}
	}
	if pivot < 0 {
		// Determinism should have been caught before borrowing the view;
		// reaching this means the tableau's invariants are broken.
		panic("chpsim: measureWhileTransposed called on a deterministic target")
	}

	for q := pivot + 1; q < n; q++ {
		if view.ZObsXBit(target, q) {
			view.AppendCX(pivot, q)
		}
	}

	if view.ZObsZBit(target, pivot) {
		view.AppendHYZ(pivot)
	} else {
		view.AppendH(pivot)
	}

	coinFlip := rng.Float64() < bias
	if view.ZSign(target) != coinFlip {
		view.AppendX(pivot)
	}

	return coinFlip
}
