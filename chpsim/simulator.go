// Package chpsim implements the stabilizer-circuit simulator: a
// Simulator holds the inverse of the Clifford applied so far as a
// tableau, dispatches named Clifford gates onto it, and performs
// Z-basis measurement with correct determinism detection and sign.
package chpsim

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"stabsim/tableau"
)

// Simulator tracks one n-qubit Clifford state. The zero value is not
// usable; construct with New or NewSeeded.
type Simulator struct {
	n   int
	inv *tableau.Tableau
	rng *rand.Rand
}

// New allocates a Simulator on n qubits, seeded from a nondeterministic
// source (crypto/rand). n must be in [0, maxQubits].
func New(n int) (*Simulator, error) {
	if n < 0 || n > maxQubits {
		return nil, fmt.Errorf("%w: n=%d out of range", ErrOutOfMemory, n)
	}
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("chpsim: seeding RNG: %w", err)
	}
	s1 := binary.LittleEndian.Uint64(seed[:8])
	s2 := binary.LittleEndian.Uint64(seed[8:])
	return newWithSource(n, rand.NewPCG(s1, s2))
}

// NewSeeded allocates a Simulator on n qubits with a fixed, reproducible
// seed, for tests and debugging.
func NewSeeded(n int, seed1, seed2 uint64) (*Simulator, error) {
	if n < 0 || n > maxQubits {
		return nil, fmt.Errorf("%w: n=%d out of range", ErrOutOfMemory, n)
	}
	return newWithSource(n, rand.NewPCG(seed1, seed2))
}

func newWithSource(n int, src *rand.PCG) (*Simulator, error) {
	return &Simulator{
		n:   n,
		inv: tableau.Identity(n),
		rng: rand.New(src),
	}, nil
}

// N returns the qubit count this simulator was constructed with.
func (s *Simulator) N() int { return s.n }

func (s *Simulator) checkTarget(q int) error {
	if q < 0 || q >= s.n {
		return fmt.Errorf("%w: qubit %d out of range [0,%d)", ErrInvalidArgument, q, s.n)
	}
	return nil
}

func (s *Simulator) checkTwoQubit(c, t int) error {
	if err := s.checkTarget(c); err != nil {
		return err
	}
	if err := s.checkTarget(t); err != nil {
		return err
	}
	if c == t {
		return fmt.Errorf("%w: control and target must differ, both are %d", ErrInvalidArgument, c)
	}
	return nil
}

func (s *Simulator) checkBias(bias float64) error {
	if bias < 0 || bias > 1 {
		return fmt.Errorf("%w: bias %g outside [0,1]", ErrInvalidArgument, bias)
	}
	return nil
}

// H applies a Hadamard to qubit q.
func (s *Simulator) H(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependH(q)
	return nil
}

// HXY applies the X<->Y basis-swap Hadamard variant to qubit q.
func (s *Simulator) HXY(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependHXY(q)
	return nil
}

// HYZ applies the Y<->Z basis-swap Hadamard variant to qubit q.
func (s *Simulator) HYZ(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependHYZ(q)
	return nil
}

// X applies a Pauli X to qubit q.
func (s *Simulator) X(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependX(q)
	return nil
}

// Y applies a Pauli Y to qubit q.
func (s *Simulator) Y(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependY(q)
	return nil
}

// Z applies a Pauli Z to qubit q.
func (s *Simulator) Z(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependZ(q)
	return nil
}

// SqrtX applies sqrt(X) to qubit q. Tracking the inverse tableau means
// this prepends sqrt(X)'s dagger.
func (s *Simulator) SqrtX(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtXDag(q)
	return nil
}

// SqrtXDag applies sqrt(X)_DAG to qubit q.
func (s *Simulator) SqrtXDag(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtX(q)
	return nil
}

// SqrtY applies sqrt(Y) to qubit q.
func (s *Simulator) SqrtY(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtYDag(q)
	return nil
}

// SqrtYDag applies sqrt(Y)_DAG to qubit q.
func (s *Simulator) SqrtYDag(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtY(q)
	return nil
}

// SqrtZ applies sqrt(Z) (the S gate) to qubit q.
func (s *Simulator) SqrtZ(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtZDag(q)
	return nil
}

// SqrtZDag applies S_DAG to qubit q.
func (s *Simulator) SqrtZDag(q int) error {
	if err := s.checkTarget(q); err != nil {
		return err
	}
	s.inv.PrependSqrtZ(q)
	return nil
}

// CX applies a controlled-NOT with control c and target t.
func (s *Simulator) CX(c, t int) error {
	if err := s.checkTwoQubit(c, t); err != nil {
		return err
	}
	s.inv.PrependCX(c, t)
	return nil
}

// CY applies a controlled-Y with control c and target t.
func (s *Simulator) CY(c, t int) error {
	if err := s.checkTwoQubit(c, t); err != nil {
		return err
	}
	s.inv.PrependCY(c, t)
	return nil
}

// CZ applies a controlled-Z between c and t.
func (s *Simulator) CZ(c, t int) error {
	if err := s.checkTwoQubit(c, t); err != nil {
		return err
	}
	s.inv.PrependCZ(c, t)
	return nil
}

// Op dispatches a named Clifford gate onto targets, looked up in the
// process-wide gate table. Every gate, including the ones with their
// own convenience methods above, ultimately prepends its inverse into
// the stored tableau (see gates.go).
func (s *Simulator) Op(name string, targets []int) error {
	def, ok := lookupGate(name)
	if !ok {
		return fmt.Errorf("%w: unrecognized gate %q", ErrInvalidArgument, name)
	}
	if len(targets) != def.arity {
		return fmt.Errorf("%w: gate %q takes %d targets, got %d", ErrInvalidArgument, name, def.arity, len(targets))
	}
	seen := make(map[int]bool, len(targets))
	for _, q := range targets {
		if err := s.checkTarget(q); err != nil {
			return err
		}
		if seen[q] {
			return fmt.Errorf("%w: duplicate qubit %d in gate %q", ErrInvalidArgument, q, name)
		}
		seen[q] = true
	}
	prependInverse(s.inv, def, targets)
	return nil
}

// Measure performs a Z-basis measurement of qubit target, with bias
// controlling the coin flip used for a random outcome.
func (s *Simulator) Measure(target int, bias float64) (bool, error) {
	if err := s.checkTarget(target); err != nil {
		return false, err
	}
	if err := s.checkBias(bias); err != nil {
		return false, err
	}
	if s.inv.IsDeterministic(target) {
		return s.inv.ZSign(target), nil
	}
	view := tableau.BorrowTransposed(s.inv)
	result := measureWhileTransposed(view, target, bias, s.rng)
	view.Commit()
	return result, nil
}

// StabilizerGenerators returns one signed Pauli string per qubit, the
// Z-observable image tracked for each qubit, in "+IXYZ..." notation
// with qubit 0 printed leftmost. These are the rows a CHP-style tool
// prints after running a circuit to show the resulting stabilizer
// group; see DESIGN.md for why the tableau this simulator stores
// doubles as that display without extra bookkeeping.
func (s *Simulator) StabilizerGenerators() []string {
	out := make([]string, s.n)
	for q := 0; q < s.n; q++ {
		out[q] = s.inv.ZObs(q).String()
	}
	return out
}

// MeasureMany measures every qubit in targets in order. Deterministic
// outcomes are all read from the pre-measurement tableau in one pass
// before any random collapse runs, matching the ordering guarantee in
// the design notes: deterministic results never see the side effects of
// collapsing an earlier random measurement in the same batch.
func (s *Simulator) MeasureMany(targets []int, bias float64) ([]bool, error) {
	if err := s.checkBias(bias); err != nil {
		return nil, err
	}
	for _, q := range targets {
		if err := s.checkTarget(q); err != nil {
			return nil, err
		}
	}

	results := make([]bool, len(targets))
	finished := make([]bool, len(targets))
	anyRandom := false
	for k, q := range targets {
		if s.inv.IsDeterministic(q) {
			finished[k] = true
			results[k] = s.inv.ZSign(q)
		} else {
			anyRandom = true
		}
	}

	if anyRandom {
		view := tableau.BorrowTransposed(s.inv)
		for k, q := range targets {
			if !finished[k] {
				results[k] = measureWhileTransposed(view, q, bias, s.rng)
			}
		}
		view.Commit()
	}

	return results, nil
}
