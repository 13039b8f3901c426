// Package tableau implements the Aaronson-Gottesman stabilizer tableau:
// the pair of Pauli-string arrays that records how a tracked Clifford
// operation transforms each single-qubit X and Z generator, plus the
// in-place gate-update primitives that keep it valid.
//
// The tableau is stored qubit-major: row q of the X (resp. Z) bit matrix
// holds, across all 2n generators, whether that generator carries an X
// (resp. Z) component at qubit q. A single-qubit gate like H only ever
// touches one qubit, so under this layout its update is a whole-row
// XOR/swap spanning every generator at once instead of a per-generator
// loop. The block-transposed view in transposed.go flips the
// orientation back (generator-major) for the column scans measurement
// needs.
package tableau

import (
	"stabsim/bits256"
	"stabsim/pauli"
)

// Tableau holds the destabilizer/stabilizer generators for an N-qubit
// Clifford state. XObs(q) and ZObs(q) are the tracked images of the
// single-qubit Paulis X_q and Z_q.
type Tableau struct {
	N int

	// xMat, zMat are N rows (qubits) by 2N columns (generators): column
	// g in [0,N) is generator X_obs[g], column g in [N,2N) is generator
	// Z_obs[g-N].
	xMat, zMat *bits256.Matrix

	// signs is a single row of 2N bits, one sign per generator, indexed
	// the same way as the matrix columns above.
	signs *bits256.Matrix
}

func numGenerators(n int) int { return 2 * n }

func zCol(n, q int) int { return n + q }

// Identity returns the identity tableau on n qubits: X_obs[q] = X_q,
// Z_obs[q] = Z_q, every sign positive.
func Identity(n int) *Tableau {
	ng := numGenerators(n)
	t := &Tableau{
		N:     n,
		xMat:  bits256.NewMatrix(n, ng),
		zMat:  bits256.NewMatrix(n, ng),
		signs: bits256.NewMatrix(1, ng),
	}
	for q := 0; q < n; q++ {
		t.xMat.Set(q, q, true)
		t.zMat.Set(q, zCol(n, q), true)
	}
	return t
}

// Clone returns a deep, independent copy.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{
		N:     t.N,
		xMat:  t.xMat.Clone(),
		zMat:  t.zMat.Clone(),
		signs: t.signs.Clone(),
	}
}

// Equal reports whether two tableaus of the same order carry identical
// generator content, byte for byte. Used by round-trip tests (g;g^-1 =
// identity) rather than a semantic isomorphism check.
func (t *Tableau) Equal(o *Tableau) bool {
	if t.N != o.N {
		return false
	}
	ng := numGenerators(t.N)
	for q := 0; q < t.N; q++ {
		tx, ty := t.xMat.Row(q), o.xMat.Row(q)
		zx, zy := t.zMat.Row(q), o.zMat.Row(q)
		for i := range tx {
			if tx[i] != ty[i] || zx[i] != zy[i] {
				return false
			}
		}
	}
	for g := 0; g < ng; g++ {
		if t.signs.Get(0, g) != o.signs.Get(0, g) {
			return false
		}
	}
	return true
}

// IsDeterministic reports whether measuring qubit target in the Z basis
// is deterministic under this tableau: true iff the X component of
// Z_obs[target] is zero at every qubit. This is a column scan (fixed
// generator, varying qubit row) over the qubit-major matrix rather than
// a contiguous row read; see DESIGN.md for why it is not a strided SIMD
// gather here.
func (t *Tableau) IsDeterministic(target int) bool {
	col := zCol(t.N, target)
	for q := 0; q < t.N; q++ {
		if t.xMat.Get(q, col) {
			return false
		}
	}
	return true
}

// ZSign returns the sign bit of Z_obs[target].
func (t *Tableau) ZSign(target int) bool {
	return t.signs.Get(0, zCol(t.N, target))
}

func andWords(a, b []bits256.Word) []bits256.Word {
	out := make([]bits256.Word, len(a))
	for i := range a {
		out[i] = a[i].And(b[i])
	}
	return out
}

func xorWords(a, b []bits256.Word) []bits256.Word {
	out := make([]bits256.Word, len(a))
	for i := range a {
		out[i] = a[i].Xor(b[i])
	}
	return out
}

func xorInto(dst, src []bits256.Word) {
	for i := range dst {
		dst[i] = dst[i].Xor(src[i])
	}
}

func swapWords(a, b []bits256.Word) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

func (t *Tableau) signsRow() []bits256.Word { return t.signs.Row(0) }

// PrependH swaps X_q <-> Z_q ahead of the currently tracked Clifford.
func (t *Tableau) PrependH(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	mask := andWords(xr, zr)
	xorInto(t.signsRow(), mask)
	swapWords(xr, zr)
}

// PrependHXY swaps X_q <-> Y_q.
func (t *Tableau) PrependHXY(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	mask := make([]bits256.Word, len(xr))
	for i := range mask {
		mask[i] = zr[i].AndNot(xr[i])
	}
	zNew := xorWords(xr, zr)
	xorInto(t.signsRow(), mask)
	copy(zr, zNew)
}

// PrependHYZ swaps Y_q <-> Z_q.
func (t *Tableau) PrependHYZ(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	xNew := xorWords(xr, zr)
	mask := make([]bits256.Word, len(xr))
	for i := range mask {
		mask[i] = xr[i].AndNot(zr[i])
	}
	xorInto(t.signsRow(), mask)
	copy(xr, xNew)
}

// PrependX applies a Pauli X to qubit q (identity on (x,z), flips sign
// wherever the generator carries a Z at q).
func (t *Tableau) PrependX(q int) {
	zr := t.zMat.Row(q)
	xorInto(t.signsRow(), zr)
}

// PrependZ applies a Pauli Z to qubit q.
func (t *Tableau) PrependZ(q int) {
	xr := t.xMat.Row(q)
	xorInto(t.signsRow(), xr)
}

// PrependY applies a Pauli Y to qubit q.
func (t *Tableau) PrependY(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	mask := xorWords(xr, zr)
	xorInto(t.signsRow(), mask)
}

// PrependSqrtZ applies S = sqrt(Z) to qubit q.
func (t *Tableau) PrependSqrtZ(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	mask := andWords(xr, zr)
	xorInto(t.signsRow(), mask)
	zNew := xorWords(xr, zr)
	copy(zr, zNew)
}

// PrependSqrtZDag applies S_DAG to qubit q.
func (t *Tableau) PrependSqrtZDag(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	zNew := xorWords(xr, zr)
	mask := andWords(xr, zNew)
	xorInto(t.signsRow(), mask)
	copy(zr, zNew)
}

// PrependSqrtX applies sqrt(X) to qubit q; the mirror of PrependSqrtZ
// under H.
func (t *Tableau) PrependSqrtX(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	mask := andWords(zr, xr)
	xorInto(t.signsRow(), mask)
	xNew := xorWords(xr, zr)
	copy(xr, xNew)
}

// PrependSqrtXDag applies sqrt(X)_DAG to qubit q.
func (t *Tableau) PrependSqrtXDag(q int) {
	xr, zr := t.xMat.Row(q), t.zMat.Row(q)
	xNew := xorWords(xr, zr)
	mask := andWords(zr, xNew)
	xorInto(t.signsRow(), mask)
	copy(xr, xNew)
}

// PrependCX applies CNOT with control c and target t2 ahead of the
// tracked Clifford.
func (t *Tableau) PrependCX(c, t2 int) {
	xc, zc := t.xMat.Row(c), t.zMat.Row(c)
	xt, zt := t.xMat.Row(t2), t.zMat.Row(t2)

	notXtZc := xorWords(xt, zc)
	for i := range notXtZc {
		notXtZc[i] = notXtZc[i].Not()
	}
	mask := andWords(andWords(xc, zt), notXtZc)
	xorInto(t.signsRow(), mask)

	xorInto(xt, xc)
	xorInto(zc, zt)
}

// PrependCZ applies controlled-Z between c and t2.
func (t *Tableau) PrependCZ(c, t2 int) {
	xc, zc := t.xMat.Row(c), t.zMat.Row(c)
	xt, zt := t.xMat.Row(t2), t.zMat.Row(t2)

	mask := andWords(andWords(xc, xt), xorWords(zc, zt))
	xorInto(t.signsRow(), mask)

	xorInto(zc, xt)
	xorInto(zt, xc)
}

// PrependSwap exchanges the roles of qubits a and b throughout every
// tracked generator: since rows are qubit-major, this is a whole-row
// swap between row a and row b of both matrices, no sign change.
func (t *Tableau) PrependSwap(a, b int) {
	t.xMat.SwapRows(a, b)
	t.zMat.SwapRows(a, b)
}

// PrependCY applies controlled-Y, derived as S(t2); CX(c,t2); S_DAG(t2).
func (t *Tableau) PrependCY(c, t2 int) {
	t.PrependSqrtZ(t2)
	t.PrependCX(c, t2)
	t.PrependSqrtZDag(t2)
}

// PrependSqrtY applies sqrt(Y), derived by conjugating sqrt(X) with the
// X<->Y swap H_XY.
func (t *Tableau) PrependSqrtY(q int) {
	t.PrependHXY(q)
	t.PrependSqrtX(q)
	t.PrependHXY(q)
}

// PrependSqrtYDag applies sqrt(Y)_DAG.
func (t *Tableau) PrependSqrtYDag(q int) {
	t.PrependHXY(q)
	t.PrependSqrtXDag(q)
	t.PrependHXY(q)
}

// Generator reconstructs generator g (0..N-1 is X_obs, N..2N-1 is
// Z_obs) as a pauli.String. This is a column read across every qubit
// row and is meant for inspection and tests, not the hot gate path.
func (t *Tableau) Generator(g int) pauli.String {
	s := pauli.New(t.N)
	for q := 0; q < t.N; q++ {
		if t.xMat.Get(q, g) {
			s.X = s.X.WithBit(uint(q), true)
		}
		if t.zMat.Get(q, g) {
			s.Z = s.Z.WithBit(uint(q), true)
		}
	}
	s.Sign = t.signs.Get(0, g)
	return s
}

// XObs returns X_obs[q] as a pauli.String.
func (t *Tableau) XObs(q int) pauli.String { return t.Generator(q) }

// ZObs returns Z_obs[q] as a pauli.String.
func (t *Tableau) ZObs(q int) pauli.String { return t.Generator(zCol(t.N, q)) }
