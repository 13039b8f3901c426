package tableau

import "stabsim/bits256"

// BlockTransposedTableau is the generator-major view of a Tableau: row g
// (0..2N-1) holds, across all N qubits, the X (resp. Z) component of
// generator g. Measurement's pivot search and cancellation pass scan one
// generator at a time across every qubit, which is a contiguous row read
// in this orientation and a strided column read in the native one - the
// opposite of what single/two-qubit gates want. BorrowTransposed builds
// this view on demand and Commit writes any mutations back.
type BlockTransposedTableau struct {
	n    int
	xMat *bits256.Matrix // 2N rows (generators) x N cols (qubits)
	zMat *bits256.Matrix
	src  *Tableau
}

// BorrowTransposed builds a BlockTransposedTableau by transposing t's
// bit planes. The signs vector is shared unchanged; measurement only
// ever flips individual sign bits directly on the source tableau, it
// never needs them reshaped.
func BorrowTransposed(t *Tableau) *BlockTransposedTableau {
	return &BlockTransposedTableau{
		n:    t.N,
		xMat: t.xMat.Transpose(),
		zMat: t.zMat.Transpose(),
		src:  t,
	}
}

// Commit transposes the (possibly mutated) generator-major planes back
// into the source Tableau. Call this once after the measurement pass
// that borrowed this view is done; the source tableau is stale until
// then.
func (b *BlockTransposedTableau) Commit() {
	b.src.xMat = b.xMat.Transpose()
	b.src.zMat = b.zMat.Transpose()
}

// ZObsXBit reads the X component of generator Z_obs[target] at qubit q.
func (b *BlockTransposedTableau) ZObsXBit(target, q int) bool {
	return b.xMat.Get(zCol(b.n, target), q)
}

// ZObsZBit reads the Z component of generator Z_obs[target] at qubit q.
func (b *BlockTransposedTableau) ZObsZBit(target, q int) bool {
	return b.zMat.Get(zCol(b.n, target), q)
}

// ZSign returns the sign of generator Z_obs[target]. The sign vector is
// shared with the source tableau, so this reads live even mid-borrow.
func (b *BlockTransposedTableau) ZSign(target int) bool {
	return b.sign(zCol(b.n, target))
}

func (b *BlockTransposedTableau) sign(g int) bool { return b.src.signs.Get(0, g) }

func (b *BlockTransposedTableau) flipSign(g int) { b.src.signs.Set(0, g, !b.src.signs.Get(0, g)) }

// NumGenerators returns 2*N, the number of generator rows.
func (b *BlockTransposedTableau) NumGenerators() int { return numGenerators(b.n) }

// N returns the qubit count.
func (b *BlockTransposedTableau) N() int { return b.n }

// AppendH applies H to qubit q as a column operation over every
// generator row: swap the X and Z bit at column q in every row, XOR-ing
// the AND of the old values into that row's sign.
func (b *BlockTransposedTableau) AppendH(q int) {
	ng := b.NumGenerators()
	for g := 0; g < ng; g++ {
		x, z := b.xMat.Get(g, q), b.zMat.Get(g, q)
		if x && z {
			b.flipSign(g)
		}
		b.xMat.Set(g, q, z)
		b.zMat.Set(g, q, x)
	}
}

// AppendHYZ applies H_YZ (swap Y_q <-> Z_q) as a column operation.
func (b *BlockTransposedTableau) AppendHYZ(q int) {
	ng := b.NumGenerators()
	for g := 0; g < ng; g++ {
		x, z := b.xMat.Get(g, q), b.zMat.Get(g, q)
		xNew := x != z
		if x && !z {
			b.flipSign(g)
		}
		b.xMat.Set(g, q, xNew)
	}
}

// AppendX applies a Pauli X to qubit q: flips the sign of every
// generator row whose Z bit at column q is set.
func (b *BlockTransposedTableau) AppendX(q int) {
	ng := b.NumGenerators()
	for g := 0; g < ng; g++ {
		if b.zMat.Get(g, q) {
			b.flipSign(g)
		}
	}
}

// AppendCX applies CNOT(control, target) as a column operation pair:
// for every generator row, x_target ^= x_control; z_control ^= z_target,
// with the matching sign update.
func (b *BlockTransposedTableau) AppendCX(control, target int) {
	ng := b.NumGenerators()
	for g := 0; g < ng; g++ {
		xc, zc := b.xMat.Get(g, control), b.zMat.Get(g, control)
		xt, zt := b.xMat.Get(g, target), b.zMat.Get(g, target)
		if xc && zt && !(xt != zc) {
			b.flipSign(g)
		}
		b.xMat.Set(g, target, xt != xc)
		b.zMat.Set(g, control, zc != zt)
	}
}
