package bits256

import "testing"

func TestMatrixGetSet(t *testing.T) {
	m := NewMatrix(5, 300) // forces more than one Word per row
	m.Set(2, 0, true)
	m.Set(2, 299, true)
	m.Set(3, 150, true)

	if !m.Get(2, 0) || !m.Get(2, 299) {
		t.Fatalf("expected row 2 bits 0 and 299 set")
	}
	if m.Get(2, 1) {
		t.Fatalf("row 2 bit 1 should be clear")
	}
	if !m.Get(3, 150) {
		t.Fatalf("expected row 3 bit 150 set")
	}
	if m.Get(0, 0) {
		t.Fatalf("fresh matrix should start zeroed")
	}
}

func TestMatrixXorAndSwapRows(t *testing.T) {
	m := NewMatrix(3, 64)
	m.Set(0, 1, true)
	m.Set(1, 1, true)
	m.Set(1, 2, true)

	m.XorRow(0, 1) // row0 ^= row1
	if m.Get(0, 1) {
		t.Fatalf("bit 1 should have cancelled after xor")
	}
	if !m.Get(0, 2) {
		t.Fatalf("bit 2 should have been picked up from row1")
	}

	m.SwapRows(0, 2)
	if !m.Get(2, 2) || m.Get(0, 2) {
		t.Fatalf("swap rows did not exchange contents")
	}
}

func TestMatrixRowAnyNonZero(t *testing.T) {
	m := NewMatrix(2, 512)
	if m.RowAnyNonZero(0) {
		t.Fatalf("fresh row should report no set bits")
	}
	m.Set(0, 511, true)
	if !m.RowAnyNonZero(0) {
		t.Fatalf("expected row 0 to report a set bit")
	}
	if m.RowAnyNonZero(1) {
		t.Fatalf("row 1 untouched, should still report clear")
	}
}

func TestMatrixTransposeIsInvolution(t *testing.T) {
	m := NewMatrix(7, 13)
	for _, p := range [][2]int{{0, 0}, {3, 5}, {6, 12}, {2, 2}} {
		m.Set(p[0], p[1], true)
	}
	tr := m.Transpose()
	if tr.Rows() != m.Cols() || tr.Cols() != m.Rows() {
		t.Fatalf("transpose dims = %dx%d, want %dx%d", tr.Rows(), tr.Cols(), m.Cols(), m.Rows())
	}
	back := tr.Transpose()
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.Get(r, c) != back.Get(r, c) {
				t.Fatalf("transpose(transpose(m)) differs from m at (%d,%d)", r, c)
			}
		}
	}
}

func TestMatrixPopCountHelpers(t *testing.T) {
	m := NewMatrix(2, 10)
	m.Set(0, 0, true)
	m.Set(0, 9, true)
	m.Set(1, 1, true)
	m.Set(1, 9, true)

	and := m.AndRows(0, 1)
	if got := m.RowPopCount(and); got != 1 {
		t.Fatalf("AndRows popcount = %d, want 1 (only bit 9 shared)", got)
	}
	xor := m.XorRows(0, 1)
	if got := m.RowPopCount(xor); got != 2 {
		t.Fatalf("XorRows popcount = %d, want 2", got)
	}
}
