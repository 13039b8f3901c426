package bits256

import "testing"

func TestWordBitRoundTrip(t *testing.T) {
	var w Word
	for i := uint(0); i < Width; i++ {
		if w.Bit(i) {
			t.Fatalf("bit %d should start clear", i)
		}
	}
	w = w.WithBit(5, true).WithBit(200, true)
	if !w.Bit(5) || !w.Bit(200) {
		t.Fatalf("expected bits 5 and 200 set, got %+v", w)
	}
	if w.Bit(6) {
		t.Fatalf("bit 6 should still be clear")
	}
	w = w.WithBit(5, false)
	if w.Bit(5) {
		t.Fatalf("bit 5 should have been cleared")
	}
}

func TestWordBooleanOps(t *testing.T) {
	a := Word{}.WithBit(0, true).WithBit(1, true)
	b := Word{}.WithBit(1, true).WithBit(2, true)

	if x := a.Xor(b); !x.Bit(0) || x.Bit(1) || !x.Bit(2) {
		t.Fatalf("xor mismatch: %+v", x)
	}
	if x := a.And(b); x.Bit(0) || !x.Bit(1) || x.Bit(2) {
		t.Fatalf("and mismatch: %+v", x)
	}
	if x := a.Or(b); !x.Bit(0) || !x.Bit(1) || !x.Bit(2) {
		t.Fatalf("or mismatch: %+v", x)
	}
	if x := a.AndNot(b); !x.Bit(0) || x.Bit(1) {
		t.Fatalf("andnot mismatch: %+v", x)
	}
}

func TestWordPopCountAndZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Fatalf("Zero should report IsZero")
	}
	if Ones.IsZero() {
		t.Fatalf("Ones should not report IsZero")
	}
	if got := Ones.PopCount(); got != Width {
		t.Fatalf("Ones.PopCount() = %d, want %d", got, Width)
	}
}

func TestShift64StaysWithinSubLanes(t *testing.T) {
	w := Word{1, 1, 1, 1}
	shifted := w.ShiftLeft64(63)
	for _, lane := range shifted {
		if lane != uint64(1)<<63 {
			t.Fatalf("expected top bit set per lane, got %x", lane)
		}
	}
	back := shifted.ShiftRight64(63)
	if back != w {
		t.Fatalf("shift left then right did not round-trip: got %+v want %+v", back, w)
	}
}

func TestInterleave8PreservesPopCount(t *testing.T) {
	a := Word{}.WithBit(0, true).WithBit(64, true).WithBit(130, true)
	b := Word{}.WithBit(8, true).WithBit(255, true)

	lo, hi := Interleave8(a, b)
	got := lo.PopCount() + hi.PopCount()
	want := a.PopCount() + b.PopCount()
	if got != want {
		t.Fatalf("interleave8 changed total set bits: got %d want %d", got, want)
	}
	if lo.Bit(0) != a.Bit(0) {
		t.Fatalf("expected a's bit 0 to land at lo bit 0")
	}
}
