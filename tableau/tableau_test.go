package tableau

import "testing"

func identityGens(t *testing.T, tab *Tableau) {
	t.Helper()
	n := tab.N
	for q := 0; q < n; q++ {
	g := tab.XObs(q)
		if g.Sign {
			t.Fatalf("X_obs[%d] sign should start positive", q)
		}
		if !g.X.Bit(uint(q)) || g.Z.Bit(uint(q)) {
			t.Fatalf("X_obs[%d] should be a bare X at qubit %d", q, q)
		}
	}
}

func TestIdentityTableau(t *testing.T) {
	tab := Identity(4)
	identityGens(t, tab)
	for q := 0; q < 4; q++ {
		if !tab.IsDeterministic(q) {
			t.Fatalf("qubit %d should measure deterministically on |0>", q)
		}
		if tab.ZSign(q) {
			t.Fatalf("Z_obs[%d] sign should start positive", q)
		}
	}
}

func TestHIsSelfInverse(t *testing.T) {
	tab := Identity(3)
	want := tab.Clone()
	tab.PrependH(1)
	tab.PrependH(1)
	if !tab.Equal(want) {
		t.Fatalf("H;H should be identity")
	}
}

func TestHXYAndHYZAreSelfInverse(t *testing.T) {
	for _, q := range []int{0, 2} {
		tab := Identity(3)
		want := tab.Clone()
		tab.PrependHXY(q)
		tab.PrependHXY(q)
		if !tab.Equal(want) {
			t.Fatalf("H_XY;H_XY should be identity at qubit %d", q)
		}
		tab2 := Identity(3)
		want2 := tab2.Clone()
		tab2.PrependHYZ(q)
		tab2.PrependHYZ(q)
		if !tab2.Equal(want2) {
			t.Fatalf("H_YZ;H_YZ should be identity at qubit %d", q)
		}
	}
}

func TestPaulisAreSelfInverse(t *testing.T) {
	for _, apply := range []func(*Tableau, int){
		(*Tableau).PrependX,
		(*Tableau).PrependY,
		(*Tableau).PrependZ,
	} {
		tab := Identity(2)
		want := tab.Clone()
		apply(tab, 0)
		apply(tab, 0)
		if !tab.Equal(want) {
			t.Fatalf("Pauli gate should be self-inverse")
		}
	}
}

func TestSqrtZAndDagAreInverses(t *testing.T) {
	tab := Identity(2)
	want := tab.Clone()
	tab.PrependSqrtZ(0)
	tab.PrependSqrtZDag(0)
	if !tab.Equal(want) {
		t.Fatalf("S;S_DAG should be identity")
	}
}

func TestSqrtXAndDagAreInverses(t *testing.T) {
	tab := Identity(2)
	want := tab.Clone()
	tab.PrependSqrtX(1)
	tab.PrependSqrtXDag(1)
	if !tab.Equal(want) {
		t.Fatalf("sqrt(X);sqrt(X)_DAG should be identity")
	}
}

func TestSqrtYAndDagAreInverses(t *testing.T) {
	tab := Identity(2)
	want := tab.Clone()
	tab.PrependSqrtY(1)
	tab.PrependSqrtYDag(1)
	if !tab.Equal(want) {
		t.Fatalf("sqrt(Y);sqrt(Y)_DAG should be identity")
	}
}

func TestHXHIsZ(t *testing.T) {
	// H; X; H == Z, up to the sign bookkeeping of the identity tableau.
	direct := Identity(1)
	direct.PrependZ(0)

	viaH := Identity(1)
	viaH.PrependH(0)
	viaH.PrependX(0)
	viaH.PrependH(0)

	if !direct.Equal(viaH) {
		t.Fatalf("H;X;H should equal Z")
	}
}

func TestHZHIsX(t *testing.T) {
	direct := Identity(1)
	direct.PrependX(0)

	viaH := Identity(1)
	viaH.PrependH(0)
	viaH.PrependZ(0)
	viaH.PrependH(0)

	if !direct.Equal(viaH) {
		t.Fatalf("H;Z;H should equal X")
	}
}

func TestSXSDagIsY(t *testing.T) {
	direct := Identity(1)
	direct.PrependY(0)

	viaS := Identity(1)
	viaS.PrependSqrtZ(0)
	viaS.PrependX(0)
	viaS.PrependSqrtZDag(0)

	if !direct.Equal(viaS) {
		t.Fatalf("S;X;S_DAG should equal Y")
	}
}

func TestCXIsSelfInverse(t *testing.T) {
	tab := Identity(3)
	want := tab.Clone()
	tab.PrependCX(0, 2)
	tab.PrependCX(0, 2)
	if !tab.Equal(want) {
		t.Fatalf("CX;CX should be identity")
	}
}

func TestCZIsSelfInverse(t *testing.T) {
	tab := Identity(3)
	want := tab.Clone()
	tab.PrependCZ(1, 2)
	tab.PrependCZ(1, 2)
	if !tab.Equal(want) {
		t.Fatalf("CZ;CZ should be identity")
	}
}

func TestCYIsSelfInverse(t *testing.T) {
	tab := Identity(3)
	want := tab.Clone()
	tab.PrependCY(0, 1)
	tab.PrependCY(0, 1)
	if !tab.Equal(want) {
		t.Fatalf("CY;CY should be identity")
	}
}

func TestSwapIsSelfInverse(t *testing.T) {
	tab := Identity(4)
	want := tab.Clone()
	tab.PrependSwap(0, 3)
	tab.PrependSwap(0, 3)
	if !tab.Equal(want) {
		t.Fatalf("SWAP;SWAP should be identity")
	}
}

func TestCXPropagatesXFromControlToTarget(t *testing.T) {
	tab := Identity(2)
	tab.PrependCX(0, 1)
	g := tab.XObs(0)
	if g.Sign {
		t.Fatalf("CX should not introduce a sign on X_obs[control]")
	}
	if !g.X.Bit(0) || !g.X.Bit(1) {
		t.Fatalf("CX should propagate X_c into X_c X_t, got %v", g.X)
	}
}

func TestCZLeavesXAloneOnBothQubitsUnchangedSign(t *testing.T) {
	tab := Identity(2)
	tab.PrependCZ(0, 1)
	g := tab.XObs(0)
	if g.Sign {
		t.Fatalf("CZ should not flip the sign of X_obs[0] alone")
	}
	if !g.Z.Bit(1) {
		t.Fatalf("CZ should propagate X_c into X_c Z_t, got z=%v", g.Z)
	}
}
