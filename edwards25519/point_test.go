package edwards25519

import "testing"

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	g := Generator()
	id := Identity()
	var sum Point
	sum.Add(&g, &id)
	if !sum.Equal(&g) {
		t.Fatalf("G+identity != G")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := Generator()
	var viaAdd, viaDouble Point
	viaAdd.Add(&g, &g)
	viaDouble.Double(&g)
	if !viaAdd.Equal(&viaDouble) {
		t.Fatalf("G+G != 2G")
	}
}

func TestNegateCancels(t *testing.T) {
	g := Generator()
	var neg, sum Point
	neg.Negate(&g)
	sum.Add(&g, &neg)
	id := Identity()
	if !sum.Equal(&id) {
		t.Fatalf("G+(-G) != identity")
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	g := Generator()
	enc := Compress(&g)
	dec, ok := Decompress(&enc)
	if !ok {
		t.Fatalf("decompress of generator failed")
	}
	if !dec.Equal(&g) {
		t.Fatalf("decompress(compress(G)) != G")
	}
}

func TestBasePointMulMatchesRepeatedAdd(t *testing.T) {
	g := Generator()
	var acc Point
	acc = Identity()
	for i := 0; i < 5; i++ {
		acc.Add(&acc, &g)
	}
	limbs := [4]uint64{5, 0, 0, 0}
	viaFold := BasePointMul(&limbs)
	if !acc.Equal(&viaFold) {
		t.Fatalf("5*G via fold table != 5*G via repeated add")
	}
}

func TestDualBaseMulMatchesDirectCombination(t *testing.T) {
	g := Generator()
	qTable := NewVerifyTable(&g)

	a := [4]uint64{3, 0, 0, 0}
	b := [4]uint64{7, 0, 0, 0}
	got := DualBaseMul(&a, &b, qTable)

	var want Point
	want = Identity()
	for i := 0; i < 10; i++ { // 3*G + 7*G = 10*G
		want.Add(&want, &g)
	}
	if !got.Equal(&want) {
		t.Fatalf("3*G+7*G (via DualBaseMul with Q=G) != 10*G")
	}
}

func TestDecompressRejectsInvalidPoint(t *testing.T) {
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xFF
	}
	if _, ok := Decompress(&bad); ok {
		t.Fatalf("expected decompress to reject non-curve-point encoding")
	}
}
