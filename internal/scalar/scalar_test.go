package scalar

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	var a, b, sum, back Scalar
	a.SetCanonicalBytes(&[32]byte{1, 2, 3})
	b.SetCanonicalBytes(&[32]byte{4, 5, 6, 7})
	sum.Add(&a, &b)
	back.Sub(&sum, &b)
	if back.Bytes() != a.Bytes() {
		t.Fatalf("(a+b)-b != a: got %x want %x", back.Bytes(), a.Bytes())
	}
}

func TestMulOneIsIdentity(t *testing.T) {
	var a, prod Scalar
	a.SetCanonicalBytes(&[32]byte{9, 9, 9, 9, 9})
	one := One()
	prod.Mul(&a, &one)
	if prod.Bytes() != a.Bytes() {
		t.Fatalf("a*1 != a: got %x want %x", prod.Bytes(), a.Bytes())
	}
}

func TestInvertIsMultiplicativeInverse(t *testing.T) {
	var a, inv, prod Scalar
	a.SetCanonicalBytes(&[32]byte{7})
	inv.Invert(&a)
	prod.Mul(&a, &inv)
	one := One()
	if prod.Bytes() != one.Bytes() {
		t.Fatalf("a*inv(a) != 1: got %x", prod.Bytes())
	}
}

// Exercises the scalar-inversion scenario with an arbitrary nontrivial
// scalar k1 (the literal k1/k2 pair is pinned by TestScalarInversionPairKAT):
// k1 and its inverse k2 = 1/k1 mod l satisfy k1*k2 = 1 and, by symmetry,
// k2*k1 = 1 as well.
func TestScalarInversionPair(t *testing.T) {
	var k1 Scalar
	k1.SetCanonicalBytes(&[32]byte{
		0x2b, 0x6a, 0x99, 0x14, 0x55, 0x1d, 0x02, 0x0e,
		0x4a, 0x3e, 0x0c, 0x78, 0x83, 0x1f, 0x3c, 0x5a,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x00,
	})
	var k2 Scalar
	k2.Invert(&k1)

	var p1, p2 Scalar
	p1.Mul(&k1, &k2)
	p2.Mul(&k2, &k1)
	one := One()
	if p1.Bytes() != one.Bytes() || p2.Bytes() != one.Bytes() {
		t.Fatalf("k1*k2 != 1 or k2*k1 != 1")
	}
}

// TestScalarInversionPairKAT pins the literal k1/k2 pair from
// curve25519_selftest.c's _b_k1/_b_k2 (the source's own split-key
// self-test vector): k1*k2 must equal 1 mod l exactly, not merely
// round-trip with a value this package derived itself.
func TestScalarInversionPairKAT(t *testing.T) {
	var k1 Scalar
	k1.SetCanonicalBytes(&[32]byte{
		0x0B, 0xE3, 0xBE, 0x63, 0xBC, 0x01, 0x6A, 0xAA, 0xC9, 0xE5, 0x27, 0x9F, 0xB7, 0x90, 0xFB, 0x44,
		0x37, 0x2B, 0x2D, 0x4D, 0xA1, 0x73, 0x5B, 0x5B, 0xB0, 0x1A, 0xC0, 0x31, 0x8D, 0x89, 0x21, 0x03,
	})
	var k2 Scalar
	k2.SetCanonicalBytes(&[32]byte{
		0x39, 0x03, 0xE3, 0x27, 0x7E, 0x41, 0x93, 0x61, 0x2D, 0x3D, 0x40, 0x19, 0x3D, 0x60, 0x68, 0x21,
		0x60, 0x25, 0xEF, 0x90, 0xB9, 0x8B, 0x24, 0xF2, 0x50, 0x60, 0x94, 0x21, 0xD4, 0x74, 0x36, 0x05,
	})

	var prod Scalar
	prod.Mul(&k1, &k2)
	one := One()
	if prod.Bytes() != one.Bytes() {
		t.Fatalf("k1*k2 != 1 mod l: got %x", prod.Bytes())
	}

	var inv Scalar
	inv.Invert(&k1)
	if inv.Bytes() != k2.Bytes() {
		t.Fatalf("inv(k1) != k2: got %x want %x", inv.Bytes(), k2.Bytes())
	}
}

func TestSetUniformBytesReducesDigest(t *testing.T) {
	var digest [64]byte
	for i := range digest {
		digest[i] = byte(i * 7)
	}
	var s Scalar
	s.SetUniformBytes(&digest)
	if Compare(&s, &l) >= 0 {
		t.Fatalf("reduced scalar not canonical: %v", s)
	}
}

func TestIsCanonicalRejectsOrderAndAbove(t *testing.T) {
	// Encode l limb by limb: l.Bytes() would reduce it to zero first.
	var lb [32]byte
	for i, w := range l {
		for j := 0; j < 8; j++ {
			lb[i*8+j] = byte(w >> (8 * uint(j)))
		}
	}
	if IsCanonical(&lb) {
		t.Fatalf("l itself must not be canonical")
	}
	var zero [32]byte
	if !IsCanonical(&zero) {
		t.Fatalf("zero must be canonical")
	}
}

func TestMulAddMatchesMulThenAdd(t *testing.T) {
	var a, b, c, got, want, ab Scalar
	a.SetCanonicalBytes(&[32]byte{11})
	b.SetCanonicalBytes(&[32]byte{22})
	c.SetCanonicalBytes(&[32]byte{33})
	got.MulAdd(&a, &b, &c)
	ab.Mul(&a, &b)
	want.Add(&ab, &c)
	if got.Bytes() != want.Bytes() {
		t.Fatalf("MulAdd mismatch: got %x want %x", got.Bytes(), want.Bytes())
	}
}
