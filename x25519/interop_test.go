package x25519

import (
	"bytes"
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/curve25519"
)

// TestInteropPublicKeyMatchesXCrypto checks our fixed-base scalar
// multiplication against golang.org/x/crypto/curve25519's X25519, the
// reference most of the ecosystem treats as ground truth for this curve.
func TestInteropPublicKeyMatchesXCrypto(t *testing.T) {
	for i := 0; i < 16; i++ {
		var seed [32]byte
		if _, err := rand.Read(seed[:]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		k := seed
		clamp(&k)

		got := PublicKey(&k)

		want, err := curve25519.X25519(k[:], curve25519.Basepoint)
		if err != nil {
			t.Fatalf("curve25519.X25519: %v", err)
		}
		if !bytes.Equal(got[:], want) {
			t.Fatalf("iteration %d: public key mismatch\nours: %x\nx/crypto: %x", i, got, want)
		}
	}
}

// TestInteropSharedSecretMatchesXCrypto runs a full Diffie-Hellman exchange
// on both implementations and checks the shared secrets agree.
func TestInteropSharedSecretMatchesXCrypto(t *testing.T) {
	var aSeed, bSeed [32]byte
	if _, err := rand.Read(aSeed[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	if _, err := rand.Read(bSeed[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	aPriv, bPriv := aSeed, bSeed
	clamp(&aPriv)
	clamp(&bPriv)

	aPub := PublicKey(&aPriv)
	bPub := PublicKey(&bPriv)

	ourShared, err := SharedSecret(&aPriv, &bPub)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}

	xPub, err := curve25519.X25519(aPriv[:], curve25519.Basepoint)
	if err != nil {
		t.Fatalf("curve25519.X25519 (public): %v", err)
	}
	xShared, err := curve25519.X25519(bPriv[:], xPub)
	if err != nil {
		t.Fatalf("curve25519.X25519 (shared): %v", err)
	}

	if !bytes.Equal(ourShared[:], xShared) {
		t.Fatalf("shared secret mismatch\nours: %x\nx/crypto: %x", ourShared, xShared)
	}
	if !bytes.Equal(aPub[:], xPub) {
		t.Fatalf("alice public key mismatch against x/crypto's own derivation")
	}
}

// TestInteropScalarMultArbitraryPoint cross-checks ScalarMult against
// curve25519.X25519 for a non-base point, exercising the ladder on an
// input other than the base point u=9 that PublicKey uses.
func TestInteropScalarMultArbitraryPoint(t *testing.T) {
	var kSeed, pointSeed [32]byte
	if _, err := rand.Read(kSeed[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	if _, err := rand.Read(pointSeed[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	k := kSeed
	clamp(&k)

	midPub, err := curve25519.X25519(pointSeed[:], curve25519.Basepoint)
	if err != nil {
		t.Fatalf("curve25519.X25519: %v", err)
	}
	var mid [32]byte
	copy(mid[:], midPub)

	got := ScalarMult(&k, &mid)
	want, err := curve25519.X25519(k[:], mid[:])
	if err != nil {
		t.Fatalf("curve25519.X25519: %v", err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("scalar mult mismatch\nours: %x\nx/crypto: %x", got, want)
	}
}

// TestX44KAT is the spec's literal reference vector: sk = 32 bytes of
// 0x44, clamped, then multiplied by the base point. The spec defines the
// expected output only as "agrees byte-for-byte with any independent
// Curve25519 implementation", so golang.org/x/crypto/curve25519 stands in
// as that independent implementation and ground truth.
func TestX44KAT(t *testing.T) {
	var sk [32]byte
	for i := range sk {
		sk[i] = 0x44
	}
	clamp(&sk)

	got := PublicKey(&sk)
	want, err := curve25519.X25519(sk[:], curve25519.Basepoint)
	if err != nil {
		t.Fatalf("curve25519.X25519: %v", err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("0x44 KAT mismatch\nours: %x\nx/crypto: %x", got, want)
	}
}
