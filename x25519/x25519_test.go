package x25519

import (
	"bytes"
	"testing"
)

func TestClampFixesReservedBits(t *testing.T) {
	k := [32]byte{}
	for i := range k {
		k[i] = 0xFF
	}
	clamp(&k)
	if k[0]&0x07 != 0 {
		t.Fatalf("low 3 bits of byte 0 not cleared: %08b", k[0])
	}
	if k[31]&0x80 != 0 {
		t.Fatalf("top bit of byte 31 not cleared: %08b", k[31])
	}
	if k[31]&0x40 == 0 {
		t.Fatalf("second-highest bit of byte 31 not set: %08b", k[31])
	}
}

func TestDiffieHellmanSymmetry(t *testing.T) {
	alicePriv, err := NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	bobPriv, err := NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	alicePub := PublicKey(alicePriv)
	bobPub := PublicKey(bobPriv)

	aliceShared, err := SharedSecret(alicePriv, &bobPub)
	if err != nil {
		t.Fatalf("alice SharedSecret: %v", err)
	}
	bobShared, err := SharedSecret(bobPriv, &alicePub)
	if err != nil {
		t.Fatalf("bob SharedSecret: %v", err)
	}
	if !bytes.Equal(aliceShared[:], bobShared[:]) {
		t.Fatalf("shared secrets disagree:\nalice: %x\nbob:   %x", aliceShared, bobShared)
	}
}

func TestPublicKeyMatchesExplicitScalarMult(t *testing.T) {
	var sk [32]byte
	for i := range sk {
		sk[i] = 0x44
	}
	clamp(&sk)

	got := PublicKey(&sk)
	want := ScalarMult(&sk, &basePoint)
	if got != want {
		t.Fatalf("PublicKey(sk) != ScalarMult(sk, 9): got %x want %x", got, want)
	}
}

func TestScalarMultIsDeterministic(t *testing.T) {
	var sk [32]byte
	for i := range sk {
		sk[i] = 0x44
	}
	a := PublicKey(&sk)
	b := PublicKey(&sk)
	if a != b {
		t.Fatalf("PublicKey not deterministic: %x vs %x", a, b)
	}
}

func TestSharedSecretRejectsLowOrderPoints(t *testing.T) {
	sk, err := NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	var zero [32]byte
	if _, err := SharedSecret(sk, &zero); err != ErrLowOrderInput {
		t.Fatalf("expected ErrLowOrderInput for u=0, got %v", err)
	}
	one := [32]byte{1}
	if _, err := SharedSecret(sk, &one); err != ErrLowOrderInput {
		t.Fatalf("expected ErrLowOrderInput for u=1, got %v", err)
	}
}

func TestClampIsIdempotentOnRelevantBits(t *testing.T) {
	var sk [32]byte
	for i := range sk {
		sk[i] = 0x44
	}
	clamp(&sk)
	once := sk
	clamp(&sk)
	if once != sk {
		t.Fatalf("clamp not idempotent: %x vs %x", once, sk)
	}
}
