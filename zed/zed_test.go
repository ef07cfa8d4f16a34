package zed

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randomSeed(t *testing.T) []byte {
	t.Helper()
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return seed
}

func TestSignVerifyRoundTrip(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()

	msg := []byte("the quick brown fox jumps over the lazy dog")
	sig := secret.Sign(msg)
	if !public.Verify(msg, sig[:]) {
		t.Fatalf("valid signature rejected")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()

	msg := []byte("original message")
	sig := secret.Sign(msg)
	tampered := []byte("original massage")
	if public.Verify(tampered, sig[:]) {
		t.Fatalf("tampered message accepted")
	}
}

func TestKeyRoundTripsThroughSerializedForm(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()

	key := secret.Key()
	roundTripped := SecretFromKey(key[:])
	if roundTripped.Scalar() != secret.Scalar() {
		t.Fatalf("scalar did not survive Key/SecretFromKey round trip")
	}
	if roundTripped.Prefix() != secret.Prefix() {
		t.Fatalf("prefix did not survive Key/SecretFromKey round trip")
	}

	pubKey := public.Key()
	roundTrippedPub := PublicFromKey(pubKey[:])
	if !PointEqual(&roundTrippedPub.point, &public.point) {
		t.Fatalf("public point did not survive Key/PublicFromKey round trip")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	selector := []byte("child-0")

	child1 := secret.Derive(selector)
	child2 := secret.Derive(selector)
	if child1.Scalar() != child2.Scalar() {
		t.Fatalf("deriving twice with the same selector produced different scalars")
	}
}

func TestDerivedPublicMatchesDerivedSecret(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()
	selector := []byte("child-1")

	childSecret := secret.Derive(selector)
	childPublicFromSecret := childSecret.Public()
	childPublicFromPublic := public.Derive(selector)

	if !PointEqual(&childPublicFromSecret.point, &childPublicFromPublic.point) {
		t.Fatalf("Secret.Derive and Public.Derive disagree on the resulting public point")
	}
}

func TestVrfEvalVerifyRoundTrip(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()

	input := []byte("vrf input")
	y, proof := secret.VrfEval(input)

	yCheck, ok := public.VrfVerify(input, proof[:])
	if !ok {
		t.Fatalf("VrfVerify rejected a proof produced by VrfEval")
	}
	if y != yCheck {
		t.Fatalf("VrfVerify returned a different output than VrfEval produced")
	}
}

func TestVrfVerifyRejectsWrongInput(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	public := secret.Public()

	_, proof := secret.VrfEval([]byte("correct input"))
	if _, ok := public.VrfVerify([]byte("wrong input"), proof[:]); ok {
		t.Fatalf("VrfVerify accepted a proof under a different input")
	}
}

func TestVrfEvalIsDeterministic(t *testing.T) {
	secret := SecretFromSeed(randomSeed(t))
	input := []byte("deterministic check")

	y1, proof1 := secret.VrfEval(input)
	y2, proof2 := secret.VrfEval(input)
	if y1 != y2 {
		t.Fatalf("VrfEval produced different outputs for the same (key, input) pair")
	}
	if !bytes.Equal(proof1[:], proof2[:]) {
		t.Fatalf("VrfEval produced different proofs for the same (key, input) pair")
	}
}
