package ed25519

import "testing"

func TestVerifyContextMatchesVerify(t *testing.T) {
	pub, priv, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	ctx, err := NewVerifyContext(&pub)
	if err != nil {
		t.Fatalf("NewVerifyContext: %v", err)
	}

	for _, msg := range [][]byte{
		[]byte("first message"),
		[]byte("second message"),
		[]byte("third message, reusing the same context"),
	} {
		sig := Sign(&priv, msg)
		if !ctx.VerifyWithContext(msg, &sig) {
			t.Fatalf("VerifyWithContext rejected a valid signature for %q", msg)
		}
		if !Verify(&pub, msg, &sig) {
			t.Fatalf("Verify rejected a valid signature for %q", msg)
		}
	}
}

func TestVerifyContextRejectsTamperedSignature(t *testing.T) {
	pub, priv, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	ctx, err := NewVerifyContext(&pub)
	if err != nil {
		t.Fatalf("NewVerifyContext: %v", err)
	}
	msg := []byte("message")
	sig := Sign(&priv, msg)
	sig[10] ^= 0x01
	if ctx.VerifyWithContext(msg, &sig) {
		t.Fatalf("VerifyWithContext accepted a tampered signature")
	}
}

func TestNewVerifyContextRejectsInvalidKey(t *testing.T) {
	// y=1 decodes to x=0 (the identity); requesting odd parity for x=0 is
	// unsatisfiable, since 0 is even, so decompression must fail.
	var bad PublicKey
	bad[0] = 1
	bad[31] = 0x80
	if _, err := NewVerifyContext(&bad); err == nil {
		t.Fatalf("NewVerifyContext accepted an invalid public key encoding")
	}
}
