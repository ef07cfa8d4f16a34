package ed25519

import (
	"crypto/sha512"

	"github.com/blindcurve/ed25519ct/edwards25519"
	"github.com/blindcurve/ed25519ct/internal/scalar"
)

// hashToScalar reduces SHA-512(parts concatenated) modulo l, the
// eco_DigestToWords + eco_Mod step shared by signing's derivation of r and
// of the challenge h.
func hashToScalar(parts ...[]byte) scalar.Scalar {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	var digest [64]byte
	copy(digest[:], h.Sum(nil))
	var s scalar.Scalar
	s.SetUniformBytes(&digest)
	return s
}

// Sign produces a signature over message using priv, following RFC 8032
// section 5.1.6 (ed25519_SignMessage): r = H(prefix||m) mod l, R = r*G,
// h = H(R||A||m) mod l, S = r + h*a mod l.
func Sign(priv *PrivateKey, message []byte) [SignatureSize]byte {
	a, prefix := expandSecret(priv.Seed())
	pub := priv.Public()

	r := hashToScalar(prefix[:], message)
	rBytes := r.Bytes()
	rLimbs := bytesToLimbs(&rBytes)
	R := edwards25519.BasePointMul(&rLimbs)
	REnc := edwards25519.Compress(&R)

	h := hashToScalar(REnc[:], pub[:], message)

	var s scalar.Scalar
	s.MulAdd(&h, &a, &r)
	sBytes := s.Bytes()

	var sig [SignatureSize]byte
	copy(sig[:32], REnc[:])
	copy(sig[32:], sBytes[:])
	return sig
}

// SignWithBlinding behaves like Sign but derives R = r*G through a
// BlindingContext, masking the scalar multiplier against side-channel
// attacks that target fixed-base multiplication (edp_BasePointMultiply's
// blinding argument).
func SignWithBlinding(priv *PrivateKey, message []byte, ctx *edwards25519.BlindingContext) [SignatureSize]byte {
	a, prefix := expandSecret(priv.Seed())
	pub := priv.Public()

	r := hashToScalar(prefix[:], message)
	R := ctx.BlindedBasePointMul(&r)
	REnc := edwards25519.Compress(&R)

	h := hashToScalar(REnc[:], pub[:], message)

	var s scalar.Scalar
	s.MulAdd(&h, &a, &r)
	sBytes := s.Bytes()

	var sig [SignatureSize]byte
	copy(sig[:32], REnc[:])
	copy(sig[32:], sBytes[:])
	return sig
}
