package ed25519

import (
	"github.com/blindcurve/ed25519ct/edwards25519"
	"github.com/blindcurve/ed25519ct/internal/scalar"
)

// Verify reports whether sig is a valid Ed25519 signature of message by
// the holder of pub. It rejects signatures with a non-canonical S
// component or a reserved high bit, per RFC 8032 section 5.1.7.
func Verify(pub *PublicKey, message []byte, sig *[SignatureSize]byte) bool {
	if sig[63]&0xE0 != 0 {
		return false
	}
	var sBytes [32]byte
	copy(sBytes[:], sig[32:])
	if !scalar.IsCanonical(&sBytes) {
		return false
	}

	var REnc [32]byte
	copy(REnc[:], sig[:32])
	R, ok := edwards25519.Decompress(&REnc)
	if !ok {
		return false
	}

	var pubEnc [32]byte
	copy(pubEnc[:], pub[:])
	A, ok := edwards25519.Decompress(&pubEnc)
	if !ok {
		return false
	}

	h := hashToScalar(REnc[:], pub[:], message)
	hBytes := h.Bytes()
	hLimbs := bytesToLimbs(&hBytes)
	sLimbs := bytesToLimbs(&sBytes)

	// sB = s*G, hA = h*A (computed via A's own fold table, built once per
	// verification the way ed25519_Verify_Init builds q_table per key).
	sB := edwards25519.BasePointMul(&sLimbs)
	qTable := edwards25519.NewVerifyTable(&A)
	var zeroLimbs [4]uint64
	hA := edwards25519.DualBaseMul(&zeroLimbs, &hLimbs, qTable)

	var rhA edwards25519.Point
	rhA.Add(&R, &hA)

	return sB.Equal(&rhA)
}
