package ed25519

import (
	"errors"

	"github.com/blindcurve/ed25519ct/edwards25519"
	"github.com/blindcurve/ed25519ct/internal/scalar"
)

// VerifyContext holds a public key's decompressed point and its
// precomputed folding table, amortizing ed25519_Verify_Init's q_table
// construction across many signature checks against the same key.
type VerifyContext struct {
	pub   PublicKey
	table *edwards25519.FoldTable
}

// NewVerifyContext decodes pub and builds its verification table once, per
// ed25519_Verify_Init, for reuse across many VerifyWithContext calls.
func NewVerifyContext(pub *PublicKey) (*VerifyContext, error) {
	var pubEnc [32]byte
	copy(pubEnc[:], pub[:])
	A, ok := edwards25519.Decompress(&pubEnc)
	if !ok {
		return nil, errors.New("ed25519: invalid public key")
	}
	return &VerifyContext{
		pub:   *pub,
		table: edwards25519.NewVerifyTable(&A),
	}, nil
}

// VerifyWithContext checks sig over message using a context built by
// NewVerifyContext, amortizing the public key's decompression and
// folding-table construction across repeated checks (ed25519_Verify_Check).
func (ctx *VerifyContext) VerifyWithContext(message []byte, sig *[SignatureSize]byte) bool {
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

	h := hashToScalar(REnc[:], ctx.pub[:], message)
	hBytes := h.Bytes()
	hLimbs := bytesToLimbs(&hBytes)
	sLimbs := bytesToLimbs(&sBytes)

	sB := edwards25519.BasePointMul(&sLimbs)
	var zeroLimbs [4]uint64
	hA := edwards25519.DualBaseMul(&zeroLimbs, &hLimbs, ctx.table)

	var rhA edwards25519.Point
	rhA.Add(&R, &hA)

	return sB.Equal(&rhA)
}
