package edwards25519

import (
	"crypto/rand"

	"github.com/blindcurve/ed25519ct/internal/scalar"
)

// BlindingContext protects fixed-base scalar multiplication against
// side-channel attacks that profile the multiplier directly: instead of
// computing a*G, it computes (a-bl mod l)*G and adds back the
// precomputed point bl*G. bl is resampled every time NewBlindingContext is
// called. Grounded in ed25519_Blinding_Init/Finish.
type BlindingContext struct {
	// negBl = l - bl, so that a + negBl = a - bl (mod l) using only Add.
	negBl scalar.Scalar
	// blPoint = bl*G, cached in the addition-ready representation.
	blPoint cachedPoint
}

// NewBlindingContext samples a fresh random blind and derives the
// corresponding context. It never returns an error: failure to read the
// system CSPRNG is treated as fatal, matching the library's other uses of
// crypto/rand.
func NewBlindingContext() *BlindingContext {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("edwards25519: failed to read random blind: " + err.Error())
	}
	return newBlindingContextFrom(&seed)
}

func newBlindingContextFrom(seed *[32]byte) *BlindingContext {
	var bl scalar.Scalar
	bl.SetCanonicalBytes(seed)
	reduced := bl.Bytes() // fold an arbitrary 32-byte seed into [0,l)
	bl.SetCanonicalBytes(&reduced)

	var limbs [4]uint64
	blBytes := bl.Bytes()
	limbs = bytesToLimbs(&blBytes)
	blPoint := BasePointMul(&limbs)

	zero := scalar.Zero()
	var negBl scalar.Scalar
	negBl.Sub(&zero, &bl)

	ctx := &BlindingContext{
		negBl:   negBl,
		blPoint: blPoint.toCached(),
	}
	return ctx
}

// bytesToLimbs reinterprets a little-endian 32-byte scalar as four 64-bit
// limbs, the representation the point-multiplication routines consume.
func bytesToLimbs(b *[32]byte) [4]uint64 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		var v uint64
		for j := 7; j >= 0; j-- {
			v = v<<8 | uint64(b[i*8+j])
		}
		limbs[i] = v
	}
	return limbs
}

// BlindedBasePointMul computes a*G using scalar blinding: it masks a as
// a+negBl (mod l), multiplies that by G, then adds back bl*G.
func (ctx *BlindingContext) BlindedBasePointMul(a *scalar.Scalar) Point {
	var masked scalar.Scalar
	masked.Add(a, &ctx.negBl)
	maskedBytes := masked.Bytes()
	limbs := bytesToLimbs(&maskedBytes)
	p := BasePointMul(&limbs)
	p.addCached(&p, &ctx.blPoint)
	return p
}
