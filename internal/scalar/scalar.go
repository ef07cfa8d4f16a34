// Package scalar implements arithmetic in the ring Z/lZ, where l is the
// order of the Ed25519/X25519 base point:
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// Unlike the base field, l has no exploitable bit pattern, so every
// reduction here goes through Montgomery multiplication (CIOS form) rather
// than the pseudo-Mersenne folding used in package field. The layout and
// constants are translated word-for-word from Sotoodeh's curve25519_order,
// widened from eight 32-bit limbs to four 64-bit limbs.
package scalar

import (
	"encoding/binary"
	"math/bits"
)

// Scalar is an integer modulo l, held as four 64-bit little-endian limbs.
type Scalar [4]uint64

// l, the base point order.
var l = Scalar{
	0x5812631a5cf5d3ed, 0x14def9dea2f79cd6,
	0x0000000000000000, 0x1000000000000000,
}

// lMinus2 is l-2 as a big-endian byte string, the exponent used to invert
// via Fermat's little theorem (l is prime).
var lMinus2 = [32]byte{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xeb,
}

// r2 = R^2 mod l, where R = 2^256, used to carry values into Montgomery form.
var r2 = Scalar{
	0xa40611e3449c0f01, 0xd00e1ba768859347,
	0xceec73d217f5be65, 0x0399411b7c309a3d,
}

// one is the multiplicative identity, used to carry values out of
// Montgomery form (a Montgomery multiplication by 1 divides by R).
var one = Scalar{1, 0, 0, 0}

// montMinv = -1/l mod 2^64, the CIOS reduction constant.
const montMinv uint64 = 0xd2b51da312547e1b

// Zero returns the additive identity.
func Zero() Scalar { return Scalar{} }

// One returns the multiplicative identity.
func One() Scalar { return one }

// Set copies x into z.
func (z *Scalar) Set(x *Scalar) *Scalar {
	*z = *x
	return z
}

// Compare returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func Compare(x, y *Scalar) int {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func add4(z, x, y *Scalar) uint64 {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	return c
}

func sub4(z, x, y *Scalar) uint64 {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	return b
}

// reduceOnce subtracts l from z while z >= l. The loop is bounded: every
// caller feeds it a value known to lie within a small constant multiple of
// l (at most a few subtractions), mirroring the bounded correction loop in
// eco_AddReduce/eco_MontMul.
func reduceOnce(z *Scalar) {
	for Compare(z, &l) >= 0 {
		sub4(z, z, &l)
	}
}

// Add sets z = x+y mod l.
func (z *Scalar) Add(x, y *Scalar) *Scalar {
	add4(z, x, y)
	reduceOnce(z)
	return z
}

// Sub sets z = x-y mod l.
func (z *Scalar) Sub(x, y *Scalar) *Scalar {
	b := sub4(z, x, y)
	if b != 0 {
		add4(z, z, &l)
	}
	reduceOnce(z)
	return z
}

// mulAddWords computes z[0:4] = y[0:4] + b*x[0:4] and z[4] = y[4] + carry,
// returning the final carry out of the top word. This is the 64-bit analog
// of eco_WordMulAdd, the inner step of Montgomery multiplication.
func mulAddWords(z *[5]uint64, y *[5]uint64, b uint64, x *[4]uint64) uint64 {
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(b, x[i])
		var c uint64
		lo, c = bits.Add64(lo, y[i], 0)
		hi, _ = bits.Add64(hi, 0, c)
		lo, c = bits.Add64(lo, carry, 0)
		hi, _ = bits.Add64(hi, 0, c)
		z[i] = lo
		carry = hi
	}
	var c uint64
	z[4], c = bits.Add64(y[4], carry, 0)
	return c
}

// montMul sets z = x*y/R mod l (Montgomery multiplication, CIOS form),
// translated from eco_MontMul.
func montMul(z, x, y *Scalar) {
	var t [6]uint64
	for i := 0; i < 4; i++ {
		var yIn, zOut [5]uint64
		copy(yIn[:], t[1:6])
		c1 := mulAddWords(&zOut, &yIn, x[i], (*[4]uint64)(y))
		copy(t[0:5], zOut[:])
		t[5] = c1

		m := montMinv * t[0]
		copy(yIn[:], t[0:5])
		c2 := mulAddWords(&zOut, &yIn, m, (*[4]uint64)(&l))
		copy(t[0:5], zOut[:])
		t[5] += c2
	}
	// t[5] counts how many multiples of 2^256 the six-limb accumulator
	// holds beyond the four result limbs t[1..4]; since rModL = 2^256 mod
	// l (the eco_MontMul constant _w_R), folding it back in is just
	// repeated addition. The C original subtracts 15*l from an 8-word
	// accumulator to the same effect; t[5] is bounded by a small constant
	// (at most 2) so this loop runs a fixed, input-independent number of
	// times for any given bit width of the inputs.
	result := Scalar{t[1], t[2], t[3], t[4]}
	for t[5] != 0 {
		add4(&result, &result, &rModL)
		reduceOnce(&result)
		t[5]--
	}
	reduceOnce(&result)
	*z = result
}

// rModL = 2^256 mod l (eco_MontMul's _w_R constant).
var rModL = Scalar{
	0xd6ec31748d98951d, 0xc6ef5bf4737dcf70,
	0xfffffffffffffffe, 0x0fffffffffffffff,
}

// toMont returns x*R mod l.
func toMont(x *Scalar) Scalar {
	var z Scalar
	montMul(&z, x, &r2)
	return z
}

// fromMont returns x/R mod l.
func fromMont(x *Scalar) Scalar {
	var z Scalar
	montMul(&z, x, &one)
	return z
}

// Mul sets z = x*y mod l.
func (z *Scalar) Mul(x, y *Scalar) *Scalar {
	mx := toMont(x)
	my := toMont(y)
	var prodMont Scalar
	montMul(&prodMont, &mx, &my)
	*z = fromMont(&prodMont)
	return z
}

// MulAdd sets z = a*b+c mod l, the core operation of Ed25519 signing
// (S = r + H(R,A,M)*s mod l).
func (z *Scalar) MulAdd(a, b, c *Scalar) *Scalar {
	var ab Scalar
	ab.Mul(a, b)
	return z.Add(&ab, c)
}

// Invert sets z = 1/x mod l via Fermat's little theorem (x^(l-2)), using
// the square-and-multiply ladder eco_ExpModBPO performs in Montgomery form.
func (z *Scalar) Invert(x *Scalar) *Scalar {
	u := toMont(x)
	v := toMont(&one)
	for _, b := range lMinus2 {
		for bit := 7; bit >= 0; bit-- {
			montMul(&v, &v, &v)
			if (b>>uint(bit))&1 == 1 {
				montMul(&v, &v, &u)
			}
		}
	}
	*z = fromMont(&v)
	return z
}

// IsZero reports whether x is the zero scalar.
func (x *Scalar) IsZero() bool {
	return *x == Scalar{}
}

// SetCanonicalBytes sets z to the little-endian 32-byte encoding b without
// reducing it, so z may hold a value of l or more; Bytes and Mul reduce such
// a value. Callers that must reject non-canonical scalars (e.g. signature
// verification) check IsCanonical first.
func (z *Scalar) SetCanonicalBytes(b *[32]byte) *Scalar {
	z[0] = binary.LittleEndian.Uint64(b[0:8])
	z[1] = binary.LittleEndian.Uint64(b[8:16])
	z[2] = binary.LittleEndian.Uint64(b[16:24])
	z[3] = binary.LittleEndian.Uint64(b[24:32])
	return z
}

// Bytes returns the canonical little-endian 32-byte encoding of x.
func (x *Scalar) Bytes() [32]byte {
	r := *x
	reduceOnce(&r)
	var out [32]byte
	binary.LittleEndian.PutUint64(out[0:8], r[0])
	binary.LittleEndian.PutUint64(out[8:16], r[1])
	binary.LittleEndian.PutUint64(out[16:24], r[2])
	binary.LittleEndian.PutUint64(out[24:32], r[3])
	return out
}

// SetUniformBytes reduces a 64-byte value (typically a SHA-512 digest,
// interpreted little-endian) modulo l, following eco_DigestToWords: writing
// the digest as H*2^256+L, the high half is carried into Montgomery form
// with r2 (since mont(H,R^2) = H*R = H*2^256 mod l) and added to the low
// half.
func (z *Scalar) SetUniformBytes(digest *[64]byte) *Scalar {
	var lo, hi Scalar
	lo[0] = binary.LittleEndian.Uint64(digest[0:8])
	lo[1] = binary.LittleEndian.Uint64(digest[8:16])
	lo[2] = binary.LittleEndian.Uint64(digest[16:24])
	lo[3] = binary.LittleEndian.Uint64(digest[24:32])
	hi[0] = binary.LittleEndian.Uint64(digest[32:40])
	hi[1] = binary.LittleEndian.Uint64(digest[40:48])
	hi[2] = binary.LittleEndian.Uint64(digest[48:56])
	hi[3] = binary.LittleEndian.Uint64(digest[56:64])

	reduceOnce(&lo)
	reduceOnce(&hi)
	var hiR Scalar
	montMul(&hiR, &hi, &r2)
	z.Add(&hiR, &lo)
	return z
}

// IsCanonical reports whether b is the little-endian encoding of a scalar
// strictly less than l, i.e. whether decoding it does not require any
// implicit reduction. Ed25519 signature verification rejects signatures
// whose S component is not canonical.
func IsCanonical(b *[32]byte) bool {
	var v Scalar
	v.SetCanonicalBytes(b)
	return Compare(&v, &l) < 0
}
