// Package field implements arithmetic in the prime field GF(p), p = 2^255-19,
// the base field of Curve25519 and Ed25519.
//
// The implementation follows the limb layout and reduction strategy of
// Sotoodeh's curve25519_mehdi (four 64-bit limbs, pseudo-Mersenne folding
// reduction, and the djb addition-chain inverse) translated from the
// word-oriented C into the carry-chain idioms of math/bits.
package field

import "math/bits"

// Element is a field element modulo p = 2^255-19, held as four 64-bit
// little-endian limbs. Values produced by Add, Sub, Mul and Square fit in
// 256 bits but are not necessarily canonically reduced (< p); callers that
// need a canonical representative must call Reduce (or Bytes, which reduces
// internally) before comparing or exporting.
type Element [4]uint64

// p = 2^255 - 19
var p = Element{
	0xFFFFFFFFFFFFFFED, 0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF,
}

// twoP = 2p, the largest multiple of p that fits in 256 bits.
var twoP = Element{
	0xFFFFFFFFFFFFFFDA, 0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
}

// SqrtM1 = sqrt(-1) mod p, used to fix the sign of square roots during point
// decoding.
var SqrtM1 = Element{
	0xC4EE1B274A0EA0B0, 0x2F431806AD2FE478,
	0x2B4D00993DFBD7A7, 0x2B8324804FC1DF0B,
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element { return Element{1, 0, 0, 0} }

// SetValue sets z to a small non-negative constant.
func (z *Element) SetValue(v uint64) *Element {
	z[0], z[1], z[2], z[3] = v, 0, 0, 0
	return z
}

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// add4 computes z = x+y over plain 256-bit words and returns the carry out.
func add4(z, x, y *Element) uint64 {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	return c
}

// sub4 computes z = x-y over plain 256-bit words and returns the borrow.
func sub4(z, x, y *Element) uint64 {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	return b
}

// Add sets z = x+y mod p. The result fits in 256 bits but is not necessarily
// the canonical representative.
func (z *Element) Add(x, y *Element) *Element {
	c := add4(z, x, y)
	thirtyEight := Element{38, 0, 0, 0}
	for c != 0 {
		c = add4(z, z, &thirtyEight)
	}
	return z
}

// Sub sets z = x-y mod p.
func (z *Element) Sub(x, y *Element) *Element {
	b := sub4(z, x, y)
	if b != 0 {
		add4(z, z, &twoP)
	}
	return z
}

// mulWords computes the full 512-bit product t = x*y as eight 64-bit limbs,
// least-significant first, using schoolbook multiplication.
func mulWords(x, y *Element) (t [8]uint64) {
	for i := 0; i < 4; i++ {
		var carry uint64
		xi := x[i]
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(xi, y[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			t[i+j] = lo
			carry = hi
		}
		t[i+4] += carry
	}
	return t
}

// wordMulAdd computes z = y + b*x (with x a 4-limb value, b a single 64-bit
// word), folding any overflow past 256 bits back in by the identity
// 2^256 = 38 (mod p). This is the pseudo-Mersenne fold at the heart of every
// reduction in this package, mirroring ecp_WordMulAdd in curve25519_mehdi.
func wordMulAdd(z, y *Element, b uint64, x *Element) {
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
	for carry != 0 {
		hi, lo := bits.Mul64(carry, 38)
		var c uint64
		z[0], c = bits.Add64(z[0], lo, 0)
		i := 1
		for c != 0 && i < 4 {
			z[i], c = bits.Add64(z[i], 0, c)
			i++
		}
		carry = hi + c
	}
}

// WordMulAdd sets z = y + b*x mod p for a single-word multiplier b. Used for
// the Montgomery-curve constant 121665 and related small-scalar folds.
func (z *Element) WordMulAdd(y *Element, b uint64, x *Element) *Element {
	wordMulAdd(z, y, b, x)
	return z
}

// Mul sets z = x*y mod p.
func (z *Element) Mul(x, y *Element) *Element {
	t := mulWords(x, y)
	lo := Element{t[0], t[1], t[2], t[3]}
	hi := Element{t[4], t[5], t[6], t[7]}
	wordMulAdd(z, &lo, 38, &hi)
	return z
}

// Square sets z = x*x mod p. Shares the multiply code path; a dedicated
// squaring routine would save roughly a third of the partial products but
// is not required for correctness.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Compare returns -1, 0 or +1 as x and y, read as plain 256-bit integers,
// are less than, equal to, or greater than each other. It does not reduce
// its inputs, so it orders canonical representatives only when both x and
// y are already reduced.
func Compare(x, y *Element) int {
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

// Reduce sets z to the canonical representative of x, i.e. x mod p with
// 0 <= z < p. x may be up to 2p (the widest value any operation in this
// package produces); the subtractive loop is bounded by two iterations.
func (z *Element) Reduce(x *Element) *Element {
	*z = *x
	for Compare(z, &p) >= 0 {
		sub4(z, z, &p)
	}
	return z
}

// IsZero reports whether the canonical representative of x is zero.
func (x *Element) IsZero() bool {
	var r Element
	r.Reduce(x)
	return r == Element{}
}

// CondSwap swaps x and y in constant time if swap is 1, and leaves them
// untouched if swap is 0. swap must be 0 or 1.
func CondSwap(x, y *Element, swap uint64) {
	mask := -swap
	for i := 0; i < 4; i++ {
		t := mask & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// CondNegate sets x to -x mod p in constant time if neg is 1, and leaves it
// untouched if neg is 0.
func CondNegate(x *Element, neg uint64) {
	var negated Element
	negated.Sub(&p, x)
	CondSelect(x, x, &negated, neg)
}

// CondSelect sets z to y if cond == 1, or x if cond == 0. cond must be 0 or 1.
func CondSelect(z, x, y *Element, cond uint64) {
	mask := -cond
	for i := 0; i < 4; i++ {
		z[i] = x[i] ^ (mask & (x[i] ^ y[i]))
	}
}

// Invert sets z = 1/x mod p using the djb squaring-chain addition chain:
// 254 field squarings and 11 multiplications, a fixed-shape program
// independent of the input and therefore constant-time by construction.
func (z *Element) Invert(x *Element) *Element {
	var t0, t1, z2, z9, z11 Element
	var z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0 Element

	z2.Square(x)
	t1.Square(&z2)
	t0.Square(&t1)
	z9.Mul(&t0, x)
	z11.Mul(&z9, &z2)
	t0.Square(&z11)
	z2_5_0.Mul(&t0, &z9)

	// 2^6-2^1 .. 2^10-2^5, then 2^10-2^0
	t0.Square(&z2_5_0)
	t1.Square(&t0)
	t0.Square(&t1)
	t1.Square(&t0)
	t0.Square(&t1)
	z2_10_0.Mul(&t0, &z2_5_0)

	// 2^11-2^1, 2^12-2^2, then 2^20-2^10 (4 double-squarings), then 2^20-2^0
	t0.Square(&z2_10_0)
	t1.Square(&t0)
	for i := 2; i < 10; i += 2 {
		t0.Square(&t1)
		t1.Square(&t0)
	}
	z2_20_0.Mul(&t1, &z2_10_0)

	// 2^21-2^1, 2^22-2^2, then 2^40-2^20 (9 double-squarings), then 2^40-2^0
	t0.Square(&z2_20_0)
	t1.Square(&t0)
	for i := 2; i < 20; i += 2 {
		t0.Square(&t1)
		t1.Square(&t0)
	}
	t0.Mul(&t1, &z2_20_0)

	// 2^41-2^1, 2^42-2^2, then 2^50-2^10 (4 double-squarings), then 2^50-2^0
	t1.Square(&t0)
	t0.Square(&t1)
	for i := 2; i < 10; i += 2 {
		t1.Square(&t0)
		t0.Square(&t1)
	}
	z2_50_0.Mul(&t0, &z2_10_0)

	// 2^51-2^1, 2^52-2^2, then 2^100-2^50 (24 double-squarings), then 2^100-2^0
	t0.Square(&z2_50_0)
	t1.Square(&t0)
	for i := 2; i < 50; i += 2 {
		t0.Square(&t1)
		t1.Square(&t0)
	}
	z2_100_0.Mul(&t1, &z2_50_0)

	// 2^101-2^1, 2^102-2^2, then 2^200-2^100 (49 double-squarings), then 2^200-2^0
	t1.Square(&z2_100_0)
	t0.Square(&t1)
	for i := 2; i < 100; i += 2 {
		t1.Square(&t0)
		t0.Square(&t1)
	}
	t1.Mul(&t0, &z2_100_0)

	// 2^201-2^1, 2^202-2^2, then 2^250-2^50 (24 double-squarings), then 2^250-2^0
	t0.Square(&t1)
	t1.Square(&t0)
	for i := 2; i < 50; i += 2 {
		t0.Square(&t1)
		t1.Square(&t0)
	}
	t0.Mul(&t1, &z2_50_0)

	// 2^251-2^1 .. 2^255-2^5, then 2^255-21
	t1.Square(&t0)
	t0.Square(&t1)
	t1.Square(&t0)
	t0.Square(&t1)
	t1.Square(&t0)
	z.Mul(&t1, &z11)
	return z
}

// PowP58 sets z = x^((p-5)/8) mod p, the fixed addition chain used by
// Ed25519 point decompression to extract a square root candidate.
func (z *Element) PowP58(x *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(x)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Mul(x, &t1)
	t0.Mul(&t0, &t1)
	t0.Square(&t0)
	t0.Mul(&t1, &t0)

	t1.Square(&t0)
	for i := 1; i < 5; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)

	t1.Square(&t0)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)

	t2.Square(&t1)
	for i := 1; i < 20; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)

	t1.Square(&t1)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)

	t1.Square(&t0)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)

	t2.Square(&t1)
	for i := 1; i < 100; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)

	t1.Square(&t1)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)

	t0.Square(&t0)
	t0.Square(&t0)
	z.Mul(&t0, x)
	return z
}
