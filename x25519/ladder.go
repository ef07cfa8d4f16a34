// Package x25519 implements the X25519 Diffie-Hellman function over
// Curve25519 (RFC 7748), using the Montgomery ladder in X-only (X,Z)
// projective coordinates. The per-step doubling/add formulas are the same
// ones Sotoodeh's ecp_MontDouble/ecp_Mont compute; the ladder here drives
// them with RFC 7748's reference cswap structure rather than that source's
// pointer-indirection trick, so every scalar takes the identical sequence
// of field operations regardless of its bit pattern.
package x25519

import "github.com/blindcurve/ed25519ct/internal/field"

// a24 = (486662-2)/4 = 121665, the Montgomery curve coefficient folded
// into the doubling/add formulas.
const a24 = 121665

// ladder computes scalar*baseX, where scalar is a clamped 255-bit exponent
// held in a field.Element purely as a bit container (it is never reduced
// mod p) and baseX is the Montgomery u-coordinate of the input point.
func ladder(scalarBits *field.Element, baseX *field.Element) field.Element {
	x1 := *baseX
	x2 := field.One()
	var z2 field.Element
	x3 := *baseX
	z3 := field.One()

	var swap uint64
	for t := 254; t >= 0; t-- {
		kt := bitAt(scalarBits, t)
		swap ^= kt
		field.CondSwap(&x2, &x3, swap)
		field.CondSwap(&z2, &z3, swap)
		swap = kt

		var a, aa, b, bb, e, c, dd, da, cb field.Element
		a.Add(&x2, &z2)
		aa.Square(&a)
		b.Sub(&x2, &z2)
		bb.Square(&b)
		e.Sub(&aa, &bb)
		c.Add(&x3, &z3)
		dd.Sub(&x3, &z3)
		da.Mul(&dd, &a)
		cb.Mul(&c, &b)

		var sum, diff field.Element
		sum.Add(&da, &cb)
		x3.Square(&sum)
		diff.Sub(&da, &cb)
		diff.Square(&diff)
		z3.Mul(&x1, &diff)

		x2.Mul(&aa, &bb)
		var aE field.Element
		aE.WordMulAdd(&aa, a24, &e)
		z2.Mul(&e, &aE)
	}
	field.CondSwap(&x2, &x3, swap)
	field.CondSwap(&z2, &z3, swap)

	var zInv, out field.Element
	zInv.Invert(&z2)
	out.Mul(&x2, &zInv)
	return out
}

// bitAt returns bit i (0-254) of the little-endian field element e,
// treated as a plain integer rather than a field residue.
func bitAt(e *field.Element, i int) uint64 {
	limb := i / 64
	bit := uint(i % 64)
	return (e[limb] >> bit) & 1
}
