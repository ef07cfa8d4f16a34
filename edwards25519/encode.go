package edwards25519

import "github.com/blindcurve/ed25519ct/internal/field"

// Compress returns the standard 32-byte little-endian encoding of p: the
// y-coordinate with the sign of x folded into the top bit, per RFC 8032
// section 5.1.2 (ed25519_PackPoint).
func Compress(p *Point) [32]byte {
	x, y := p.Affine()
	out := y.Bytes()
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// Decompress parses the 32-byte encoding produced by Compress. It reports
// false if b does not encode a valid curve point (y is not below p, or the
// recovered x^2 has no square root), matching
// ed25519_CalculateX/ed25519_UnpackPoint.
func Decompress(b *[32]byte) (Point, bool) {
	parity := uint64(b[31]>>7) & 1
	var y field.Element
	y.SetBytes(b)
	canon := y.Bytes()
	canon[31] |= b[31] & 0x80
	if canon != *b {
		return Point{}, false
	}
	return decompressWithY(&y, parity)
}

// decompressWithY recovers x from y and the requested parity bit of x,
// solving x^2 = (y^2-1)/(d*y^2+1) via the (p-5)/8 exponentiation trick
// from ecp_ModExp2523/ed25519_CalculateX, then correcting the candidate
// root by sqrt(-1) if needed and finally matching parity.
func decompressWithY(y *field.Element, parity uint64) (Point, bool) {
	var u, v, one field.Element
	one = field.One()

	u.Square(y)
	v.Mul(&u, &d)
	u.Sub(&u, &one)
	v.Add(&v, &one)

	// candidate = u*v^3 * (u*v^7)^((p-5)/8)
	var v2, uv3, uv7, x field.Element
	v2.Square(&v)
	uv3.Mul(&u, &v2)
	uv3.Mul(&uv3, &v)
	uv7.Square(&v2)
	uv7.Mul(&uv3, &uv7)
	var root field.Element
	root.PowP58(&uv7)
	x.Mul(&root, &uv3)

	// Check candidate^2 * v == u; if not, try candidate*sqrt(-1).
	var check field.Element
	check.Square(&x)
	check.Mul(&check, &v)
	var diff field.Element
	diff.Sub(&check, &u)
	if !diff.IsZero() {
		var sum field.Element
		sum.Add(&check, &u)
		if !sum.IsZero() {
			return Point{}, false
		}
		x.Mul(&x, &sqrtM1)
	}

	if x.IsZero() && parity == 1 {
		return Point{}, false
	}

	if x.IsNegative() != parity {
		var zero field.Element
		x.Sub(&zero, &x)
	}

	return fromAffine(&x, y), true
}
