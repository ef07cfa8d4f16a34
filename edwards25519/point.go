// Package edwards25519 implements group operations on the twisted Edwards
// curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2   (mod p, p = 2^255-19)
//
// that is birationally equivalent to the Montgomery curve used by X25519,
// and is the curve Ed25519 signs over. Points are held in extended
// projective coordinates (X:Y:Z:T) with x=X/Z, y=Y/Z, xy=T/Z, following
// Hisil-Wong-Carter-Dawson's "add-2008-hwcd" formulas as translated by
// Sotoodeh's curve25519_mehdi (edp_AddPoint/edp_DoublePoint).
package edwards25519

import "github.com/blindcurve/ed25519ct/internal/field"

// Point is a point on the curve in extended projective coordinates.
// The zero value is not a valid point; use Identity or Generator.
type Point struct {
	X, Y, Z, T field.Element
}

// d = -121665/121666 mod p, the curve's twist coefficient. Computed at
// package init from the small integer constants rather than transcribed as
// a literal, to avoid a transposed-digit error in a 64-hex-digit constant.
// Package-level initializers run before every init function, so d and d2
// are ready when basemult.go's init builds the base-point table.
var d = func() field.Element {
	var a, b, inv121666, r field.Element
	a.SetValue(121665)
	b.SetValue(121666)
	inv121666.Invert(&b)
	r.Mul(&a, &inv121666)
	var zero field.Element
	r.Sub(&zero, &r)
	return r
}()

// d2 = 2*d, used throughout the addition formulas.
var d2 = func() field.Element {
	var r field.Element
	r.Add(&d, &d)
	return r
}()

// sqrtM1 re-exported from field for point decompression.
var sqrtM1 = field.SqrtM1

// Identity returns the neutral element (0,1).
func Identity() Point {
	var p Point
	p.Y = field.One()
	p.Z = field.One()
	return p
}

// Generator returns the standard Ed25519 base point, whose y-coordinate is
// 4/5 mod p and whose x-coordinate is the even (parity 0) square root of
// (y^2-1)/(d*y^2+1). Computed via decompression rather than transcribed, to
// avoid an error in a 64-hex-digit literal.
func Generator() Point {
	var four, five, y field.Element
	four.SetValue(4)
	five.SetValue(5)
	var invFive field.Element
	invFive.Invert(&five)
	y.Mul(&four, &invFive)

	var p Point
	var ok bool
	p, ok = decompressWithY(&y, 0)
	if !ok {
		panic("edwards25519: generator point failed to decompress")
	}
	return p
}

// cachedPoint holds a point in the precomputed form consumed by the
// addition formula: YpX=Y+X, YmX=Y-X, T2d=T*2d, Z2=2*Z. This mirrors
// Sotoodeh's PE_POINT / edp_ExtPoint2PE.
type cachedPoint struct {
	YpX, YmX, T2d, Z2 field.Element
}

// toCached converts p to its cached representation.
func (p *Point) toCached() cachedPoint {
	var c cachedPoint
	c.YpX.Add(&p.Y, &p.X)
	c.YmX.Sub(&p.Y, &p.X)
	c.T2d.Mul(&p.T, &d2)
	c.Z2.Add(&p.Z, &p.Z)
	return c
}

// addCached sets r = p+q, where q has been precomputed with toCached.
// Cost: 8M + 6add (edp_AddPoint).
func (r *Point) addCached(p *Point, q *cachedPoint) *Point {
	var a, b, c, dd, e, f, g, h field.Element

	a.Sub(&p.Y, &p.X)
	a.Mul(&a, &q.YmX)
	b.Add(&p.Y, &p.X)
	b.Mul(&b, &q.YpX)
	c.Mul(&p.T, &q.T2d)
	dd.Mul(&p.Z, &q.Z2)
	e.Sub(&b, &a)
	h.Add(&b, &a)
	f.Sub(&dd, &c)
	g.Add(&dd, &c)

	r.X.Mul(&e, &f)
	r.Y.Mul(&h, &g)
	r.T.Mul(&e, &h)
	r.Z.Mul(&g, &f)
	return r
}

// Add sets r = p+q for two arbitrary points in extended coordinates.
func (r *Point) Add(p, q *Point) *Point {
	c := q.toCached()
	return r.addCached(p, &c)
}

// Double sets r = 2*p. Cost: 4M + 4S + 7add (edp_DoublePoint).
func (r *Point) Double(p *Point) *Point {
	var a, b, c, dd, e, f, g, h field.Element

	a.Square(&p.X)
	b.Square(&p.Y)
	c.Square(&p.Z)
	c.Add(&c, &c)
	dd.Sub(&field.Element{}, &a) // D = -A, since the curve's a-coefficient is -1

	h.Sub(&dd, &b)
	g.Add(&dd, &b)
	f.Sub(&g, &c)
	e.Add(&p.X, &p.Y)
	e.Square(&e)
	e.Add(&e, &h)

	r.X.Mul(&e, &f)
	r.Y.Mul(&h, &g)
	r.Z.Mul(&g, &f)
	r.T.Mul(&e, &h)
	return r
}

// Negate sets r = -p.
func (r *Point) Negate(p *Point) *Point {
	var zero field.Element
	r.X.Sub(&zero, &p.X)
	r.Y = p.Y
	r.Z = p.Z
	r.T.Sub(&zero, &p.T)
	return r
}

// Equal reports whether p and q represent the same curve point, comparing
// via cross-multiplication so that differing but proportional projective
// representatives still compare equal.
func (p *Point) Equal(q *Point) bool {
	var lx, rx, ly, ry field.Element
	lx.Mul(&p.X, &q.Z)
	rx.Mul(&q.X, &p.Z)
	ly.Mul(&p.Y, &q.Z)
	ry.Mul(&q.Y, &p.Z)
	var rlx, rrx, rly, rry field.Element
	rlx.Reduce(&lx)
	rrx.Reduce(&rx)
	rly.Reduce(&ly)
	rry.Reduce(&ry)
	return rlx == rrx && rly == rry
}

// Affine returns the affine (x,y) coordinates of p.
func (p *Point) Affine() (x, y field.Element) {
	var zInv field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)
	return
}

// fromAffine builds an extended-coordinate point from affine (x,y).
func fromAffine(x, y *field.Element) Point {
	var p Point
	p.X = *x
	p.Y = *y
	p.Z = field.One()
	p.T.Mul(x, y)
	return p
}
