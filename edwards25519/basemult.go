package edwards25519

import "github.com/blindcurve/ed25519ct/internal/field"

// foldTable holds the 16 subset sums of {P, 2^64*P, 2^128*P, 2^192*P} for
// some point P, indexed by a 4-bit nibble whose bits select which of the
// four multiples to include. This is Sotoodeh's FOLDING technique
// (_w_basepoint_perm64 for the fixed base point; the same construction is
// used at verification time for the signer's public key, ctx->q_table in
// ed25519_Verify_Init).
//
// The table is built at runtime by repeated doubling/addition rather than
// hard-coded as 16 literal points, since transcribing 16 affine
// coordinate pairs by hand is not a safe way to introduce a cryptographic
// constant; the doubling construction is exactly what the reference
// implementation uses to build its own q_table for a fresh point.
type foldTable [16]cachedPoint

// FoldTable is the exported name for a point's precomputed folding table,
// returned by NewVerifyTable so callers can cache it across repeated
// verifications against the same key (ctx->q_table in ed25519_Verify_Init).
type FoldTable = foldTable

// buildFoldTable computes the 16-entry folding table for base point p.
func buildFoldTable(p *Point) *foldTable {
	var t foldTable

	id := Identity()
	t[0] = id.toCached()

	p0 := *p
	t[1] = p0.toCached()

	p1 := p0
	for i := 0; i < 64; i++ {
		p1.Double(&p1)
	}
	t[2] = p1.toCached()
	t[3] = addToCached(&p1, &t[1])

	p2 := p1
	for i := 0; i < 64; i++ {
		p2.Double(&p2)
	}
	t[4] = p2.toCached()
	t[5] = addToCached(&p2, &t[1])
	t[6] = addToCached(&p2, &t[2])
	t[7] = addToCached(&p2, &t[3])

	p3 := p2
	for i := 0; i < 64; i++ {
		p3.Double(&p3)
	}
	t[8] = p3.toCached()
	t[9] = addToCached(&p3, &t[1])
	t[10] = addToCached(&p3, &t[2])
	t[11] = addToCached(&p3, &t[3])
	t[12] = addToCached(&p3, &t[4])
	t[13] = addToCached(&p3, &t[5])
	t[14] = addToCached(&p3, &t[6])
	t[15] = addToCached(&p3, &t[7])

	return &t
}

// addToCached returns (base+offset) in cached form, where offset is itself
// already a cached point.
func addToCached(base *Point, offset *cachedPoint) cachedPoint {
	var sum Point
	sum.addCached(base, offset)
	return sum.toCached()
}

// baseFoldTable is the folding table for the standard generator, computed
// once at package initialization.
var baseFoldTable *foldTable

func init() {
	g := Generator()
	baseFoldTable = buildFoldTable(&g)
}

// nibbleAt returns bit i (0-63) of each of the four 64-bit limbs of s,
// packed as a 4-bit value: bit 0 from limb 0, bit 1 from limb 1, and so on.
// limb j of a 256-bit scalar represents the coefficient of 2^(64*j), so
// this nibble is exactly the FOLDING decomposition used by foldTable.
func nibbleAt(limbs *[4]uint64, i uint) uint64 {
	var n uint64
	for j := 0; j < 4; j++ {
		n |= ((limbs[j] >> i) & 1) << uint(j)
	}
	return n
}

// selectCached sets out to table[idx] in constant time (idx in 0..15),
// folding across all 16 entries with an equality mask so the memory access
// pattern does not depend on idx.
func selectCached(out *cachedPoint, table *foldTable, idx uint64) {
	*out = table[0]
	for i := 0; i < 16; i++ {
		mask := ctEq(uint64(i), idx)
		field.CondSelect(&out.YpX, &out.YpX, &table[i].YpX, mask)
		field.CondSelect(&out.YmX, &out.YmX, &table[i].YmX, mask)
		field.CondSelect(&out.T2d, &out.T2d, &table[i].T2d, mask)
		field.CondSelect(&out.Z2, &out.Z2, &table[i].Z2, mask)
	}
}

// ctEq returns 1 if a == b, 0 otherwise, without branching on the values.
func ctEq(a, b uint64) uint64 {
	x := a ^ b
	x |= x >> 32
	x |= x >> 16
	x |= x >> 8
	x |= x >> 4
	x |= x >> 2
	x |= x >> 1
	return (x & 1) ^ 1
}

// foldMultiply computes s*P given P's folding table, processing the
// scalar's four 64-bit limbs in lockstep, 64 double-and-add steps total
// (edp_BasePointMult generalized to an arbitrary base).
func foldMultiply(table *foldTable, limbs *[4]uint64) Point {
	s := Identity()
	var c cachedPoint
	selectCached(&c, table, nibbleAt(limbs, 63))
	s.addCached(&s, &c)

	for i := int(62); i >= 0; i-- {
		s.Double(&s)
		selectCached(&c, table, nibbleAt(limbs, uint(i)))
		s.addCached(&s, &c)
	}
	return s
}

// BasePointMul computes s*G for the standard generator G, where s is given
// as four little-endian 64-bit limbs (i.e. the scalar in the internal
// scalar package's representation).
func BasePointMul(limbs *[4]uint64) Point {
	return foldMultiply(baseFoldTable, limbs)
}
