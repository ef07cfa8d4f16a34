package edwards25519

// DualBaseMul computes a*G + b*Q for the standard generator G and an
// arbitrary point Q, given both scalars as four little-endian 64-bit
// limbs. This is the variable-base "Shamir's trick" multiplication used by
// signature verification (edp_PolyPointMultiply / edp_dual_mul_byte):
// rather than a generic width-4 windowed NAF, it reuses the same FOLDING
// table structure as fixed-base multiplication, built once per public key
// in NewVerifyTable.
func DualBaseMul(a *[4]uint64, b *[4]uint64, qTable *foldTable) Point {
	s := Identity()
	var ca, cb cachedPoint

	for i := int(63); i >= 0; i-- {
		if i != 63 {
			s.Double(&s)
		}
		selectCached(&ca, baseFoldTable, nibbleAt(a, uint(i)))
		s.addCached(&s, &ca)
		selectCached(&cb, qTable, nibbleAt(b, uint(i)))
		s.addCached(&s, &cb)
	}
	return s
}

// NewVerifyTable builds the folding table for an arbitrary point Q (a
// signer's public key, typically), for use with DualBaseMul.
func NewVerifyTable(q *Point) *foldTable {
	return buildFoldTable(q)
}
