package field

import "encoding/binary"

// SetBytes sets z to the value of the little-endian 32-byte encoding b,
// masking off the top bit (used by Ed25519 to carry a sign/parity bit
// alongside the 255-bit y-coordinate). The result is not reduced mod p;
// callers that need a canonical value should call Reduce.
func (z *Element) SetBytes(b *[32]byte) *Element {
	var buf [32]byte
	copy(buf[:], b[:])
	buf[31] &= 0x7F
	z[0] = binary.LittleEndian.Uint64(buf[0:8])
	z[1] = binary.LittleEndian.Uint64(buf[8:16])
	z[2] = binary.LittleEndian.Uint64(buf[16:24])
	z[3] = binary.LittleEndian.Uint64(buf[24:32])
	return z
}

// Bytes returns the canonical little-endian 32-byte encoding of x, i.e. the
// encoding of x reduced mod p. Bit 255 (the top bit of the last byte) is
// always zero; callers that need to fold in a sign bit should OR it in
// afterwards.
func (x *Element) Bytes() [32]byte {
	var r Element
	r.Reduce(x)
	var out [32]byte
	binary.LittleEndian.PutUint64(out[0:8], r[0])
	binary.LittleEndian.PutUint64(out[8:16], r[1])
	binary.LittleEndian.PutUint64(out[16:24], r[2])
	binary.LittleEndian.PutUint64(out[24:32], r[3])
	return out
}

// IsNegative returns 1 if the canonical representative of x is odd
// (treated as the element's "sign" per RFC 8032's encoding convention),
// and 0 otherwise.
func (x *Element) IsNegative() uint64 {
	var r Element
	r.Reduce(x)
	return r[0] & 1
}
