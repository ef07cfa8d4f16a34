package x25519

import (
	"crypto/rand"
	"errors"

	"github.com/blindcurve/ed25519ct/internal/field"
)

// ScalarSize is the size in bytes of an X25519 scalar (private key).
const ScalarSize = 32

// ErrLowOrderInput is returned by SharedSecret when the peer's public
// value is a known low-order point, which would make the resulting shared
// secret predictable (RFC 7748 section 6.1 recommends checking for this).
var ErrLowOrderInput = errors.New("x25519: peer public value is a low-order point")

// basePoint is the little-endian encoding of the X25519 base point, u=9.
var basePoint = [32]byte{9}

// clamp applies the RFC 7748 clamping operation to a 32-byte scalar in
// place: clear the low 3 bits, clear the top bit, set the second-highest
// bit. This fixes the scalar's bit length (defeating small-subgroup
// timing leaks in implementations that branch on it) and forces it to be
// a multiple of the cofactor 8.
func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// NewPrivateKey generates a random, clamped X25519 private scalar.
func NewPrivateKey() (*[32]byte, error) {
	var k [32]byte
	if _, err := rand.Read(k[:]); err != nil {
		return nil, err
	}
	clamp(&k)
	return &k, nil
}

// PublicKey computes the X25519 public value for privateKey, i.e.
// privateKey*9.
func PublicKey(privateKey *[32]byte) [32]byte {
	return ScalarMult(privateKey, &basePoint)
}

// ScalarMult computes scalar*point, where point is the little-endian
// encoding of a Montgomery u-coordinate. scalar is clamped internally, as
// RFC 7748 requires; passing an already-clamped scalar is harmless since
// clamping is idempotent on the bits it touches.
func ScalarMult(scalar *[32]byte, point *[32]byte) [32]byte {
	var k [32]byte
	copy(k[:], scalar[:])
	clamp(&k)

	var kBits field.Element
	kBits.SetBytes(&k) // bit 255 is always 0 after clamping, so no masking is lost here

	var u field.Element
	u.SetBytes(point) // RFC 7748: the top bit of the encoded u-coordinate is ignored on decode

	out := ladder(&kBits, &u)
	return out.Bytes()
}

// SharedSecret computes the X25519 shared secret for a local private
// scalar and a peer's public value, rejecting known low-order inputs.
func SharedSecret(privateKey *[32]byte, peerPublic *[32]byte) ([32]byte, error) {
	if isLowOrder(peerPublic) {
		return [32]byte{}, ErrLowOrderInput
	}
	return ScalarMult(privateKey, peerPublic), nil
}

// lowOrderU values are the u-coordinates of points of order 1, 2, 4 and 8
// on the curve and its twist (RFC 7748 section 6.1), whose presence as a
// peer's public value would make SharedSecret return an
// attacker-predictable constant.
var lowOrderU = [][32]byte{
	{0}, // 0
	{1}, // 1
	{0xe0, 0xeb, 0x7a, 0x7c, 0x3b, 0x41, 0xb8, 0xae, 0x16, 0x56, 0xe3, 0xfa, 0xf1, 0x9f, 0xc4, 0x6a,
		0xda, 0x09, 0x8d, 0xeb, 0x9c, 0x32, 0xb1, 0xfd, 0x86, 0x62, 0x05, 0x16, 0x5f, 0x49, 0xb8, 0x00},
	{0x5f, 0x9c, 0x95, 0xbc, 0xa3, 0x50, 0x8c, 0x24, 0xb1, 0xd0, 0xb1, 0x55, 0x9c, 0x83, 0xef, 0x5b,
		0x04, 0x44, 0x5c, 0xc4, 0x58, 0x1c, 0x8e, 0x86, 0xd8, 0x22, 0x4e, 0xdd, 0xd0, 0x9f, 0x11, 0x57},
}

func isLowOrder(u *[32]byte) bool {
	var candidate [32]byte
	copy(candidate[:], u[:])
	candidate[31] &= 0x7F // ignore the reserved top bit per RFC 7748
	for _, lo := range lowOrderU {
		if candidate == lo {
			return true
		}
	}
	return false
}
