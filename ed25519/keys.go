// Package ed25519 implements the Ed25519 signature scheme (RFC 8032) on
// top of packages edwards25519 and scalar. The key derivation and signing
// steps follow Sotoodeh's ed25519_CreateKeyPair/ed25519_SignMessage; the
// verification check follows the simpler sB == R+hA form used by
// zoobc-zed25519's Sign/Verify rather than the combined single-multiply
// form of ed25519_VerifySignature, since it reads closer to RFC 8032's own
// pseudocode.
package ed25519

import (
	"crypto/sha512"
	"errors"

	"github.com/blindcurve/ed25519ct/edwards25519"
	"github.com/blindcurve/ed25519ct/internal/scalar"
)

// PublicKeySize is the size in bytes of an Ed25519 public key.
const PublicKeySize = 32

// PrivateKeySize is the size in bytes of an Ed25519 private key in its
// expanded, on-the-wire form (32-byte seed || 32-byte public key), the
// same layout crypto/ed25519 uses.
const PrivateKeySize = 64

// SignatureSize is the size in bytes of an Ed25519 signature.
const SignatureSize = 64

// SeedSize is the size in bytes of an Ed25519 seed.
const SeedSize = 32

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// PrivateKey is an Ed25519 private key: a 32-byte seed followed by its
// 32-byte public key.
type PrivateKey [PrivateKeySize]byte

// Seed returns the private key's seed, from which a and prefix derive.
func (priv *PrivateKey) Seed() []byte {
	return priv[:32]
}

// Public returns the public key corresponding to priv.
func (priv *PrivateKey) Public() PublicKey {
	var pub PublicKey
	copy(pub[:], priv[32:])
	return pub
}

// expandSecret splits SHA-512(seed) into the clamped scalar a and the
// signing prefix, per RFC 8032 section 5.1.5 (ecp_TrimSecretKey +
// ed25519_CreateKeyPair's md[0:32]/md[32:64] split).
func expandSecret(seed []byte) (a scalar.Scalar, prefix [32]byte) {
	digest := sha512.Sum512(seed)
	var aBytes [32]byte
	copy(aBytes[:], digest[:32])
	aBytes[0] &= 248
	aBytes[31] &= 127
	aBytes[31] |= 64
	a.SetCanonicalBytes(&aBytes)
	copy(prefix[:], digest[32:])
	return
}

// NewKeyFromSeed derives the full (seed, public key) private key from a
// 32-byte seed, matching ed25519_CreateKeyPair.
func NewKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return PrivateKey{}, errors.New("ed25519: bad seed length")
	}
	a, _ := expandSecret(seed)
	aBytes := a.Bytes()
	limbs := bytesToLimbs(&aBytes)
	A := edwards25519.BasePointMul(&limbs)
	pub := edwards25519.Compress(&A)

	var priv PrivateKey
	copy(priv[:32], seed)
	copy(priv[32:], pub[:])
	return priv, nil
}

// GenerateKey generates a fresh Ed25519 key pair using crypto/rand.
func GenerateKey() (PublicKey, PrivateKey, error) {
	var seed [32]byte
	if err := readRandom(seed[:]); err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	priv, err := NewKeyFromSeed(seed[:])
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	return priv.Public(), priv, nil
}

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
