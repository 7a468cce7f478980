package crypto

import (
	"crypto/ed25519"
	"fmt"
)

const (
	SeedSize       = ed25519.SeedSize
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize
)

type (
	// Seed is the 32 bytes of entropy a keypair is derived from.
	Seed [SeedSize]byte
	// PublicKey is a raw Ed25519 public key.
	PublicKey [PublicKeySize]byte
	// PrivateKey holds seed||publicKey, the layout crypto/ed25519 expects.
	PrivateKey [PrivateKeySize]byte
	// Signature is a detached Ed25519 signature.
	Signature [SignatureSize]byte
)

// Keypair is owned by the caller once returned; the service keeps no reference.
type Keypair struct {
	PublicKey  PublicKey
	PrivateKey PrivateKey
}

// SeedFromBytes copies b into a Seed after checking its length.
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if b == nil {
		return s, fmt.Errorf("%w: seed is required", ErrInvalidSeed)
	}
	if len(b) != SeedSize {
		return s, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, SeedSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// PublicKeyFromBytes copies b into a PublicKey after checking its length.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != PublicKeySize {
		return k, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidKeyType, PublicKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// PrivateKeyFromBytes copies b into a PrivateKey after checking its length.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != PrivateKeySize {
		return k, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidKeyType, PrivateKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// SignatureFromBytes copies b into a Signature after checking its length.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrInvalidSignatureType, SignatureSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

func (s Seed) Bytes() []byte       { return clone(s[:]) }
func (k PublicKey) Bytes() []byte  { return clone(k[:]) }
func (k PrivateKey) Bytes() []byte { return clone(k[:]) }
func (s Signature) Bytes() []byte  { return clone(s[:]) }

// Seed returns the seed component of the private key.
func (k PrivateKey) Seed() Seed {
	var s Seed
	copy(s[:], k[:SeedSize])
	return s
}

// Public returns the public key component of the private key.
func (k PrivateKey) Public() PublicKey {
	var p PublicKey
	copy(p[:], k[SeedSize:])
	return p
}

// String keeps key material out of logs and fmt output.
func (s Seed) String() string       { return "ed25519.Seed(redacted)" }
func (k PrivateKey) String() string { return "ed25519.PrivateKey(redacted)" }

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
