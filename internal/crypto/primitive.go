package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/hdevalence/ed25519consensus"
)

//go:generate mockgen -source=primitive.go -destination=primitive_mock_test.go -package=crypto

// Primitive is the trusted Ed25519 implementation the service delegates to.
// Callers guarantee argument sizes; implementations do no validation.
type Primitive interface {
	KeypairFromSeed(seed []byte) (publicKey []byte, privateKey []byte)
	SignDetached(message []byte, privateKey []byte) []byte
	VerifyDetached(signature []byte, message []byte, publicKey []byte) bool
}

const (
	PrimitiveStandard = "standard"
	PrimitiveZIP215   = "zip215"
)

// StandardPrimitive uses crypto/ed25519 with RFC 8032 verification rules.
type StandardPrimitive struct{}

func (StandardPrimitive) KeypairFromSeed(seed []byte) ([]byte, []byte) {
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return pub, priv
}

func (StandardPrimitive) SignDetached(message []byte, privateKey []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(privateKey), message)
}

func (StandardPrimitive) VerifyDetached(signature []byte, message []byte, publicKey []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}

// ConsensusPrimitive signs like StandardPrimitive but verifies with the
// ZIP-215 rules, so every node accepts exactly the same signature set.
type ConsensusPrimitive struct {
	StandardPrimitive
}

func (ConsensusPrimitive) VerifyDetached(signature []byte, message []byte, publicKey []byte) bool {
	return ed25519consensus.Verify(ed25519.PublicKey(publicKey), message, signature)
}

// PrimitiveByName resolves a configured primitive name.
func PrimitiveByName(name string) (Primitive, error) {
	switch name {
	case "", PrimitiveStandard:
		return StandardPrimitive{}, nil
	case PrimitiveZIP215:
		return ConsensusPrimitive{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrimitive, name)
	}
}
