package crypto

import "errors"

var (
	ErrInvalidSeed          = errors.New("invalid ed25519 seed")
	ErrInvalidMessageType   = errors.New("argument message must be a buffer")
	ErrInvalidKeyType       = errors.New("invalid ed25519 key")
	ErrInvalidSignatureType = errors.New("invalid ed25519 signature")
	ErrUnknownPrimitive     = errors.New("unknown ed25519 primitive")
)
