// Package seed turns arbitrary material into the 32-byte seeds that
// internal/crypto derives keypairs from.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"

	"github.com/davidahmann/edsign/internal/crypto"
)

type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	BLAKE2b Algorithm = "blake2b"
	BLAKE3  Algorithm = "blake3"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown seed hash algorithm")
	ErrEmptyPassphrase  = errors.New("passphrase is required")
)

// Algorithms lists the supported names in a stable order.
func Algorithms() []string {
	return []string{string(SHA256), string(BLAKE2b), string(BLAKE3)}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case "":
		return SHA256, nil
	case SHA256, BLAKE2b, BLAKE3:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// FromPassphrase hashes passphrase into a seed. SHA-256 over "ABCDE" gives
// the seed used by the reference signing vectors.
func FromPassphrase(alg Algorithm, passphrase []byte) (crypto.Seed, error) {
	if len(passphrase) == 0 {
		return crypto.Seed{}, ErrEmptyPassphrase
	}

	switch alg {
	case SHA256:
		return sha256.Sum256(passphrase), nil
	case BLAKE2b:
		return blake2b.Sum256(passphrase), nil
	case BLAKE3:
		return blake3.Sum256(passphrase), nil
	default:
		return crypto.Seed{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}
