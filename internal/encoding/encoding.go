// Package encoding converts between text and raw bytes at call sites.
// The encoding is always named by the caller and never guessed.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

type Encoding string

const (
	Hex       Encoding = "hex"
	Base64    Encoding = "base64"
	Base64URL Encoding = "base64url"
	Base58    Encoding = "base58"
)

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrEmptyInput      = errors.New("empty input")
)

func Names() []string {
	return []string{string(Hex), string(Base64), string(Base64URL), string(Base58)}
}

func Parse(name string) (Encoding, error) {
	switch enc := Encoding(strings.ToLower(strings.TrimSpace(name))); enc {
	case "":
		return Hex, nil
	case Hex, Base64, Base64URL, Base58:
		return enc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// Decode converts text in encoding e to bytes. Surrounding whitespace is
// ignored so values read from files decode cleanly.
func (e Encoding) Decode(s string) ([]byte, error) {
	trim := strings.TrimSpace(s)
	if trim == "" {
		return nil, ErrEmptyInput
	}

	var (
		out []byte
		err error
	)
	switch e {
	case Hex:
		out, err = hex.DecodeString(trim)
	case Base64:
		out, err = base64.StdEncoding.DecodeString(trim)
	case Base64URL:
		out, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(trim, "="))
	case Base58:
		out, err = base58.Decode(trim)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(e))
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s input: %w", e, err)
	}
	return out, nil
}

func (e Encoding) Encode(b []byte) string {
	switch e {
	case Base64:
		return base64.StdEncoding.EncodeToString(b)
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(b)
	case Base58:
		return base58.Encode(b)
	default:
		return hex.EncodeToString(b)
	}
}
