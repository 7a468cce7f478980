package crypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	OpDeriveKeypair = "derive_keypair"
	OpSign          = "sign"
	OpVerify        = "verify"
)

// Recorder receives operation outcomes, normally internal/metrics.
type Recorder interface {
	Operation(operation string, result string)
	Rejection(operation string, reason string)
}

// SigningService validates inputs and delegates Ed25519 work to a Primitive.
// It holds no mutable state and is safe for concurrent use.
type SigningService struct {
	primitive Primitive
	log       *logrus.Entry
	recorder  Recorder
}

type Option func(*SigningService)

func WithPrimitive(p Primitive) Option {
	return func(s *SigningService) {
		if p != nil {
			s.primitive = p
		}
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(s *SigningService) {
		if log != nil {
			s.log = log
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *SigningService) {
		s.recorder = r
	}
}

func NewSigningService(opts ...Option) *SigningService {
	s := &SigningService{
		primitive: StandardPrimitive{},
		log:       discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DeriveKeypair derives the keypair for a 32-byte seed. The seed is used as
// given; hashing other material into a seed is the caller's job.
func (s *SigningService) DeriveKeypair(seed []byte) (Keypair, error) {
	if _, err := SeedFromBytes(seed); err != nil {
		return Keypair{}, s.reject(OpDeriveKeypair, err)
	}

	pub, priv := s.primitive.KeypairFromSeed(seed)

	var kp Keypair
	copy(kp.PublicKey[:], pub)
	copy(kp.PrivateKey[:], priv)

	s.log.WithField("operation", OpDeriveKeypair).Debug("derived keypair")
	s.observe(OpDeriveKeypair, "ok")
	return kp, nil
}

// Sign produces a detached signature over the exact message bytes.
func (s *SigningService) Sign(message []byte, privateKey []byte) (Signature, error) {
	if _, err := PrivateKeyFromBytes(privateKey); err != nil {
		return Signature{}, s.reject(OpSign, err)
	}

	var sig Signature
	copy(sig[:], s.primitive.SignDetached(message, privateKey))

	s.log.WithFields(logrus.Fields{"operation": OpSign, "message_bytes": len(message)}).Debug("signed message")
	s.observe(OpSign, "ok")
	return sig, nil
}

// Verify reports whether signature is valid for message under publicKey.
// A mismatch is false with a nil error; only malformed inputs error.
func (s *SigningService) Verify(message []byte, signature []byte, publicKey []byte) (bool, error) {
	if _, err := SignatureFromBytes(signature); err != nil {
		return false, s.reject(OpVerify, err)
	}
	if _, err := PublicKeyFromBytes(publicKey); err != nil {
		return false, s.reject(OpVerify, err)
	}

	ok := s.primitive.VerifyDetached(signature, message, publicKey)

	result := "valid"
	if !ok {
		result = "invalid"
	}
	s.log.WithFields(logrus.Fields{"operation": OpVerify, "message_bytes": len(message), "valid": ok}).Debug("verified signature")
	s.observe(OpVerify, result)
	return ok, nil
}

// DeriveKeypairValue is DeriveKeypair for callers holding untyped input.
func (s *SigningService) DeriveKeypairValue(seed any) (Keypair, error) {
	b, ok := AsBuffer(seed)
	if !ok {
		return Keypair{}, s.reject(OpDeriveKeypair, fmt.Errorf("%w: seed must be a buffer, got %s", ErrInvalidSeed, describe(seed)))
	}
	return s.DeriveKeypair(b)
}

// SignValue is Sign for callers holding untyped input.
func (s *SigningService) SignValue(message any, privateKey any) (Signature, error) {
	msg, ok := AsBuffer(message)
	if !ok {
		return Signature{}, s.reject(OpSign, ErrInvalidMessageType)
	}
	priv, ok := AsBuffer(privateKey)
	if !ok {
		return Signature{}, s.reject(OpSign, fmt.Errorf("%w: private key must be a buffer, got %s", ErrInvalidKeyType, describe(privateKey)))
	}
	return s.Sign(msg, priv)
}

// VerifyValue is Verify for callers holding untyped input. Text in place of
// the signature or public key is an error, never a false result.
func (s *SigningService) VerifyValue(message any, signature any, publicKey any) (bool, error) {
	msg, ok := AsBuffer(message)
	if !ok {
		return false, s.reject(OpVerify, ErrInvalidMessageType)
	}
	sig, ok := AsBuffer(signature)
	if !ok {
		return false, s.reject(OpVerify, fmt.Errorf("%w: signature must be a buffer, got %s", ErrInvalidSignatureType, describe(signature)))
	}
	pub, ok := AsBuffer(publicKey)
	if !ok {
		return false, s.reject(OpVerify, fmt.Errorf("%w: public key must be a buffer, got %s", ErrInvalidKeyType, describe(publicKey)))
	}
	return s.Verify(msg, sig, pub)
}

func (s *SigningService) reject(operation string, err error) error {
	s.log.WithField("operation", operation).WithError(err).Debug("rejected input")
	if s.recorder != nil {
		s.recorder.Rejection(operation, Reason(err))
	}
	return err
}

func (s *SigningService) observe(operation string, result string) {
	if s.recorder != nil {
		s.recorder.Operation(operation, result)
	}
}

// Reason maps a validation error to a short label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSeed):
		return "seed"
	case errors.Is(err, ErrInvalidMessageType):
		return "message"
	case errors.Is(err, ErrInvalidKeyType):
		return "key"
	case errors.Is(err, ErrInvalidSignatureType):
		return "signature"
	default:
		return "other"
	}
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
