package crypto

var defaultService = NewSigningService()

// DeriveKeypair derives an Ed25519 keypair from a 32-byte seed.
func DeriveKeypair(seed []byte) (Keypair, error) {
	return defaultService.DeriveKeypair(seed)
}

// Sign signs message with a 64-byte private key.
func Sign(message []byte, privateKey []byte) (Signature, error) {
	return defaultService.Sign(message, privateKey)
}

// Verify checks a detached signature using crypto/ed25519 rules.
func Verify(message []byte, signature []byte, publicKey []byte) (bool, error) {
	return defaultService.Verify(message, signature, publicKey)
}
