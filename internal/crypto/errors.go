package crypto

import "errors"

var (
	// ErrProviderUnavailable is returned when no usable provider is configured.
	ErrProviderUnavailable = errors.New("cryptography provider unavailable")

	// ErrMalformedKey is returned when a key is not valid JWK JSON.
	ErrMalformedKey = errors.New("malformed key")

	// ErrInvalidKey is returned when a key parses but its parameters are wrong
	// (key type, modulus size, exponent, missing private part).
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnsupportedAlgorithm is returned when the JWK "alg" is not RSA-OAEP-256.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrKeyUsage is returned when the JWK "key_ops" do not allow the operation.
	ErrKeyUsage = errors.New("key usage not permitted")

	// ErrPlaintextTooLarge is returned when the plaintext exceeds MaxPlaintextSize.
	ErrPlaintextTooLarge = errors.New("plaintext too large")

	// ErrInvalidCiphertextSize is returned when the ciphertext is not ModulusSize bytes.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrKeyGenerationFailed is returned when the provider cannot produce a key.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrEncryptionFailed is returned when the provider fails to encrypt.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when decryption fails, typically because
	// the ciphertext was produced under a different public key.
	ErrDecryptionFailed = errors.New("decryption failed")
)
