package oaepbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/oaepbox/client-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrProviderUnavailable is returned when the Box has no usable
	// cryptography provider.
	ErrProviderUnavailable = crypto.ErrProviderUnavailable

	// ErrMalformedKey is returned when a key is not valid JWK JSON.
	ErrMalformedKey = crypto.ErrMalformedKey

	// ErrInvalidKey is returned when a key is well-formed but unusable, for
	// example a 1024-bit modulus or a public key where a private key is needed.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrUnsupportedAlgorithm is returned when a key declares an algorithm
	// other than RSA-OAEP-256.
	ErrUnsupportedAlgorithm = crypto.ErrUnsupportedAlgorithm

	// ErrKeyUsage is returned when a key's key_ops or use forbid the operation.
	ErrKeyUsage = crypto.ErrKeyUsage

	// ErrPlaintextTooLarge is returned when the encoded text does not fit in a
	// single RSA-OAEP block.
	ErrPlaintextTooLarge = crypto.ErrPlaintextTooLarge

	// ErrKeyGenerationFailed is returned when the provider fails to generate
	// a key pair.
	ErrKeyGenerationFailed = crypto.ErrKeyGenerationFailed

	// ErrEncryptionFailed is returned when the provider fails to encrypt.
	ErrEncryptionFailed = crypto.ErrEncryptionFailed

	// ErrDecryptionFailed is returned when a ciphertext cannot be decrypted,
	// typically because it was produced under another key pair.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed

	// ErrMalformedCiphertext is returned when a ciphertext is not a JSON array
	// of byte values.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidText is returned when text cannot be represented in the
	// configured TextEncoding, or decrypted bytes are not valid in it.
	ErrInvalidText = errors.New("invalid text for encoding")

	// ErrKeyPairMismatch is returned when the two halves of a KeyPair do not
	// belong together.
	ErrKeyPairMismatch = errors.New("public and private keys do not match")
)

// Stages reported in OperationError.
const (
	StageProvider = "provider"
	StageGenerate = "generate"
	StageExport   = "export"
	StageImport   = "import"
	StageEncode   = "encode"
	StageEncrypt  = "encrypt"
	StageParse    = "parse"
	StageDecrypt  = "decrypt"
	StageDecode   = "decode"
)

// OperationError reports which step of a Box operation failed.
type OperationError struct {
	Op    string // "pair", "encrypt", "decrypt"
	Stage string
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed at %s: %v", e.Op, e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// classify makes sure err matches one of the package sentinels. Errors from
// a substituted provider that match none of them are wrapped with fallback.
// Context errors are left alone.
func classify(err, fallback error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	for _, known := range []error{
		ErrProviderUnavailable,
		ErrMalformedKey,
		ErrInvalidKey,
		ErrUnsupportedAlgorithm,
		ErrKeyUsage,
		ErrPlaintextTooLarge,
		ErrKeyGenerationFailed,
		ErrEncryptionFailed,
		ErrDecryptionFailed,
		ErrMalformedCiphertext,
		ErrInvalidText,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
