package oaepbox

import (
	"crypto/rsa"
	"fmt"

	"github.com/oaepbox/client-go/internal/crypto"
)

// KeyPair holds both halves of an RSA-OAEP key pair as JWK JSON strings.
// WARNING: Private is secret key material - handle securely.
type KeyPair struct {
	// Public is the public JWK, used with Encrypt.
	Public string `json:"pub"`
	// Private is the private JWK, used with Decrypt.
	Private string `json:"priv"`
}

// Validate checks that both keys import and that they belong together.
func (kp *KeyPair) Validate() error {
	if kp == nil {
		return fmt.Errorf("%w: nil key pair", ErrInvalidKey)
	}

	pub, err := crypto.ImportPublicKey(kp.Public)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	priv, err := crypto.ImportPrivateKey(kp.Private)
	if err != nil {
		return fmt.Errorf("private key: %w", err)
	}

	if !pub.Equal(&priv.PublicKey) {
		return ErrKeyPairMismatch
	}
	return nil
}

// Thumbprint returns the RFC 7638 thumbprint shared by both halves of the pair.
func (kp *KeyPair) Thumbprint() (string, error) {
	return crypto.Thumbprint(kp.Public)
}

// KeyInfo describes a JWK without exposing its key material.
type KeyInfo = crypto.KeyInfo

// ExportPublicKey encodes pub as a JWK for encryption.
func ExportPublicKey(pub *rsa.PublicKey) (string, error) {
	return crypto.ExportPublicKey(pub)
}

// ExportPrivateKey encodes priv as a JWK for decryption.
func ExportPrivateKey(priv *rsa.PrivateKey) (string, error) {
	return crypto.ExportPrivateKey(priv)
}

// ImportPublicKey decodes and validates a public JWK.
func ImportPublicKey(jwk string) (*rsa.PublicKey, error) {
	return crypto.ImportPublicKey(jwk)
}

// ImportPrivateKey decodes and validates a private JWK.
func ImportPrivateKey(jwk string) (*rsa.PrivateKey, error) {
	return crypto.ImportPrivateKey(jwk)
}

// PublicFromPrivate returns the public JWK matching a private JWK.
func PublicFromPrivate(privateKey string) (string, error) {
	return crypto.DerivePublicKey(privateKey)
}

// Thumbprint returns the RFC 7638 SHA-256 thumbprint of a JWK.
func Thumbprint(jwk string) (string, error) {
	return crypto.Thumbprint(jwk)
}

// Inspect summarizes a public or private JWK: type, algorithm, size,
// permitted operations and fingerprints.
func Inspect(jwk string) (*KeyInfo, error) {
	return crypto.Inspect(jwk)
}
