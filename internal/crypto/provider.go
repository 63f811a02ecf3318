package crypto

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// randReader is the random source used by the default provider.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Provider performs the RSA-OAEP primitives. Each method is a single blocking
// call that must honor ctx cancellation.
type Provider interface {
	// Available reports whether the provider can be used at all.
	Available() error
	// GenerateKey creates a new RSA key with the given modulus length and
	// public exponent 65537.
	GenerateKey(ctx context.Context, bits int) (*rsa.PrivateKey, error)
	// Encrypt encrypts plaintext with RSA-OAEP/SHA-256 under pub.
	Encrypt(ctx context.Context, pub *rsa.PublicKey, plaintext []byte) ([]byte, error)
	// Decrypt decrypts an RSA-OAEP/SHA-256 ciphertext with priv.
	Decrypt(ctx context.Context, priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error)
}

// RSAProvider implements Provider on top of crypto/rsa.
type RSAProvider struct {
	random io.Reader
}

var _ Provider = (*RSAProvider)(nil)

// NewRSAProvider returns a provider drawing randomness from r. A nil r selects
// the package random source, which is crypto/rand unless overridden in tests.
func NewRSAProvider(r io.Reader) *RSAProvider {
	return &RSAProvider{random: r}
}

func (p *RSAProvider) reader() io.Reader {
	switch {
	case p != nil && p.random != nil:
		return p.random
	case randReader != nil:
		return randReader
	default:
		return rand.Reader
	}
}

// Available probes the random source.
func (p *RSAProvider) Available() error {
	var probe [1]byte
	if _, err := io.ReadFull(p.reader(), probe[:]); err != nil {
		return fmt.Errorf("%w: random source: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// GenerateKey generates an RSA key. The computation runs on its own goroutine
// so that a cancelled ctx returns immediately; the key is then discarded.
func (p *RSAProvider) GenerateKey(ctx context.Context, bits int) (*rsa.PrivateKey, error) {
	random := p.reader()
	return await(ctx, func() (*rsa.PrivateKey, error) {
		key, err := rsa.GenerateKey(random, bits)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
		}
		key.Precompute()
		return key, nil
	})
}

// Encrypt encrypts plaintext with RSA-OAEP using SHA-256 and an empty label.
func (p *RSAProvider) Encrypt(ctx context.Context, pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", ErrInvalidKey)
	}
	if limit := pub.Size() - 2*sha256.Size - 2; len(plaintext) > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPlaintextTooLarge, len(plaintext), limit)
	}

	random := p.reader()
	return await(ctx, func() ([]byte, error) {
		ciphertext, err := rsa.EncryptOAEP(sha256.New(), random, pub, plaintext, nil)
		if err != nil {
			if errors.Is(err, rsa.ErrMessageTooLong) {
				return nil, fmt.Errorf("%w: %v", ErrPlaintextTooLarge, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
		}
		return ciphertext, nil
	})
}

// Decrypt decrypts an RSA-OAEP/SHA-256 ciphertext. Any failure of the padding
// check is reported as ErrDecryptionFailed without further detail.
func (p *RSAProvider) Decrypt(ctx context.Context, priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", ErrInvalidKey)
	}
	if len(ciphertext) != priv.Size() {
		return nil, fmt.Errorf("%w: %w: got %d, want %d", ErrDecryptionFailed, ErrInvalidCiphertextSize, len(ciphertext), priv.Size())
	}

	return await(ctx, func() ([]byte, error) {
		plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, nil)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil
	})
}

// await runs fn on a new goroutine and waits for it or for ctx, whichever
// finishes first.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
