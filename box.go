package oaepbox

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/oaepbox/client-go/internal/crypto"
)

// Algorithm parameters.
const (
	// Algorithm is the JWK algorithm identifier of every key this package uses.
	Algorithm = crypto.Algorithm
	// ModulusBits is the RSA modulus length of generated keys.
	ModulusBits = crypto.ModulusBits
	// MaxPlaintextSize is the largest encoded message that fits in one
	// RSA-OAEP block with a 2048-bit modulus and SHA-256.
	MaxPlaintextSize = crypto.MaxPlaintextSize
)

// Box performs key generation, encryption and decryption through a Provider.
// A Box is immutable and safe for concurrent use.
type Box struct {
	provider Provider
	encoding TextEncoding
	logger   *zap.Logger
}

// New creates a Box. Without options it uses the crypto/rsa provider, UTF-8
// text and no logging.
func New(opts ...Option) *Box {
	cfg := &boxConfig{
		encoding: UTF8,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.providerSet {
		cfg.provider = crypto.NewRSAProvider(nil)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return &Box{
		provider: cfg.provider,
		encoding: cfg.encoding,
		logger:   cfg.logger.Named("oaepbox"),
	}
}

var defaultBox = sync.OnceValue(func() *Box { return New() })

// Default returns the Box used by the package-level functions.
func Default() *Box {
	return defaultBox()
}

// Pair generates a key pair with the default Box.
func Pair(ctx context.Context) (*KeyPair, error) {
	return Default().Pair(ctx)
}

// Encrypt encrypts text under publicKey with the default Box.
func Encrypt(ctx context.Context, text, publicKey string) (string, error) {
	return Default().Encrypt(ctx, text, publicKey)
}

// Decrypt decrypts ciphertext with privateKey using the default Box.
func Decrypt(ctx context.Context, ciphertext, privateKey string) (string, error) {
	return Default().Decrypt(ctx, ciphertext, privateKey)
}

// TextEncoding returns the encoding the Box applies to message text.
func (b *Box) TextEncoding() TextEncoding {
	return b.encoding
}

// Pair generates a new 2048-bit RSA-OAEP key pair and returns both halves as
// JWK JSON. A provider that fails to generate reports ErrKeyGenerationFailed.
func (b *Box) Pair(ctx context.Context) (*KeyPair, error) {
	const op = "pair"

	if err := b.ready(); err != nil {
		return nil, b.fail(op, StageProvider, err)
	}

	priv, err := b.provider.GenerateKey(ctx, crypto.ModulusBits)
	if err != nil {
		return nil, b.fail(op, StageGenerate, classify(err, ErrKeyGenerationFailed))
	}
	if priv == nil || priv.N == nil || priv.N.BitLen() != crypto.ModulusBits {
		return nil, b.fail(op, StageGenerate, fmt.Errorf("%w: provider returned an unexpected key", ErrInvalidKey))
	}

	pub, err := crypto.ExportPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, b.fail(op, StageExport, err)
	}
	privJSON, err := crypto.ExportPrivateKey(priv)
	if err != nil {
		return nil, b.fail(op, StageExport, err)
	}

	b.logger.Debug("generated key pair", zap.Int("bits", priv.N.BitLen()))

	return &KeyPair{Public: pub, Private: privJSON}, nil
}

// Encrypt encrypts text under the JWK publicKey and returns the ciphertext
// as a JSON array of bytes. Encrypting the same text twice gives different
// ciphertexts.
func (b *Box) Encrypt(ctx context.Context, text, publicKey string) (string, error) {
	const op = "encrypt"

	if err := b.ready(); err != nil {
		return "", b.fail(op, StageProvider, err)
	}

	pub, err := crypto.ImportPublicKey(publicKey)
	if err != nil {
		return "", b.fail(op, StageImport, err)
	}

	plaintext, err := b.encoding.encode(text)
	if err != nil {
		return "", b.fail(op, StageEncode, err)
	}
	if len(plaintext) > crypto.MaxPlaintextSize {
		return "", b.fail(op, StageEncode, fmt.Errorf("%w: %d bytes, limit %d", ErrPlaintextTooLarge, len(plaintext), crypto.MaxPlaintextSize))
	}

	ciphertext, err := b.provider.Encrypt(ctx, pub, plaintext)
	if err != nil {
		return "", b.fail(op, StageEncrypt, classify(err, ErrEncryptionFailed))
	}

	b.logger.Debug("encrypted message",
		zap.Int("plaintext_bytes", len(plaintext)),
		zap.Int("ciphertext_bytes", len(ciphertext)),
		zap.Stringer("encoding", b.encoding),
	)

	return Ciphertext(ciphertext).String(), nil
}

// Decrypt decrypts a ciphertext produced by Encrypt using the JWK privateKey.
// It fails with ErrDecryptionFailed when the ciphertext was not produced
// under the matching public key.
func (b *Box) Decrypt(ctx context.Context, ciphertext, privateKey string) (string, error) {
	const op = "decrypt"

	if err := b.ready(); err != nil {
		return "", b.fail(op, StageProvider, err)
	}

	sealed, err := ParseCiphertext(ciphertext)
	if err != nil {
		return "", b.fail(op, StageParse, err)
	}

	priv, err := crypto.ImportPrivateKey(privateKey)
	if err != nil {
		return "", b.fail(op, StageImport, err)
	}

	plaintext, err := b.provider.Decrypt(ctx, priv, sealed)
	if err != nil {
		return "", b.fail(op, StageDecrypt, classify(err, ErrDecryptionFailed))
	}

	text, err := b.encoding.decode(plaintext)
	if err != nil {
		return "", b.fail(op, StageDecode, err)
	}

	b.logger.Debug("decrypted message",
		zap.Int("plaintext_bytes", len(plaintext)),
		zap.Stringer("encoding", b.encoding),
	)

	return text, nil
}

func (b *Box) ready() error {
	if b == nil || b.provider == nil {
		return ErrProviderUnavailable
	}
	if err := b.provider.Available(); err != nil {
		return classify(err, ErrProviderUnavailable)
	}
	return nil
}

func (b *Box) fail(op, stage string, err error) error {
	if b != nil {
		b.logger.Debug("operation failed",
			zap.String("op", op),
			zap.String("stage", stage),
			zap.Error(err),
		)
	}
	return &OperationError{Op: op, Stage: stage, Err: err}
}
