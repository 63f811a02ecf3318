package oaepbox

import (
	"go.uber.org/zap"

	"github.com/oaepbox/client-go/internal/crypto"
)

// Provider performs the RSA-OAEP primitives for a Box. The default is backed
// by crypto/rsa; tests and alternative backends can substitute their own.
type Provider = crypto.Provider

// NewRSAProvider returns the default crypto/rsa provider. A nil reader uses
// crypto/rand.
var NewRSAProvider = crypto.NewRSAProvider

// boxConfig holds configuration for a Box.
type boxConfig struct {
	provider    Provider
	providerSet bool
	encoding    TextEncoding
	logger      *zap.Logger
}

// Option configures a Box.
type Option func(*boxConfig)

// WithProvider sets the cryptography provider. Passing nil leaves the Box
// without a provider, and every operation fails with ErrProviderUnavailable.
func WithProvider(p Provider) Option {
	return func(c *boxConfig) {
		c.provider = p
		c.providerSet = true
	}
}

// WithTextEncoding sets how text is converted to and from bytes.
// Default: UTF8
func WithTextEncoding(e TextEncoding) Option {
	return func(c *boxConfig) {
		c.encoding = e
	}
}

// WithLogger sets the logger for debug events. Key material and message
// contents are never logged.
// Default: no logging
func WithLogger(l *zap.Logger) Option {
	return func(c *boxConfig) {
		c.logger = l
	}
}
