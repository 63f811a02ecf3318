package oaepbox

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrProviderUnavailable", ErrProviderUnavailable},
		{"ErrMalformedKey", ErrMalformedKey},
		{"ErrInvalidKey", ErrInvalidKey},
		{"ErrUnsupportedAlgorithm", ErrUnsupportedAlgorithm},
		{"ErrKeyUsage", ErrKeyUsage},
		{"ErrPlaintextTooLarge", ErrPlaintextTooLarge},
		{"ErrKeyGenerationFailed", ErrKeyGenerationFailed},
		{"ErrEncryptionFailed", ErrEncryptionFailed},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrMalformedCiphertext", ErrMalformedCiphertext},
		{"ErrInvalidText", ErrInvalidText},
		{"ErrKeyPairMismatch", ErrKeyPairMismatch},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestOperationError(t *testing.T) {
	inner := fmt.Errorf("%w: bad n", ErrMalformedKey)
	err := &OperationError{Op: "encrypt", Stage: StageImport, Err: inner}

	if got, want := err.Error(), "encrypt failed at import: malformed key: bad n"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMalformedKey) {
		t.Error("errors.Is(err, ErrMalformedKey) = false")
	}
	if errors.Unwrap(err) != inner {
		t.Error("Unwrap() did not return the inner error")
	}
}

func TestClassify(t *testing.T) {
	custom := errors.New("custom")
	known := fmt.Errorf("wrapped: %w", ErrKeyUsage)

	tests := []struct {
		name     string
		err      error
		fallback error
		wantIs   []error
	}{
		{"unknown gets fallback", custom, ErrDecryptionFailed, []error{custom, ErrDecryptionFailed}},
		{"known kept", known, ErrDecryptionFailed, []error{ErrKeyUsage}},
		{"canceled kept", context.Canceled, ErrEncryptionFailed, []error{context.Canceled}},
		{"deadline kept", context.DeadlineExceeded, ErrEncryptionFailed, []error{context.DeadlineExceeded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err, tt.fallback)
			for _, want := range tt.wantIs {
				if !errors.Is(got, want) {
					t.Errorf("classify() = %v, does not match %v", got, want)
				}
			}
		})
	}

	if got := classify(known, ErrDecryptionFailed); errors.Is(got, ErrDecryptionFailed) {
		t.Error("known error was wrapped with the fallback")
	}
	if got := classify(context.Canceled, ErrEncryptionFailed); got != context.Canceled {
		t.Errorf("context error was rewrapped: %v", got)
	}
}
