package oaepbox

import (
	"context"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
)

var (
	sharedPairsOnce sync.Once
	sharedPairs     [2]*KeyPair
	sharedPairsErr  error
)

// testPairs returns two distinct key pairs shared across the package tests.
func testPairs(t *testing.T) (*KeyPair, *KeyPair) {
	t.Helper()
	sharedPairsOnce.Do(func() {
		box := New()
		for i := range sharedPairs {
			sharedPairs[i], sharedPairsErr = box.Pair(context.Background())
			if sharedPairsErr != nil {
				return
			}
		}
	})
	if sharedPairsErr != nil {
		t.Fatalf("Pair() error = %v", sharedPairsErr)
	}
	return sharedPairs[0], sharedPairs[1]
}

// stubProvider delegates to the crypto/rsa provider unless an error is set
// for the call.
type stubProvider struct {
	availableErr error
	generateErr  error
	generateKey  *rsa.PrivateKey
	encryptErr   error
	decryptErr   error

	calls int
}

var _ Provider = (*stubProvider)(nil)

func (s *stubProvider) Available() error {
	return s.availableErr
}

func (s *stubProvider) GenerateKey(ctx context.Context, bits int) (*rsa.PrivateKey, error) {
	s.calls++
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	if s.generateKey != nil {
		return s.generateKey, nil
	}
	return NewRSAProvider(nil).GenerateKey(ctx, bits)
}

func (s *stubProvider) Encrypt(ctx context.Context, pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	s.calls++
	if s.encryptErr != nil {
		return nil, s.encryptErr
	}
	return NewRSAProvider(nil).Encrypt(ctx, pub, plaintext)
}

func (s *stubProvider) Decrypt(ctx context.Context, priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	s.calls++
	if s.decryptErr != nil {
		return nil, s.decryptErr
	}
	return NewRSAProvider(nil).Decrypt(ctx, priv, ciphertext)
}

func requireOperationError(t *testing.T, err error, op, stage string) {
	t.Helper()
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OperationError, got %T: %v", err, err)
	}
	if opErr.Op != op || opErr.Stage != stage {
		t.Errorf("OperationError = %s/%s, want %s/%s", opErr.Op, opErr.Stage, op, stage)
	}
}
