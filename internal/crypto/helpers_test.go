package crypto

import (
	"context"
	"crypto/rsa"
	"sync"
	"testing"
)

var (
	sharedKeysOnce sync.Once
	sharedKeys     [2]*rsa.PrivateKey
	sharedKeysErr  error
)

// testKeys returns two distinct 2048-bit keys shared across the package tests.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	sharedKeysOnce.Do(func() {
		p := NewRSAProvider(nil)
		for i := range sharedKeys {
			sharedKeys[i], sharedKeysErr = p.GenerateKey(context.Background(), ModulusBits)
			if sharedKeysErr != nil {
				return
			}
		}
	})
	if sharedKeysErr != nil {
		t.Fatalf("GenerateKey() error = %v", sharedKeysErr)
	}
	return sharedKeys[0], sharedKeys[1]
}
