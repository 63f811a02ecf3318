package crypto

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"

	jose "github.com/go-jose/go-jose/v4"
)

// jwkMeta holds the JWK members that go-jose does not expose on JSONWebKey.
type jwkMeta struct {
	Kty    string   `json:"kty"`
	Alg    string   `json:"alg"`
	Use    string   `json:"use"`
	KeyOps []string `json:"key_ops"`
	Ext    *bool    `json:"ext"`
}

// ExportPublicKey encodes pub as a JWK usable for encryption.
func ExportPublicKey(pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrInvalidKey)
	}
	return exportKey(pub, OpEncrypt)
}

// ExportPrivateKey encodes priv as a JWK usable for decryption, including the
// CRT parameters.
func ExportPrivateKey(priv *rsa.PrivateKey) (string, error) {
	if priv == nil {
		return "", fmt.Errorf("%w: nil private key", ErrInvalidKey)
	}
	if len(priv.Primes) != 2 {
		return "", fmt.Errorf("%w: multi-prime keys are not supported", ErrInvalidKey)
	}
	priv.Precompute()
	return exportKey(priv, OpDecrypt)
}

// exportKey produces the same member set a WebCrypto "jwk" export does:
// alg, e, ext, key_ops, kty, n and the private members. Keys are emitted in
// sorted order.
func exportKey(key any, op string) (string, error) {
	jwk := jose.JSONWebKey{Key: key, Algorithm: Algorithm}
	raw, err := jwk.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal jwk: %w", err)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return "", fmt.Errorf("marshal jwk: %w", err)
	}
	ops, err := json.Marshal([]string{op})
	if err != nil {
		return "", fmt.Errorf("marshal jwk: %w", err)
	}
	members["key_ops"] = ops
	members["ext"] = json.RawMessage("true")

	out, err := json.Marshal(members)
	if err != nil {
		return "", fmt.Errorf("marshal jwk: %w", err)
	}
	return string(out), nil
}

// ImportPublicKey decodes a public JWK and checks that it may be used to encrypt.
func ImportPublicKey(data string) (*rsa.PublicKey, error) {
	jwk, meta, err := parseJWK(data)
	if err != nil {
		return nil, err
	}

	pub, ok := jwk.Key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected a public key", ErrInvalidKey)
	}
	if err := validateKey(meta, pub, OpEncrypt); err != nil {
		return nil, err
	}
	return pub, nil
}

// ImportPrivateKey decodes a private JWK and checks that it may be used to decrypt.
func ImportPrivateKey(data string) (*rsa.PrivateKey, error) {
	jwk, meta, err := parseJWK(data)
	if err != nil {
		return nil, err
	}

	priv, ok := jwk.Key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected a private key", ErrInvalidKey)
	}
	if err := validateKey(meta, &priv.PublicKey, OpDecrypt); err != nil {
		return nil, err
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return priv, nil
}

// DerivePublicKey returns the public JWK belonging to a private JWK.
func DerivePublicKey(privateKey string) (string, error) {
	priv, err := ImportPrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return ExportPublicKey(&priv.PublicKey)
}

func parseJWK(data string) (*jose.JSONWebKey, *jwkMeta, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &members); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if len(members) == 0 {
		return nil, nil, fmt.Errorf("%w: no members", ErrMalformedKey)
	}

	var meta jwkMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if meta.Kty != KeyType {
		return nil, nil, fmt.Errorf("%w: kty %q, expected %q", ErrInvalidKey, meta.Kty, KeyType)
	}

	var jwk jose.JSONWebKey
	if err := jwk.UnmarshalJSON([]byte(data)); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return &jwk, &meta, nil
}
