package crypto

import (
	gocrypto "crypto"
	"crypto/rsa"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// KeyInfo describes a JWK without exposing its key material.
type KeyInfo struct {
	Type           string   `json:"kty"`
	Algorithm      string   `json:"alg,omitempty"`
	Bits           int      `json:"bits"`
	Private        bool     `json:"private"`
	KeyOps         []string `json:"keyOps,omitempty"`
	Thumbprint     string   `json:"thumbprint"`
	SSHFingerprint string   `json:"sshFingerprint"`
}

// Thumbprint returns the RFC 7638 SHA-256 thumbprint of a JWK, base64url
// encoded. Public and private halves of a pair share the same thumbprint.
func Thumbprint(data string) (string, error) {
	jwk, _, err := parseJWK(data)
	if err != nil {
		return "", err
	}
	sum, err := jwk.Thumbprint(gocrypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return ToBase64URL(sum), nil
}

// SSHFingerprint returns the OpenSSH "SHA256:..." fingerprint of the public
// part of a JWK.
func SSHFingerprint(data string) (string, error) {
	jwk, _, err := parseJWK(data)
	if err != nil {
		return "", err
	}
	pub, err := publicOf(jwk.Key)
	if err != nil {
		return "", err
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return ssh.FingerprintSHA256(sshPub), nil
}

// Inspect summarizes a JWK.
func Inspect(data string) (*KeyInfo, error) {
	jwk, meta, err := parseJWK(data)
	if err != nil {
		return nil, err
	}
	pub, err := publicOf(jwk.Key)
	if err != nil {
		return nil, err
	}

	thumbprint, err := Thumbprint(data)
	if err != nil {
		return nil, err
	}
	fingerprint, err := SSHFingerprint(data)
	if err != nil {
		return nil, err
	}

	return &KeyInfo{
		Type:           meta.Kty,
		Algorithm:      meta.Alg,
		Bits:           pub.N.BitLen(),
		Private:        !jwk.IsPublic(),
		KeyOps:         meta.KeyOps,
		Thumbprint:     thumbprint,
		SSHFingerprint: fingerprint,
	}, nil
}

func publicOf(key any) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return k, nil
	case *rsa.PrivateKey:
		return &k.PublicKey, nil
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, key)
	}
}
