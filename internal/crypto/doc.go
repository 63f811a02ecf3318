// Package crypto implements the RSA-OAEP key handling behind oaepbox.
//
// # Algorithm
//
// Keys are 2048-bit RSA keys with public exponent 65537. Encryption is
// RSA-OAEP with SHA-256 for both the OAEP hash and MGF1, and an empty label,
// which is what a WebCrypto "RSA-OAEP" key with hash "SHA-256" does. One
// ciphertext carries at most [MaxPlaintextSize] (190) bytes.
//
// The primitives themselves come from crypto/rsa through [RSAProvider]. The
// [Provider] interface exists so callers can substitute another implementation.
//
// # Key Format
//
// Keys travel as JSON Web Keys (RFC 7517). [ExportPublicKey] and
// [ExportPrivateKey] produce the member set a browser's
// crypto.subtle.exportKey("jwk", key) produces, so keys can be exchanged with
// browser code in both directions:
//
//	{"alg":"RSA-OAEP-256","e":"AQAB","ext":true,"key_ops":["encrypt"],"kty":"RSA","n":"..."}
//
// [ImportPublicKey] and [ImportPrivateKey] reject keys with another algorithm,
// modulus size or exponent, and keys whose key_ops do not allow the operation.
//
// Keep private keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
