package crypto

const (
	// Algorithm is the JWK "alg" value for RSA-OAEP with SHA-256.
	Algorithm = "RSA-OAEP-256"

	// KeyType is the JWK "kty" value for RSA keys.
	KeyType = "RSA"

	// ModulusBits is the RSA modulus length in bits.
	ModulusBits = 2048
	// ModulusSize is the RSA modulus length in bytes. Every ciphertext has this size.
	ModulusSize = ModulusBits / 8

	// PublicExponent is the RSA public exponent (0x010001).
	PublicExponent = 65537

	// HashSize is the size of a SHA-256 digest in bytes.
	HashSize = 32

	// MaxPlaintextSize is the single-block capacity of RSA-OAEP for a 2048-bit
	// modulus with SHA-256: k - 2*hLen - 2.
	MaxPlaintextSize = ModulusSize - 2*HashSize - 2
)

// Key operations as they appear in a JWK "key_ops" member.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)
