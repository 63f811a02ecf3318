package crypto

import (
	"crypto/rsa"
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// validateKey checks the JWK members and RSA parameters against what this
// package can use for op. All problems are reported together.
func validateKey(meta *jwkMeta, pub *rsa.PublicKey, op string) error {
	var err error

	if meta.Alg != "" && meta.Alg != Algorithm {
		err = multierr.Append(err, fmt.Errorf("%w: alg %q, expected %q", ErrUnsupportedAlgorithm, meta.Alg, Algorithm))
	}
	if bits := pub.N.BitLen(); bits != ModulusBits {
		err = multierr.Append(err, fmt.Errorf("%w: modulus is %d bits, expected %d", ErrInvalidKey, bits, ModulusBits))
	}
	if pub.E != PublicExponent {
		err = multierr.Append(err, fmt.Errorf("%w: public exponent %d, expected %d", ErrInvalidKey, pub.E, PublicExponent))
	}
	if meta.Use != "" && meta.Use != "enc" {
		err = multierr.Append(err, fmt.Errorf("%w: use %q", ErrKeyUsage, meta.Use))
	}
	if len(meta.KeyOps) > 0 && !slices.Contains(meta.KeyOps, op) {
		err = multierr.Append(err, fmt.Errorf("%w: key_ops %v do not include %q", ErrKeyUsage, meta.KeyOps, op))
	}

	return err
}
