// Package oaepbox encrypts short text messages with RSA-OAEP (2048-bit
// modulus, SHA-256) and moves keys around as portable JSON Web Keys.
//
// Keys and ciphertexts are interchangeable with browser code built on
// crypto.subtle: exported keys have the members a WebCrypto "jwk" export has,
// and ciphertexts are JSON arrays of byte values.
//
// Basic usage:
//
//	ctx := context.Background()
//
//	pair, err := oaepbox.Pair(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sealed, err := oaepbox.Encrypt(ctx, "hello world", pair.Public)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := oaepbox.Decrypt(ctx, sealed, pair.Private)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(text) // hello world
//
// A message holds at most [MaxPlaintextSize] bytes once encoded. Nothing is
// split into multiple blocks; longer input fails with [ErrPlaintextTooLarge].
//
// Text is encoded as UTF-8 by default. [Latin1] reproduces the
// one-byte-per-character mapping older JavaScript callers used and rejects
// characters it cannot represent instead of truncating them.
//
// Use [New] with options such as [WithProvider] or [WithLogger] to configure
// a [Box] instead of the package-level functions.
package oaepbox
