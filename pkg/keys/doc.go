// Package keys provisions and loads the Ed25519 key material used to sign
// API tokens.
//
// Private keys are stored as PKCS#8 PEM ("PRIVATE KEY") and public keys as
// PKIX PEM ("PUBLIC KEY"); OpenSSH-format private keys
// ("OPENSSH PRIVATE KEY", as produced by ssh-keygen -t ed25519) load
// transparently as well. Generated private key files are written 0600,
// public key files 0644.
//
// # Usage
//
//	pub, priv, err := keys.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := keys.SaveKeyPair("private.pem", "public.pem", priv, pub); err != nil {
//	    log.Fatal(err)
//	}
//
//	priv, err = keys.LoadPrivateKey("private.pem")
//
// Load failures surface as ErrKeyNotFound, ErrInvalidPEM, or
// ErrUnsupportedKey; compare with errors.Is.
package keys
