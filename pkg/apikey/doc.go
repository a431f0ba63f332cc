// Package apikey issues compact, Ed25519-signed bearer tokens for API access.
//
// A token carries a minimal JSON claim — a fresh random token id, the
// subject's email, and an expiry date — signed with an Ed25519 private key.
// The distributable form is a single base64 string:
//
//	base64( claim_bytes || signature_bytes )
//
// where claim_bytes is the canonical serialization
//
//	{"t":"<8 hex chars>","e":"<email>","x":"<YYYYMMDD>"}
//
// and signature_bytes is the raw 64-byte Ed25519 signature over exactly
// those claim bytes. No delimiter separates the two parts: Ed25519
// signatures are a fixed 64 bytes, so a verifier decodes the base64 blob
// and splits at the 64-byte suffix. Key order and punctuation of the claim
// are part of the signing contract, not incidental.
//
// The issuer validates only argument presence. Email syntax and calendar
// validity of the expiry date are the caller's responsibility; the expiry
// string is embedded with all '-' characters stripped.
//
// # Usage
//
//	import "github.com/livepoll/apikey/pkg/apikey"
//
//	iss, err := apikey.New(privateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := iss.Issue("alice@example.com", "2025-12-31")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tok.ID)      // e.g. "9f3a01bc"
//	fmt.Println(tok.Encoded) // base64 token for distribution
//
// The random source is injectable via WithRandReader, which makes token ids
// deterministic in tests. Ed25519 signing itself is deterministic per
// message, so a fixed random source yields fully reproducible tokens.
//
// # Error Handling
//
// Sentinel errors are declared at package level and compare with errors.Is:
// ErrMissingEmail and ErrMissingExpiry for absent arguments, ErrInvalidKey
// for key material of the wrong size, ErrRandomSource when random bytes
// cannot be drawn, and ErrSigningFailed when the claim cannot be prepared
// for signing. Every failure aborts the issuance with no partial token.
package apikey
