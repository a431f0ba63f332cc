package apikey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

const (
	// TokenIDSize is the number of random bytes behind a token id.
	// Rendered as lowercase hex the id is twice as many characters.
	TokenIDSize = 4

	// SignatureSize is the fixed length of the signature suffix in a
	// decoded token. Verifiers split the blob at this boundary: the last
	// SignatureSize bytes are the signature, the remainder is the claim.
	SignatureSize = ed25519.SignatureSize
)

// Token is the result of a single issuance.
type Token struct {
	// ID is the token id, 8 lowercase hex characters. Safe to log.
	ID string
	// Encoded is the distributable base64 form of claim||signature.
	Encoded string
	// Claim is the payload that was signed.
	Claim Claim
}

// Issuer signs claims with a fixed Ed25519 private key. The key is
// read-only after construction, so a single Issuer is safe for concurrent
// use as long as its random source is (crypto/rand.Reader is).
type Issuer struct {
	key  ed25519.PrivateKey
	rand io.Reader
}

// Option configures an Issuer at construction time.
type Option func(*Issuer)

// WithRandReader replaces crypto/rand.Reader as the source of token id
// bytes. Nil readers are ignored.
func WithRandReader(r io.Reader) Option {
	return func(i *Issuer) {
		if r != nil {
			i.rand = r
		}
	}
}

// New creates an Issuer for the given private key. Returns ErrInvalidKey
// if the key is not the expected ed25519 length; ed25519.Sign panics on
// malformed keys, so the check happens here, once.
func New(key ed25519.PrivateKey, opts ...Option) (*Issuer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, ErrInvalidKey
	}

	iss := &Issuer{
		key:  key,
		rand: rand.Reader,
	}
	for _, opt := range opts {
		opt(iss)
	}
	return iss, nil
}

// Issue produces a signed token for the given email and expiry date.
// The expiry date is conventionally YYYY-MM-DD; all '-' characters are
// stripped before embedding and no further validation is performed.
// Arguments are checked before any randomness is drawn, and any failure
// aborts the issuance without a partial token.
func (i *Issuer) Issue(email, expiryDate string) (Token, error) {
	if email == "" {
		return Token{}, ErrMissingEmail
	}
	if expiryDate == "" {
		return Token{}, ErrMissingExpiry
	}

	idBytes := make([]byte, TokenIDSize)
	if _, err := io.ReadFull(i.rand, idBytes); err != nil {
		return Token{}, errors.Join(ErrRandomSource, err)
	}

	claim := Claim{
		TokenID: hex.EncodeToString(idBytes),
		Email:   email,
		Expiry:  strings.ReplaceAll(expiryDate, "-", ""),
	}

	data, err := claim.Bytes()
	if err != nil {
		return Token{}, err
	}

	sig := ed25519.Sign(i.key, data)

	blob := make([]byte, 0, len(data)+len(sig))
	blob = append(blob, data...)
	blob = append(blob, sig...)

	return Token{
		ID:      claim.TokenID,
		Encoded: base64.StdEncoding.EncodeToString(blob),
		Claim:   claim,
	}, nil
}
