package apikey

import "errors"

var (
	ErrMissingEmail  = errors.New("apikey: missing email")
	ErrMissingExpiry = errors.New("apikey: missing expiry date")
	ErrInvalidKey    = errors.New("apikey: signing key must be a 64-byte ed25519 private key")
	ErrRandomSource  = errors.New("apikey: random source unavailable")
	ErrSigningFailed = errors.New("apikey: failed to sign claim")
)
