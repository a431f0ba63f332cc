package keys

import "errors"

var (
	ErrKeyNotFound    = errors.New("keys: key file not found")
	ErrInvalidPEM     = errors.New("keys: file is not valid PEM key material")
	ErrUnsupportedKey = errors.New("keys: not an ed25519 key")
)
