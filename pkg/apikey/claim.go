package apikey

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Claim is the unsigned payload embedded in every token. Field order
// matches the canonical wire form: token id, email, expiry.
type Claim struct {
	TokenID string `json:"t"`
	Email   string `json:"e"`
	Expiry  string `json:"x"`
}

// Bytes returns the canonical serialization of the claim. Verifiers must
// reproduce these bytes exactly to check the signature, so the encoding is
// compact and HTML escaping is disabled (an email containing '&' or '<'
// must serialize to the literal character, not a \u escape).
func (c Claim) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Join(ErrSigningFailed, err)
	}
	// Encode terminates with a newline that is not part of the claim.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
