package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/livepoll/apikey/pkg/apikey"
	"github.com/livepoll/apikey/pkg/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKeyPair(t *testing.T) (privPath string, pub ed25519.PublicKey) {
	t.Helper()
	dir := t.TempDir()
	privPath = filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	pub, priv, err := keys.Generate()
	require.NoError(t, err)
	require.NoError(t, keys.SaveKeyPair(privPath, pubPath, priv, pub))
	return privPath, pub
}

func TestRunIssuesVerifiableToken(t *testing.T) {
	privPath, pub := writeTestKeyPair(t)

	var out bytes.Buffer
	err := run([]string{"--key", privPath, "alice@example.com", "2025-12-31"}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2, "stdout carries exactly the token id and the token")
	tokenID, encoded := lines[0], lines[1]
	assert.Regexp(t, `^[0-9a-f]{8}$`, tokenID)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	claimBytes := raw[:len(raw)-apikey.SignatureSize]
	sig := raw[len(raw)-apikey.SignatureSize:]
	assert.True(t, ed25519.Verify(pub, claimBytes, sig))

	var claim apikey.Claim
	require.NoError(t, json.Unmarshal(claimBytes, &claim))
	assert.Equal(t, tokenID, claim.TokenID)
	assert.Equal(t, "alice@example.com", claim.Email)
	assert.Equal(t, "20251231", claim.Expiry)
}

func TestRunMissingArguments(t *testing.T) {
	privPath, _ := writeTestKeyPair(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{"--key", privPath}},
		{"only email", []string{"--key", privPath, "alice@example.com"}},
		{"too many arguments", []string{"--key", privPath, "a@b", "2025-01-01", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			assert.Empty(t, out.String(), "no token output on failure")
		})
	}
}

func TestRunMissingKeyFile(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--key", filepath.Join(t.TempDir(), "absent.pem"), "a@b", "2025-01-01"}, &out)
	require.ErrorIs(t, err, keys.ErrKeyNotFound)
	assert.Empty(t, out.String())
}

func TestRunWritesQRCode(t *testing.T) {
	privPath, _ := writeTestKeyPair(t)
	qrPath := filepath.Join(t.TempDir(), "token.png")

	var out bytes.Buffer
	err := run([]string{"--key", privPath, "--qr-out", qrPath, "a@b", "2025-01-01"}, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(qrPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "QR output must be a PNG file")
}
