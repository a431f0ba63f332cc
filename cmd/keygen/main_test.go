package main

import (
	"path/filepath"
	"testing"

	"github.com/livepoll/apikey/pkg/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesLoadableKeyPair(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run([]string{"--out-dir", dir}))

	priv, err := keys.LoadPrivateKey(filepath.Join(dir, "private.pem"))
	require.NoError(t, err)
	pub, err := keys.LoadPublicKey(filepath.Join(dir, "public.pem"))
	require.NoError(t, err)
	assert.Equal(t, pub, priv.Public())
}

func TestRunRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run([]string{"--out-dir", dir}))

	firstPriv, err := keys.LoadPrivateKey(filepath.Join(dir, "private.pem"))
	require.NoError(t, err)

	err = run([]string{"--out-dir", dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// --force replaces the pair.
	require.NoError(t, run([]string{"--out-dir", dir, "--force"}))
	secondPriv, err := keys.LoadPrivateKey(filepath.Join(dir, "private.pem"))
	require.NoError(t, err)
	assert.NotEqual(t, firstPriv, secondPriv)
}
