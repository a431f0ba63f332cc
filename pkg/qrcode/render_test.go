package qrcode_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/livepoll/apikey/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Render("", 256)
		require.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Nil(t, data)
	})

	t.Run("rejects whitespace content", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Render("  \t\n", 256)
		require.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Nil(t, data)
	})

	t.Run("renders a decodable png of the requested size", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Render("eyJ0IjoiZGVhZGJlZWYifQ==", 256)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("zero size falls back to default", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Render("token", 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})

	t.Run("oversized content fails", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Render(strings.Repeat("x", 8000), 256)
		require.ErrorIs(t, err, qrcode.ErrRenderFailed)
		assert.Nil(t, data)
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.png")

	require.NoError(t, qrcode.WriteFile(path, "some-token", 128))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}
