package qrcode

import (
	"errors"
	"fmt"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content is empty or whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrRenderFailed is returned when the underlying library fails,
	// typically because the content exceeds QR capacity.
	ErrRenderFailed = errors.New("qrcode: failed to render")
)

// defaultSize is the edge length in pixels used when no size is given.
const defaultSize = 256

// Render produces a square PNG image of the given content. Medium error
// correction keeps capacity high enough for base64 tokens while surviving
// print artifacts.
func Render(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return png, nil
}

// WriteFile renders the content and writes the PNG to path (mode 0644).
func WriteFile(path, content string, size int) error {
	png, err := Render(content, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("qrcode: write %s: %w", path, err)
	}
	return nil
}
