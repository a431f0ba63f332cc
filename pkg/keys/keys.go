package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/crypto/ssh"
)

const (
	pemTypePrivate = "PRIVATE KEY"
	pemTypePublic  = "PUBLIC KEY"
	pemTypeOpenSSH = "OPENSSH PRIVATE KEY"
)

// Generate creates a fresh Ed25519 key pair from crypto/rand.
func Generate() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("keys: generate: %w", err)
	}
	return pub, priv, nil
}

// LoadPrivateKey reads an Ed25519 private key from a PEM file. Both PKCS#8
// ("PRIVATE KEY") and OpenSSH ("OPENSSH PRIVATE KEY") encodings are
// accepted.
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrKeyNotFound, err)
		}
		return nil, fmt.Errorf("keys: read %s: %w", path, err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, ErrInvalidPEM
	}

	switch block.Type {
	case pemTypePrivate:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Join(ErrInvalidPEM, err)
		}
		key, ok := parsed.(ed25519.PrivateKey)
		if !ok {
			return nil, ErrUnsupportedKey
		}
		return key, nil
	case pemTypeOpenSSH:
		// The ssh package parses the whole PEM document itself.
		parsed, err := ssh.ParseRawPrivateKey(raw)
		if err != nil {
			return nil, errors.Join(ErrInvalidPEM, err)
		}
		key, ok := parsed.(*ed25519.PrivateKey)
		if !ok {
			return nil, ErrUnsupportedKey
		}
		return *key, nil
	default:
		return nil, ErrUnsupportedKey
	}
}

// LoadPublicKey reads an Ed25519 public key from a PKIX PEM file. The
// issuer itself never needs this; it exists for verifiers and tests.
func LoadPublicKey(path string) (ed25519.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrKeyNotFound, err)
		}
		return nil, fmt.Errorf("keys: read %s: %w", path, err)
	}

	block, _ := pem.Decode(raw)
	if block == nil || block.Type != pemTypePublic {
		return nil, ErrInvalidPEM
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, errors.Join(ErrInvalidPEM, err)
	}
	key, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	return key, nil
}

// SaveKeyPair writes the private key as PKCS#8 PEM (mode 0600) and the
// public key as PKIX PEM (mode 0644) to the given paths.
func SaveKeyPair(privPath, pubPath string, priv ed25519.PrivateKey, pub ed25519.PublicKey) error {
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return fmt.Errorf("keys: marshal private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return fmt.Errorf("keys: marshal public key: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: privDER})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: pubDER})

	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		return fmt.Errorf("keys: write %s: %w", privPath, err)
	}
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
		return fmt.Errorf("keys: write %s: %w", pubPath, err)
	}
	return nil
}

// Fingerprint returns the SHA256 fingerprint of the public key in OpenSSH
// notation ("SHA256:..."), for operators comparing key files by hand.
func Fingerprint(pub ed25519.PublicKey) (string, error) {
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("keys: fingerprint: %w", err)
	}
	return ssh.FingerprintSHA256(sshPub), nil
}
