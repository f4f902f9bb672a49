package secure

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// Feed URLs frequently embed secret tokens (Google private ICS links, for
// one), so they are encrypted before hitting the database. The ciphertext
// format is "v1:<nonce>:<sealed>" with base64 segments; the version prefix
// lets a future key rotation decrypt old rows.
const cipherVersionV1 = "v1"

type FeedCipher struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	}
}

// NewFeedCipher builds a cipher from a base64-encoded 32-byte key.
func NewFeedCipher(base64Key string) (*FeedCipher, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(base64Key))
	if err != nil {
		return nil, fmt.Errorf("decode feed url key: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("feed url key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return &FeedCipher{aead: aead}, nil
}

// Encrypt seals the plaintext under a freshly random nonce. The nonce is
// never reused: it is drawn from crypto/rand on every call.
func (c *FeedCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return cipherVersionV1 + ":" +
		base64.StdEncoding.EncodeToString(nonce) + ":" +
		base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *FeedCipher) Decrypt(ciphertext string) (string, error) {
	parts := strings.SplitN(ciphertext, ":", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed ciphertext")
	}
	if parts[0] != cipherVersionV1 {
		return "", fmt.Errorf("unsupported ciphertext version %q", parts[0])
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return "", fmt.Errorf("bad nonce length %d", len(nonce))
	}
	sealed, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt feed url: %w", err)
	}
	return string(plain), nil
}
