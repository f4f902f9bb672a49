package secure

import (
	"encoding/base64"
	"strings"
	"testing"
)

func testKey() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestNewFeedCipherRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"too long", base64.StdEncoding.EncodeToString(make([]byte, 64))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFeedCipher(tt.key); err == nil {
				t.Fatalf("expected error for key %q", tt.key)
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := NewFeedCipher(testKey())
	if err != nil {
		t.Fatalf("NewFeedCipher: %v", err)
	}

	plaintext := "https://calendar.google.com/calendar/ical/abc/private-123token/basic.ics"
	sealed, err := c.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.Contains(sealed, "private-123token") {
		t.Fatal("ciphertext leaks plaintext")
	}
	if !strings.HasPrefix(sealed, "v1:") {
		t.Fatalf("ciphertext missing version prefix: %s", sealed)
	}

	got, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != plaintext {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestEncryptProducesDistinctCiphertexts(t *testing.T) {
	c, err := NewFeedCipher(testKey())
	if err != nil {
		t.Fatalf("NewFeedCipher: %v", err)
	}

	first, err := c.Encrypt("https://example.com/cal.ics")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	second, err := c.Encrypt("https://example.com/cal.ics")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if first == second {
		t.Fatal("two encryptions of the same plaintext must differ")
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	c, err := NewFeedCipher(testKey())
	if err != nil {
		t.Fatalf("NewFeedCipher: %v", err)
	}
	sealed, err := c.Encrypt("https://example.com/cal.ics")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	parts := strings.SplitN(sealed, ":", 3)
	raw, _ := base64.StdEncoding.DecodeString(parts[2])
	raw[0] ^= 0xFF
	tampered := parts[0] + ":" + parts[1] + ":" + base64.StdEncoding.EncodeToString(raw)

	if _, err := c.Decrypt(tampered); err == nil {
		t.Fatal("expected tampered ciphertext to fail authentication")
	}
}

func TestDecryptRejectsMalformedInput(t *testing.T) {
	c, err := NewFeedCipher(testKey())
	if err != nil {
		t.Fatalf("NewFeedCipher: %v", err)
	}
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no separators", "justsomestring"},
		{"unknown version", "v9:AAAA:AAAA"},
		{"bad nonce base64", "v1:???:AAAA"},
		{"short nonce", "v1:" + base64.StdEncoding.EncodeToString([]byte("abc")) + ":AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decrypt(tt.input); err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
		})
	}
}
