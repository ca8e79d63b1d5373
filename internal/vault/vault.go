// Package vault encrypts the stored API key at rest. The encryption key is
// derived locally on every call and never persisted.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/denisbrodbeck/machineid"
	"golang.org/x/crypto/hkdf"
)

const (
	// appID is the fixed application identifier mixed into key derivation.
	appID = "ai-pm-ide"

	// machineIDFallback stands in when the machine identifier cannot be
	// read. It must stay fixed so the derived key is stable across
	// restarts on the same host.
	machineIDFallback = "pmide-local-fallback"

	keySize   = 32
	nonceSize = 12
)

// DeriveKey derives the 256-bit encryption key from the application
// identifier and a stable per-machine identifier. The derivation is
// deterministic; the key is recomputed on each call and never stored.
func DeriveKey() []byte {
	machine, err := machineid.ProtectedID(appID)
	if err != nil {
		machine = machineIDFallback
	}

	secret := []byte(appID + ":" + machine)
	reader := hkdf.New(sha256.New, secret, nil, []byte("api-key-encryption"))

	key := make([]byte, keySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		// HKDF-SHA256 can produce far more than 32 bytes; this cannot
		// fail for our fixed parameters.
		panic(fmt.Sprintf("vault: key derivation failed: %v", err))
	}
	return key
}

// Encrypt encrypts plaintext with AES-256-GCM under the given key. A fresh
// random 96-bit nonce is drawn per call and prefixed to the ciphertext; the
// result is a single base64 string.
func Encrypt(plaintext string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to initialize GCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Malformed base64, a truncated payload, an
// authentication failure, and non-UTF8 plaintext each produce a distinct
// error.
func Decrypt(ciphertext string, key []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short: %d bytes", len(raw))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to initialize GCM: %w", err)
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: authentication failed")
	}

	if !utf8.Valid(plain) {
		return "", fmt.Errorf("decrypted payload is not valid UTF-8")
	}

	return string(plain), nil
}
