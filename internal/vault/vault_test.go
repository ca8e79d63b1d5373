package vault

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	first := DeriveKey()
	second := DeriveKey()

	if len(first) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Error("expected key derivation to be deterministic")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := DeriveKey()

	ciphertext, err := Encrypt("sk-test-12345", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plaintext, err := Decrypt(ciphertext, key)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if plaintext != "sk-test-12345" {
		t.Errorf("expected round-trip to return original, got '%s'", plaintext)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey()

	first, err := Encrypt("same plaintext", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	second, err := Encrypt("same plaintext", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if first == second {
		t.Error("expected distinct ciphertexts for identical plaintexts")
	}
}

func TestDecrypt_MalformedBase64(t *testing.T) {
	key := DeriveKey()

	_, err := Decrypt("not base64 !!!", key)
	if err == nil {
		t.Fatal("expected error for malformed base64")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("expected decode error, got: %v", err)
	}
}

func TestDecrypt_TooShort(t *testing.T) {
	key := DeriveKey()

	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	_, err := Decrypt(short, key)
	if err == nil {
		t.Fatal("expected error for truncated ciphertext")
	}
	if !strings.Contains(err.Error(), "too short") {
		t.Errorf("expected too-short error, got: %v", err)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	key := DeriveKey()

	ciphertext, err := Encrypt("secret value", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(ciphertext)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(tampered, key)
	if err == nil {
		t.Fatal("expected authentication failure for tampered ciphertext")
	}
	if !strings.Contains(err.Error(), "authentication") {
		t.Errorf("expected authentication error, got: %v", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	key := DeriveKey()

	ciphertext, err := Encrypt("secret value", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	wrong := make([]byte, len(key))
	copy(wrong, key)
	wrong[0] ^= 0xff

	if _, err := Decrypt(ciphertext, wrong); err == nil {
		t.Fatal("expected decryption under a different key to fail")
	}
}
