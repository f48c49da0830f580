package hash

import (
	"encoding/hex"
	"testing"
)

func TestHMACSHA256Deterministic(t *testing.T) {
	hasher := NewHMACSHA256("session-key")

	first, err := hasher.Hash("opaque-session-token")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("opaque-session-token")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if string(first) != string(second) {
		t.Error("same key and plaintext should produce the same digest")
	}
	if _, err := hex.DecodeString(string(first)); err != nil {
		t.Errorf("Hash() = %q, want hex encoding: %v", first, err)
	}
	if len(first) != 64 {
		t.Errorf("len(Hash()) = %d, want 64 hex chars for SHA-256", len(first))
	}
}

func TestHMACSHA256Verify(t *testing.T) {
	hasher := NewHMACSHA256("session-key")

	digest, err := hasher.Hash("token-a")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !hasher.Verify(string(digest), "token-a") {
		t.Error("Verify() = false for the original plaintext")
	}
	if hasher.Verify(string(digest), "token-b") {
		t.Error("Verify() = true for a different plaintext")
	}
	if hasher.Verify("", "token-a") {
		t.Error("Verify() = true for an empty digest")
	}
}

func TestHMACSHA256KeyMatters(t *testing.T) {
	digest, err := NewHMACSHA256("key-a").Hash("token")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if NewHMACSHA256("key-b").Verify(string(digest), "token") {
		t.Error("Verify() = true with a different key")
	}
}
