// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
)

const testHashKey = "test-secret-key"

func TestSignValue_RoundTrip(t *testing.T) {
	signed := SignValue("2f1c9e0a-session", testHashKey)

	if !strings.HasPrefix(signed, "2f1c9e0a-session.") {
		t.Fatalf("expected value prefix, got %q", signed)
	}

	value, ok := VerifySignedValue(signed, testHashKey)
	if !ok {
		t.Fatal("expected signature to verify")
	}
	if value != "2f1c9e0a-session" {
		t.Errorf("expected original value, got %q", value)
	}

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte("2f1c9e0a-session"))
	want := "2f1c9e0a-session." + base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	if signed != want {
		t.Fatalf("unexpected signature\nwant: %s\ngot:  %s", want, signed)
	}
}

func TestVerifySignedValue_Rejects(t *testing.T) {
	signed := SignValue("sid", testHashKey)

	tests := []struct {
		name   string
		signed string
		key    string
	}{
		{"wrong key", signed, "other-key"},
		{"tampered value", "sie" + signed[3:], testHashKey},
		{"tampered signature", flipFirstSignatureChar(signed), testHashKey},
		{"no separator", "sid", testHashKey},
		{"empty value", "." + strings.SplitN(signed, ".", 2)[1], testHashKey},
		{"empty signature", "sid.", testHashKey},
		{"bad base64", "sid.***", testHashKey},
		{"empty string", "", testHashKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if value, ok := VerifySignedValue(tt.signed, tt.key); ok {
				t.Fatalf("expected rejection, got value %q", value)
			}
		})
	}
}

func flipFirstSignatureChar(signed string) string {
	idx := strings.LastIndex(signed, ".") + 1
	replacement := "A"
	if signed[idx] == 'A' {
		replacement = "B"
	}
	return signed[:idx] + replacement + signed[idx+1:]
}

func TestPasswordFingerprint(t *testing.T) {
	fp := PasswordFingerprint("$2a$10$hash-one", testHashKey)

	if fp != PasswordFingerprint("$2a$10$hash-one", testHashKey) {
		t.Fatal("expected fingerprint to be deterministic")
	}
	if len(fp) != 16 {
		t.Errorf("expected 16 url-safe characters, got %q", fp)
	}
	if fp == PasswordFingerprint("$2a$10$hash-two", testHashKey) {
		t.Error("expected a different hash to change the fingerprint")
	}
	if fp == PasswordFingerprint("$2a$10$hash-one", "other-key") {
		t.Error("expected a different key to change the fingerprint")
	}
	if strings.Contains(fp, "hash-one") {
		t.Error("fingerprint must not expose the hash")
	}
}
