package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// signatureSeparator joins a value and its signature in a signed string.
const signatureSeparator = "."

// SignValue returns value followed by a dot and the URL-safe base64 HMAC-SHA256
// of value under key. The result is safe to place in a cookie.
//
// Example usage:
//
//	cookie := utils.SignValue(sessionID, secretKey)
func SignValue(value, key string) string {
	sig := base64.RawURLEncoding.EncodeToString(hashBytes([]byte(value), key))
	return value + signatureSeparator + sig
}

// VerifySignedValue checks a string produced by SignValue and returns the
// original value. The comparison is constant-time.
func VerifySignedValue(signed, key string) (string, bool) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value, sig := signed[:idx], signed[idx+1:]
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashBytes([]byte(value), key)) {
		return "", false
	}

	return value, true
}

// PasswordFingerprint derives a short keyed tag from a password hash. Reset
// tokens carry it, so changing the password retires every token minted
// before the change.
func PasswordFingerprint(passwordHash, key string) string {
	sum := hashBytes([]byte("reset:"+passwordHash), key)
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}

// hashBytes computes a raw HMAC-SHA256 digest over data with hashKey.
// A new HMAC instance is created on each call.
func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
