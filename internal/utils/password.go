package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when no account matches a login
// attempt so unknown and known emails take comparable time.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("crrd-dummy-password"), bcrypt.DefaultCost)

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummyPassword burns one bcrypt comparison and always returns false.
func CompareDummyPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
	return false
}
