package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/crrd/models"
	"github.com/golang-jwt/jwt/v5"
)

// ResetTokenParams configures reset token generation and validation.
type ResetTokenParams struct {
	// Issuer is the "iss" claim and must match on validation.
	Issuer string
	// Audience scopes the token to one purpose. A token minted for another
	// audience under the same key is rejected.
	Audience string
	// Duration is the token lifetime.
	Duration time.Duration
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (p ResetTokenParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// resetClaims is the claim set written into reset tokens.
type resetClaims struct {
	jwt.RegisteredClaims
	PasswordFingerprint string `json:"pwf"`
}

// GenerateResetToken creates a signed HMAC-SHA256 JWT for email.
//
// The token includes the following claims:
//   - Issuer    (iss): p.Issuer
//   - Subject   (sub): the account email
//   - Audience  (aud): p.Audience
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus p.Duration
//   - pwf:             fingerprint, see [PasswordFingerprint]
//
// Example usage:
//
//	token, err := utils.GenerateResetToken("ann@example.com", utils.PasswordFingerprint(user.PasswordHash, key), params)
func GenerateResetToken(email, fingerprint string, p ResetTokenParams) (models.Token, error) {
	if email == "" || fingerprint == "" || p.Issuer == "" || p.Audience == "" || p.Duration <= 0 || p.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating reset token")
	}

	now := p.now()
	claims := resetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   email,
			Audience:  jwt.ClaimStrings{p.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PasswordFingerprint: fingerprint,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing reset token: %w", err)
	}

	return models.Token{
		Token:               token,
		RegisteredClaims:    claims.RegisteredClaims,
		SignedString:        tokenString,
		Email:               email,
		PasswordFingerprint: fingerprint,
	}, nil
}

// ValidateResetToken verifies tokenString and returns the email it was issued
// for.
//
// Validation includes:
//   - HS256 signature verification using p.SignKey
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) check against p.Now
//   - Subject (sub) and fingerprint (pwf) presence
//
// Whether the fingerprint still matches the account is up to the caller.
func ValidateResetToken(tokenString string, p ResetTokenParams) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(p.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.Issuer),
		jwt.WithAudience(p.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	email, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if email == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	if claims.PasswordFingerprint == "" {
		return models.Token{}, errors.New("empty password fingerprint error")
	}

	return models.Token{
		Token:               token,
		RegisteredClaims:    claims.RegisteredClaims,
		SignedString:        tokenString,
		Email:               email,
		PasswordFingerprint: claims.PasswordFingerprint,
	}, nil
}
