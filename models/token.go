package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a password-reset JWT.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The subject claim carries
// the email of the account the token was issued for and the audience claim
// carries the purpose tag the token is scoped to.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is a cached copy of the "sub" claim.
	Email string `json:"-"`

	// PasswordFingerprint is the "pwf" claim: a tag of the account's
	// password hash at the time the token was issued.
	PasswordFingerprint string `json:"pwf,omitempty"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
