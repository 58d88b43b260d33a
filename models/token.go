package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every session token.
//
// It extends the RFC 7519 registered claims (sub, exp, iat, jti, iss) with
// the account's username and e-mail so that handlers can identify the caller
// without a database round-trip. The "sub" claim holds the account ID encoded
// as a base-10 string.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the unique public name of the authenticated account.
	Username string `json:"username"`

	// Email is the e-mail address of the authenticated account.
	Email string `json:"email"`
}

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// AccountID is a cached, parsed copy of the "sub" (subject) claim converted
// to int64. It is populated during issuance and verification and avoids
// repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	AccountID int64 `json:"-"`
}

// GetAccountID extracts the account identifier from the token's "sub"
// (subject) claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account ID from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account ID from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
