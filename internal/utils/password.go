package utils

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the given plain-text
// password.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// password twice yields two different strings. The cost factor is
// bcrypt.DefaultCost, a moderate work factor suitable for interactive
// logins.
//
// Parameters:
//
//	password - plain-text password; must be non-blank
//
// Returns:
//
//	string - encoded bcrypt hash (algorithm, cost, salt and digest in one
//	         string, ready for storage)
//	error  - non-nil if the password is blank or hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plain-text password matches the stored
// bcrypt hash.
//
// The comparison runs in time independent of where the mismatch occurs.
// Any failure — wrong password, malformed or truncated stored hash — yields
// false; the function never panics and exposes no error detail to callers,
// so a corrupted hash is indistinguishable from a wrong password.
//
// Example usage:
//
//	if !utils.VerifyPassword(given, account.PasswordHash) {
//	    // reject login
//	}
func VerifyPassword(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
