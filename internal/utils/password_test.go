package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, password, hash, "hash must never equal the plaintext")
	assert.True(t, VerifyPassword(password, hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	password := "same password"

	first, err := HashPassword(password)
	require.NoError(t, err)
	second, err := HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of one password must differ (fresh salt)")
	assert.True(t, VerifyPassword(password, first))
	assert.True(t, VerifyPassword(password, second))
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty string", password: ""},
		{name: "only spaces", password: "   "},
		{name: "only tabs and newlines", password: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HashPassword(tt.password)
			assert.Error(t, err)
		})
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right password")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty stored value", encoded: ""},
		{name: "not a bcrypt hash", encoded: "plaintext-leaked-into-db"},
		{name: "truncated hash", encoded: "$2a$10$tooshort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// must return false, never panic
			assert.False(t, VerifyPassword("anything", tt.encoded))
		})
	}
}
