// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account
// identifier in the context. Used together with GetAccountIDFromContext for
// type-safe retrieval of the account ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountIDCtxKey, int64(42))
var AccountIDCtxKey = contextKey("accountID")

// UsernameCtxKey is the key used to store the authenticated account's
// username in the context. Populated by the auth middleware from the token
// claims so that handlers can denormalize the owner name without a lookup.
var UsernameCtxKey = contextKey("username")

// GetAccountIDFromContext retrieves the authenticated account identifier
// from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	accountID, ok := utils.GetAccountIDFromContext(ctx)
//	if !ok {
//	    // handle missing account in context
//	}
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetUsernameFromContext retrieves the authenticated account's username from
// the context. The ok flag follows the same semantics as
// [GetAccountIDFromContext].
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
