package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values of the wrong shape.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the identifier is
	// unknown OR the password is wrong. The two cases are deliberately not
	// distinguishable, preventing account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRecipeID is returned when a recipe identifier is not a
	// well-formed UUID.
	ErrInvalidRecipeID = errors.New("invalid recipe id")

	// ErrNothingToUpdate is returned when a partial update carries none of
	// the recognized recipe fields.
	ErrNothingToUpdate = errors.New("no recognized fields to update")

	// ErrTokenIsExpiredOrInvalid is the uniform failure for any token that
	// does not verify: bad signature, past expiry, or malformed structure.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps failures while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrSigningKeyNotConfigured is returned when a token operation is
	// attempted while the process has no signing key configured. Routes
	// map it to an internal configuration error, never to 401.
	ErrSigningKeyNotConfigured = errors.New("token signing key is not configured")
)
