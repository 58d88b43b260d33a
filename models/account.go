package models

import "time"

// Account represents a registered user of the recipe service.
// It carries identity attributes and the stored password hash.
// The hash must never leave trusted boundaries.
type Account struct {
	// ID is the internal unique identifier of the account,
	// assigned by the database on registration.
	ID int64 `json:"id"`

	// Username is the unique public name of the account.
	// Used for login and denormalized onto owned recipes.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	// Accepted as an alternative login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized to JSON; compared only via utils.VerifyPassword.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
