package models

import "time"

// Recipe is a single shared recipe record.
//
// A recipe always belongs to exactly one account. OwnerID is set at creation
// from the authenticated caller and is never changed afterwards; all mutating
// operations filter by {ID, OwnerID} so that a non-owner cannot tell an
// existing foreign recipe apart from a missing one.
type Recipe struct {
	// ID is the server-assigned UUID of the recipe.
	ID string `json:"id"`

	// Title is the display name of the recipe.
	Title string `json:"title"`

	// Description is a short free-text summary.
	Description string `json:"description"`

	// Ingredients is the ordered list of ingredient lines.
	// Persisted as a JSONB array to keep ordering intact.
	Ingredients []string `json:"ingredients"`

	// Instructions holds the preparation steps as free text.
	Instructions string `json:"instructions"`

	// OwnerID references the account that created the recipe. Immutable.
	OwnerID int64 `json:"owner_id"`

	// OwnerName is the denormalized username of the owner, captured at
	// creation time for display without an extra lookup.
	OwnerName string `json:"owner_name,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the server-side timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeUpdate describes a partial update of a recipe.
//
// Nil pointer fields are left untouched; non-nil fields replace the stored
// value. ID and OwnerID identify the target row and are both mandatory —
// the owner filter is what enforces authorization at the storage layer.
type RecipeUpdate struct {
	// ID is the UUID of the recipe to update.
	ID string

	// OwnerID is the authenticated caller's account ID. The update matches
	// only rows whose owner_id equals this value.
	OwnerID int64

	Title        *string
	Description  *string
	Ingredients  *[]string
	Instructions *string
}

// HasChanges reports whether at least one updatable field is set.
func (u RecipeUpdate) HasChanges() bool {
	return u.Title != nil || u.Description != nil || u.Ingredients != nil || u.Instructions != nil
}
