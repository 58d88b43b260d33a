package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an attempt to register a new
	// account fails because the username or e-mail is already taken.
	ErrAccountAlreadyExists = errors.New("username or email already exists")

	// ErrAccountNotFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRecipeNotFound is returned when a query, update, or delete targets
	// a recipe (identified by id — and, for mutations, owner_id) that does
	// not exist in the database. Because mutations always filter by owner,
	// a non-owner's attempt yields the same error as a missing record.
	ErrRecipeNotFound = errors.New("recipe was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no updatable columns or an unsupported value type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan recipe row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan recipe rows")
)
