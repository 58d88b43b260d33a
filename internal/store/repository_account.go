package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/recipeshelf/recipe-shelf/internal/logger"
	"github.com/recipeshelf/recipe-shelf/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, and deletion
// against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createAccount] prepared query which returns all
// columns via a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on either the username or the
//     e-mail index → [ErrAccountAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Username, account.Email, account.PasswordHash)

	// create account in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved account from db
	if err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrAccountAlreadyExists
		}
		return models.Account{}, err
	}

	return account, nil
}

// FindAccountByIdentity retrieves an account whose username OR e-mail equals
// the given identifier. The single-parameter query lets the login route
// accept either field without revealing which one matched.
//
// Error handling:
//   - No matching row → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByIdentity(ctx context.Context, identifier string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var foundAccount models.Account
	row := r.db.QueryRowContext(ctx, findAccountByIdentity, identifier)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentity").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found account from db
	if err := row.Scan(&foundAccount.ID, &foundAccount.Username, &foundAccount.Email, &foundAccount.PasswordHash, &foundAccount.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentity").Msg("error: scanning error")
		return models.Account{}, err
	}

	return foundAccount, nil
}

// DeleteAccount removes the account with the given ID.
//
// Error handling:
//   - Zero rows affected → [ErrAccountNotFound] (the account was already
//     deleted, possibly by a concurrent request).
//   - Any driver-level error → wrapped with [ErrExecutingStatement].
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccount, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.DeleteAccount").
			Int64("account_id", accountID).
			Msg("error executing account delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
