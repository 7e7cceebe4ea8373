package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures and deadlocks.
	Retryable
)

// maxTxAttempts bounds how many times a transaction is run when it keeps
// failing with retryable errors.
const maxTxAttempts = 3

// txRetryBackoff is the first delay between transaction attempts; it doubles
// on every retry.
var txRetryBackoff = 20 * time.Millisecond

// ClassifyError unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Errors that are not PostgreSQL errors are [NonRetryable].
func ClassifyError(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// inTx runs fn inside a transaction. When the attempt fails with a
// [Retryable] error the whole transaction is run again, up to maxTxAttempts
// times in total. Once ctx is done the context error is returned.
func (db *DB) inTx(ctx context.Context, caller string, fn func(tx *sql.Tx) error) error {
	backoff := retry.WithMaxRetries(maxTxAttempts-1, retry.NewExponential(txRetryBackoff))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.runTx(ctx, fn)
		if err == nil || ClassifyError(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", caller).
			Int("attempt", attempt).
			Msg("retryable transaction failure")
		return retry.RetryableError(err)
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
