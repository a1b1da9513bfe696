package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the ledger transaction loop what to do with a
// failed statement.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors.
	NonRetryable ErrorClassification = iota

	// Retryable errors may succeed on a fresh transaction: lost connections,
	// serialization failures, deadlocks and lock timeouts on the agreement row.
	Retryable

	// Conflict marks a unique violation, which the repositories report as a
	// duplicate record instead of a storage failure.
	Conflict
)

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	return classifyPostgres(err)
}

var pgCodeClasses = map[string]ErrorClassification{
	pgerrcode.TransactionRollback:  Retryable,
	pgerrcode.SerializationFailure: Retryable,
	pgerrcode.DeadlockDetected:     Retryable,
	pgerrcode.LockNotAvailable:     Retryable,
	pgerrcode.CannotConnectNow:     Retryable,
	pgerrcode.AdminShutdown:        Retryable,
	pgerrcode.UniqueViolation:      Conflict,
}

func classifyPostgres(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to its class. Every class 08 code
// (connection exception) is retryable.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if class, ok := pgCodeClasses[pgErr.Code]; ok {
		return class
	}
	if pgerrcode.IsConnectionException(pgErr.Code) {
		return Retryable
	}
	return NonRetryable
}
