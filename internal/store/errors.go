package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAgreementExists is returned when the owner already has an agreement
	// with the same identifier.
	ErrAgreementExists = errors.New("agreement already exists")

	// ErrAgreementNotFound is returned when no agreement matches the
	// requested owner and index.
	ErrAgreementNotFound = errors.New("agreement was not found")

	// ErrAgreementNotSaved is returned when an upsert into the local cache
	// reports success but touches no rows.
	ErrAgreementNotSaved = errors.New("agreement was not saved")

	// ErrBlobNotFound is returned when no blob is stored under the requested
	// content identifier.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobKey is returned for keys that are not content identifiers.
	ErrInvalidBlobKey = errors.New("invalid blob key")

	// ErrCorruptedConstraints is returned when the persisted constraint list
	// of an agreement cannot be decoded.
	ErrCorruptedConstraints = errors.New("corrupted agreement constraints")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrConnectingDatabase is returned when the database stays unreachable
	// after all connection attempts.
	ErrConnectingDatabase = errors.New("failed to connect database")
)
