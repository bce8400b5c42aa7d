package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when creating a user collides with
	// an existing account on a unique key (email or provider id).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProviderIDAlreadyExists is returned when linking a provider id that
	// already belongs to another user.
	ErrProviderIDAlreadyExists = errors.New("provider id already linked to another user")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note lookup, update or delete
	// targets an id that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrUnsupportedDSN is returned when the DSN scheme matches no driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingTags is returned when note tags cannot be converted to or
	// from their JSON column representation.
	ErrEncodingTags = errors.New("failed to encode note tags")
)
