package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user is created with an email
	// that is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVenueNotFound is returned when no venue has the requested id.
	ErrVenueNotFound = errors.New("venue not found")

	// ErrAmenityNotFound is returned when no amenity has the requested id.
	ErrAmenityNotFound = errors.New("amenity not found")

	// ErrAmenityAlreadyExists is returned when an amenity name is taken.
	ErrAmenityAlreadyExists = errors.New("amenity already exists")

	// ErrInvalidReference is returned when a row points at a user or amenity
	// that does not exist (foreign key violation).
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
