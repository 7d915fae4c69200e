package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFounderNotFound is returned when a read or a targeted write names an
	// id that is not present in the local store.
	ErrFounderNotFound = errors.New("founder was not found")

	// ErrFounderExists is returned when an insert or an id reassignment
	// collides with a record already held under the same id.
	ErrFounderExists = errors.New("founder already exists")

	// ErrPhotoNotFound is returned when no cached photo exists for a key.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrInvalidPhotoKey is returned for keys with an unknown role or an
	// empty id.
	ErrInvalidPhotoKey = errors.New("invalid photo key")
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

	// ErrScanningRow is returned when scanning column values from a result
	// row into a founder record fails.
	ErrScanningRow = errors.New("failed to scan founder row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan founder rows")
)
