package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a note with the requested id does not
	// exist in the local store (tombstoned notes are still found).
	ErrNoteNotFound = errors.New("note was not found")

	// ErrTaskNotFound is returned when a task with the requested id does not
	// exist in the local store.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrTagNotFound is returned when the tag aggregate has no row for a name.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrOperationNotFound is returned when completing an operation log
	// record that does not exist.
	ErrOperationNotFound = errors.New("operation record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingColumn is returned when a structured column (content tree,
	// tag list, id list) cannot be encoded to or decoded from JSON.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
