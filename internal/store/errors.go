package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a write violates a uniqueness rule
	// (user email, external id, vehicle plate).
	ErrAlreadyExists = errors.New("record already exists")
)

// Low-level database operation errors. These wrap driver errors when a
// call fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingPayload = errors.New("failed to encode json column")

	// ErrDocumentStore is returned when a Firestore call fails.
	ErrDocumentStore = errors.New("document store error")

	// ErrSessionStore is returned when the session backend fails.
	ErrSessionStore = errors.New("session store error")
)
