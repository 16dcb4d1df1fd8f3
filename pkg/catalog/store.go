package catalog

import "errors"

// Store is the backend-agnostic entry point to catalog storage. Callers
// attach to a backend, access tables by name, and detach when done.
type Store interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Store to the backend described by config.
	// Creates the data directory if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, table operations return ErrDetached.
	Detach() error
}

// Table provides uniform CRUD over the records of a single schema.
type Table interface {
	// Get retrieves the record with the given row ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id int64) (Record, error)

	// Set creates or updates a record. When id is 0 a new row is
	// inserted and its assigned ID returned; otherwise the existing
	// row is replaced. Returns the ID actually used.
	Set(id int64, rec Record) (int64, error)

	// Delete removes the record with the given row ID.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id int64) error

	// Fetch returns all records matching the filter, a map of field
	// name to user-written pattern text. Each pattern is evaluated by
	// the matcher registered for the field's matcher kind; entries are
	// ANDed. An empty filter returns every record in the table.
	// Returns ErrInvalidFilter if a filter names an unknown field.
	Fetch(filter map[string]string) ([]Record, error)
}

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrTableNotFound   = errors.New("table not found")
)

// Table operation errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record ID")
	ErrFieldUnknown  = errors.New("unknown field")
	ErrInvalidFilter = errors.New("invalid filter field")
)
