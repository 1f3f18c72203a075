package joincheck

import "errors"

var (
	// ErrMissingParameter is returned before any catalog call when a table or column name is empty.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrLookupFailed means the catalog could not produce a data type for a column.
	ErrLookupFailed = errors.New("column type lookup failed")
	// ErrIncompatible means both types resolved but cannot be joined directly.
	ErrIncompatible = errors.New("join columns are incompatible")
	// ErrMutationFailed means a column type change was rejected by the database.
	ErrMutationFailed = errors.New("column type change failed")
)

// Error is a failure whose text can be shown to an end user as-is.
// Kind is one of the Err* sentinels, so errors.Is(err, ErrIncompatible) works.
// Err holds the technical cause, when one is kept.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
