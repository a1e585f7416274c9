package memstore

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by First and Last when the set or view holds no
	// entries. Callers that want to avoid it check Empty first.
	ErrEmpty = errors.New("memstore: empty set")

	// ErrNoFilter is returned when an operation needs the prefix filter but
	// the set was built without one, or was built as filtered with a nil
	// filter.
	ErrNoFilter = errors.New("memstore: prefix filter not configured")

	// ErrKeyOutOfRange is returned when a key or view boundary falls outside
	// the bounds of the view it was given to.
	ErrKeyOutOfRange = errors.New("memstore: key outside view bounds")
)

// UnsupportedError identifies an operation this package deliberately does
// not implement. It wraps errors.ErrUnsupported, so
// errors.Is(err, errors.ErrUnsupported) matches.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("memstore: %s is deliberately not implemented", e.Op)
}

func (e *UnsupportedError) Unwrap() error { return errors.ErrUnsupported }

func unsupported(op string) error { return &UnsupportedError{Op: op} }
