package tree

import "github.com/pkg/errors"

var (
	// ErrNilElement is returned when a nil element is appended.
	ErrNilElement = errors.New("nil element")
	// ErrOwnershipConflict is returned when the appended element already
	// has a parent.
	ErrOwnershipConflict = errors.New("element already has a parent")
	// ErrCycle is returned when the appended element is the target itself
	// or one of its ancestors.
	ErrCycle = errors.New("element would become its own ancestor")
	// ErrInvalidSelector is returned for selectors that are not exactly an
	// ancestor class and a target class.
	ErrInvalidSelector = errors.New("invalid selector")
)
