package iges

import "github.com/pkg/errors"

// Sentinel error kinds returned by the entity graph. Callers use
// errors.Is against these; wrapping preserves the call site.
var (
	// ErrUnresolvedReference is returned when associate encounters a
	// pointer-integer with no matching DE sequence number.
	ErrUnresolvedReference = errors.New("unresolved entity reference")

	// ErrCyclicDependency is returned when a transform parent chain would
	// form a cycle. Child edges added through pushChild are not checked
	// for cycles.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrDuplicateChild names the pre-existing-edge case. AddReference
	// does not return it: it reports a pre-existing edge as added ==
	// false with a nil error, which callers treat as success-with-noop.
	ErrDuplicateChild = errors.New("duplicate child reference")

	// ErrUnsupportedEntity is returned when load encounters a type code
	// with no registered factory.
	ErrUnsupportedEntity = errors.New("unsupported entity type")

	// ErrIoError wraps an underlying record stream failure.
	ErrIoError = errors.New("record stream i/o error")
)
