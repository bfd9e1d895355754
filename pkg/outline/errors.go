package outline

import "github.com/pkg/errors"

// Sentinel error kinds specific to the outline engine. geom's own
// ErrDegenerateGeometry and ErrNonPlanar come from the segment
// constructors and pass through unchanged where this package builds
// segments itself (SubtractCircle, AddCircle, and the split and reverse
// steps of a boolean operation), since a malformed segment is still that
// failure, not a new one. AddSegment takes an already-built segment and
// does not return them.
var (
	// ErrInvalidIntersection is returned by a boolean operation when the
	// two outlines do not intersect at exactly zero or exactly two unique
	// points, or when the intersection is an edge overlap rather than a
	// clean crossing.
	ErrInvalidIntersection = errors.New("invalid intersection for boolean operation")

	// ErrDiscontinuous is returned by AddSegment when the new segment's
	// start does not meet the chain's current end within tolerance.
	ErrDiscontinuous = errors.New("segment does not continue the open chain")

	// ErrNotClosed is returned by Close when the chain's last segment
	// does not return to the first segment's start within tolerance.
	ErrNotClosed = errors.New("segment chain is not cyclic")

	// ErrWrongState is returned when an operation is attempted in a
	// lifecycle state that forbids it (e.g. adding a segment after Close,
	// or mutating a Finalized outline).
	ErrWrongState = errors.New("outline is in the wrong lifecycle state for this operation")

	// ErrEmptyOutline is returned by Close on a chain with no segments.
	ErrEmptyOutline = errors.New("outline has no segments")
)
