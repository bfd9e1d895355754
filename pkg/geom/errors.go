package geom

import "github.com/pkg/errors"

// Sentinel error kinds returned by constructors and intersection routines.
// Callers use errors.Is against these; wrapping preserves the call site.
var (
	// ErrDegenerateGeometry is returned for a zero-length line, a
	// zero-radius arc/circle, or coincident points where distinctness is
	// required.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNonPlanar is returned when a constructor is given a point with
	// z != 0.
	ErrNonPlanar = errors.New("non-planar point in 2D primitive")
)
