package board

import "github.com/pkg/errors"

var (
	// ErrNotFinalized is returned by any operation that requires the
	// board's outline to be Finalized (holes and boundary fixed) before
	// it can be built into entities or meshed.
	ErrNotFinalized = errors.New("board outline is not finalized")

	// ErrEmptyExtrusion is returned by Build when the underlying
	// extrusion produced no side panels, which would otherwise yield an
	// iges.Model with a cap but no walls.
	ErrEmptyExtrusion = errors.New("extrusion produced no side panels")
)
