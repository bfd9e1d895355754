package export

import "github.com/pkg/errors"

var (
	// ErrNoMesh is returned by WriteMesh3MF when handed a nil or empty mesh.
	ErrNoMesh = errors.New("export: mesh has no vertices")

	// ErrNotClosed is returned by the 2D exporters when given an outline
	// that has not at least reached Closed (a traversable boundary).
	ErrNotClosed = errors.New("export: outline is not Closed or Finalized")
)
