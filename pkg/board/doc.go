// Package board is the PCB client wrapper named in spec.md §1 as an
// external collaborator of the entity graph: it drives outline.Outline
// through its boolean and extrusion operations, then wraps the resulting
// geometry into a populated iges.Model (E102/E142/E144 entity chains) and,
// optionally, a previewable triangle mesh via pkg/kernel.
//
// Neither the outline engine nor the entity graph imports this package;
// board sits above both, which is why it is the place — not outline, not
// iges — where an outline.Extrusion first becomes a set of IGES entities.
package board
