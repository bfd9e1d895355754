// Package export renders a finalized outline.Outline (and, separately, a
// pkg/kernel preview mesh) to formats useful for looking at the geometry
// outside an IGES viewer: SVG and a rasterized PNG for a quick 2D look,
// DXF as a second neutral CAD interchange format, and 3MF for the 3D
// extrusion preview. None of this output feeds back into the entity
// graph or the outline engine — it is a one-way debug/interchange step
// that sits above both, the same way pkg/board does.
package export
