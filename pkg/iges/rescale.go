package iges

// isBPointerSuppressed reports whether e is the BPTR (back-pointer)
// child of some E142 Curve-on-Parametric-Surface among its parents. A
// NURBS curve filling that role must not have its control points scaled
// by a model-wide rescale (TODO item 6): the surface's own
// parameterization already accounts for it, and rescaling the curve
// independently would pull it off the surface.
//
// This only produces correct answers once the full associate pass has
// run, since it relies on the child's parent set already containing the
// E142 entities that reference it — rescale must therefore always follow
// associate, never precede or interleave with it.
func isBPointerSuppressed(e Entity) bool {
	for _, parent := range e.Parents() {
		cos, ok := parent.(*CurveOnSurface142)
		if ok && cos.BPointer() == e {
			return true
		}
	}
	return false
}

// Rescale applies a model-wide scale factor by invoking Rescale(sf) on
// every entity exactly once. Must be called only after every entity has
// completed the associate pass, per the B-pointer suppression rule
// above.
func (m *Model) Rescale(sf float64) error {
	for _, e := range m.all {
		if err := e.Rescale(sf); err != nil {
			return err
		}
	}
	return nil
}
