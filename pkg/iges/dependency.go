package iges

// Dependency classifies a parent->child edge per IGES Section 2.2.4.5.2.
type Dependency int

const (
	// DependencyNone means the child's lifetime is independent of the
	// parent; deleting the parent has no effect on the child.
	DependencyNone Dependency = iota
	// DependencyLogical means the child is referenced but may still
	// exist independently (e.g. a shared color or label entity).
	DependencyLogical
	// DependencyPhysical means the child cannot exist independent of
	// the parent: when the child's parent set becomes empty it is
	// deleted by the model.
	DependencyPhysical
)

func (d Dependency) String() string {
	switch d {
	case DependencyPhysical:
		return "physical"
	case DependencyLogical:
		return "logical"
	default:
		return "none"
	}
}
