package iges

// writeOrder returns every entity the model owns in a topological order
// where every child appears before any of its parents — a child
// referenced by two different parents still appears exactly once, at the
// position reached by whichever parent's traversal finds it first.
//
// Iterating m.all (creation order) as the outer loop, rather than
// picking out apparent "roots", makes the result well-defined even for
// entities nobody references yet (freshly created, not yet wired into
// any parent) or ones whose only parent hasn't itself been visited.
func (m *Model) writeOrder() []Entity {
	visited := make(map[Entity]bool, len(m.all))
	order := make([]Entity, 0, len(m.all))

	var visit func(e Entity)
	visit = func(e Entity) {
		if visited[e] {
			return
		}
		visited[e] = true
		for _, child := range e.Children() {
			visit(child)
		}
		order = append(order, e)
	}

	for _, e := range m.all {
		visit(e)
	}
	return order
}
