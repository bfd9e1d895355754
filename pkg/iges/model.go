package iges

import "github.com/pkg/errors"

// Tolerances holds the three configuration values spec.md's external
// interfaces section names: the model-wide minimum resolution, the
// general equality epsilon, and the degenerate-arc radial tolerance.
type Tolerances struct {
	MinResolution float64
	Epsilon       float64
	ArcRadialTol  float64
}

// DefaultTolerances returns the spec-mandated defaults.
func DefaultTolerances() Tolerances {
	return Tolerances{MinResolution: 1e-6, Epsilon: 1e-8, ArcRadialTol: 1e-3}
}

// GlobalParams holds the IGES Global-section fields the model cares
// about: units, the model-wide minimum resolution, and the authoring
// name. The file-level Global section has many more fields; parsing and
// re-emitting the rest is the parser/serializer's concern, not the
// entity graph's.
type GlobalParams struct {
	Units      string
	Resolution float64
	Author     string
}

// Model is the root container owning every entity, the global header
// fields, and the type-indexed registry. The model exclusively owns
// every Entity; all cross-entity references are non-owning and never
// outlive the model.
type Model struct {
	factories map[int]func() Entity

	all    []Entity // insertion order, for deterministic write-order DFS
	byType map[int][]Entity
	bySeq  map[int]Entity // populated during LoadFromRecords, keyed by DE seq

	tol    Tolerances
	global GlobalParams
}

// NewModel returns a model with the default tolerances and the built-in
// entity factories registered — the host registers any additional
// factories at initialization, per spec.md §6.
func NewModel() *Model {
	m := &Model{
		factories: make(map[int]func() Entity),
		byType:    make(map[int][]Entity),
		bySeq:     make(map[int]Entity),
		tol:       DefaultTolerances(),
		global:    GlobalParams{Units: "MM", Resolution: DefaultTolerances().MinResolution},
	}
	registerBuiltinFactories(m)
	return m
}

func registerBuiltinFactories(m *Model) {
	m.RegisterFactory(TypeTransform124, func() Entity { return NewTransform124() })
	m.RegisterFactory(TypeCompositeCurve102, func() Entity { return NewCompositeCurve102() })
	m.RegisterFactory(TypeCurveOnSurface142, func() Entity { return NewCurveOnSurface142() })
	m.RegisterFactory(TypeTrimmedSurface144, func() Entity { return NewTrimmedSurface144() })
	m.RegisterFactory(TypeColor314, func() Entity { return NewColor314() })
	m.RegisterFactory(TypeConicArc104, func() Entity { return NewConicArc104() })
	m.RegisterFactory(TypeCircularArc100, func() Entity { return NewCircularArc100() })
	m.RegisterFactory(TypeLine110, func() Entity { return NewLine110() })
	m.RegisterFactory(TypeVertexList502, func() Entity { return NewVertexList502() })
	m.RegisterFactory(TypeEdgeList504, func() Entity { return NewEdgeList504() })
	m.RegisterFactory(TypeManifoldSolidBRep186, func() Entity { return NewManifoldSolidBRep186() })
	m.RegisterFactory(TypeLoop508, func() Entity { return NewLoop508() })
	m.RegisterFactory(TypeFace510, func() Entity { return NewFace510() })
	m.RegisterFactory(TypeShell514, func() Entity { return NewShell514() })
	m.RegisterFactory(TypePlaneSurface190, func() Entity { return NewPlaneSurface190() })
	m.RegisterFactory(TypeCylindricalSurface192, func() Entity { return NewCylindricalSurface192() })
}

// RegisterFactory installs or replaces the constructor for typeCode.
func (m *Model) RegisterFactory(typeCode int, factory func() Entity) {
	m.factories[typeCode] = factory
}

// Tolerances returns the model's configured tolerances.
func (m *Model) Tolerances() Tolerances { return m.tol }

// SetTolerances overrides the model's configured tolerances.
func (m *Model) SetTolerances(t Tolerances) { m.tol = t }

// SetGlobal sets the model's Global-section fields.
func (m *Model) SetGlobal(units string, resolution float64, author string) {
	m.global = GlobalParams{Units: units, Resolution: resolution, Author: author}
}

// Global returns the model's Global-section fields.
func (m *Model) Global() GlobalParams { return m.global }

// CreateEntity constructs a new entity of typeCode via its registered
// factory and takes ownership of it.
func (m *Model) CreateEntity(typeCode int) (Entity, error) {
	factory, ok := m.factories[typeCode]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedEntity, "type %d", typeCode)
	}
	e := factory()
	m.adopt(e)
	return e, nil
}

func (m *Model) adopt(e Entity) {
	m.all = append(m.all, e)
	m.byType[e.TypeCode()] = append(m.byType[e.TypeCode()], e)
}

// GetEntitiesByType returns every live entity of the given type code, in
// creation order.
func (m *Model) GetEntitiesByType(typeCode int) []Entity {
	list := m.byType[typeCode]
	out := make([]Entity, len(list))
	copy(out, list)
	return out
}

// EntityBySeq resolves a DE sequence-number pointer into its entity,
// valid only during/after LoadFromRecords has populated the sequence
// table, or after WriteToRecords has assigned one.
func (m *Model) EntityBySeq(seq int) (Entity, error) {
	e, ok := m.bySeq[seq]
	if !ok {
		return nil, errors.Wrapf(ErrUnresolvedReference, "DE %d", seq)
	}
	return e, nil
}

// DeleteEntity destroys e: every child loses e as a parent (cascading
// deletion of any child whose parent set becomes empty while it is
// physically dependent), every parent forgets e as a child, and e is
// removed from the registry. No entity may hold a reference to e after
// this call returns.
func (m *Model) DeleteEntity(e Entity) error {
	for _, child := range e.Children() {
		if err := child.DelReference(e); err != nil {
			return err
		}
		if len(child.Parents()) == 0 && child.PhysicallyDependent() {
			if err := m.DeleteEntity(child); err != nil {
				return err
			}
		}
	}
	for _, parent := range e.Parents() {
		if err := parent.Unlink(e); err != nil {
			return err
		}
	}
	m.remove(e)
	return nil
}

func (m *Model) remove(e Entity) {
	for i, x := range m.all {
		if x == e {
			m.all = append(m.all[:i], m.all[i+1:]...)
			break
		}
	}
	list := m.byType[e.TypeCode()]
	for i, x := range list {
		if x == e {
			m.byType[e.TypeCode()] = append(list[:i], list[i+1:]...)
			break
		}
	}
	for seq, x := range m.bySeq {
		if x == e {
			delete(m.bySeq, seq)
		}
	}
}

// LoadFromRecords runs the two-phase load: phase 1 creates and populates
// a bare entity per Directory Entry (pointer fields retained as raw
// integers); phase 2 invokes Associate on every entity, collecting
// per-entity failures into the returned status rather than aborting on
// the first.
func (m *Model) LoadFromRecords(src RecordSource) (*LoadStatus, error) {
	status := newLoadStatus()

	des, err := src.DirEntries()
	if err != nil {
		return nil, errors.Wrap(ErrIoError, err.Error())
	}

	var loaded []Entity
	for _, de := range des {
		e, err := m.CreateEntity(de.TypeCode)
		if err != nil {
			status.Failed[de.SequenceNumber] = err
			continue
		}
		if err := e.ReadDE(de); err != nil {
			status.Failed[de.SequenceNumber] = err
			continue
		}
		pd, err := src.ParamFor(de)
		if err != nil {
			status.Failed[de.SequenceNumber] = errors.Wrap(ErrIoError, err.Error())
			continue
		}
		if err := e.ReadPD(pd); err != nil {
			status.Failed[de.SequenceNumber] = err
			continue
		}
		e.SetDESeq(de.SequenceNumber)
		m.bySeq[de.SequenceNumber] = e
		loaded = append(loaded, e)
	}

	for _, e := range loaded {
		if e.Associated() {
			continue
		}
		if err := e.Associate(m); err != nil {
			status.Failed[e.DESeq()] = err
		}
	}

	return status, nil
}

// WriteToRecords assigns DE sequence numbers by the topological
// children-before-parents order (writeOrder, see writeorder.go) and
// writes each entity's DE followed by its PD records.
func (m *Model) WriteToRecords(sink RecordSink) error {
	order := m.writeOrder()
	pdIndex := 1
	for i, e := range order {
		e.SetDESeq(i + 1)
		m.bySeq[i+1] = e
	}
	for _, e := range order {
		de := &DirEntry{
			SequenceNumber: e.DESeq(),
			TypeCode:       e.TypeCode(),
			FormNumber:     e.FormNumber(),
			ParamPointer:   pdIndex,
		}
		if err := sink.WriteDE(de); err != nil {
			return errors.Wrap(ErrIoError, err.Error())
		}
		pd, next, err := e.Format(pdIndex)
		if err != nil {
			return err
		}
		if err := sink.WritePD(pd); err != nil {
			return errors.Wrap(ErrIoError, err.Error())
		}
		pdIndex = next
	}
	return nil
}
