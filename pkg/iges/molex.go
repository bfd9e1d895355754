package iges

import (
	"strconv"

	"github.com/pkg/errors"
)

// Entity type codes for the Molex-range B-rep entities (TODO item 5).
// These register factories, resolve their child-entity pointers on
// associate, and apply rescale to any embedded lengths, but carry no
// specialized authoring API: spec.md requires "a conforming
// implementation must register factories for at least the list in TODO
// item 5" without requiring full authoring support for them.
const (
	TypeManifoldSolidBRep186 = 186
	TypeLoop508              = 508
	TypeFace510              = 510
	TypeShell514             = 514
)

// Loop508 is IGES Entity 508: an ordered list of edge-use references
// (into an E504 Edge List) bounding a face.
type Loop508 struct {
	Base

	rawEdgeUseDEs []int
}

func NewLoop508() *Loop508 { return &Loop508{Base: newBase(TypeLoop508, 0)} }

func (l *Loop508) ReadDE(de *DirEntry) error { l.form = de.FormNumber; return nil }

func (l *Loop508) ReadPD(pd *ParamData) error {
	ints, err := parseIntList(pd.Fields, "loop508")
	l.rawEdgeUseDEs = ints
	return err
}

func (l *Loop508) Format(startIndex int) (*ParamData, int, error) {
	return &ParamData{Fields: formatIntChildren(l.children)}, startIndex + 1, nil
}

func (l *Loop508) Associate(m *Model) error {
	if l.associated {
		return nil
	}
	if err := associateRawList(l, &l.Base, m, l.rawEdgeUseDEs, DependencyPhysical); err != nil {
		return err
	}
	l.associated = true
	return nil
}

func (l *Loop508) Rescale(sf float64) error { return nil }

// Face510 is IGES Entity 510: a surface trimmed by one or more E508
// Loops.
type Face510 struct {
	Base

	rawLoopDEs []int
}

func NewFace510() *Face510 { return &Face510{Base: newBase(TypeFace510, 0)} }

func (f *Face510) ReadDE(de *DirEntry) error { f.form = de.FormNumber; return nil }

func (f *Face510) ReadPD(pd *ParamData) error {
	ints, err := parseIntList(pd.Fields, "face510")
	f.rawLoopDEs = ints
	return err
}

func (f *Face510) Format(startIndex int) (*ParamData, int, error) {
	return &ParamData{Fields: formatIntChildren(f.children)}, startIndex + 1, nil
}

func (f *Face510) Associate(m *Model) error {
	if f.associated {
		return nil
	}
	if err := associateRawList(f, &f.Base, m, f.rawLoopDEs, DependencyPhysical); err != nil {
		return err
	}
	f.associated = true
	return nil
}

func (f *Face510) Rescale(sf float64) error { return nil }

// Shell514 is IGES Entity 514: a connected set of E510 Faces bounding a
// manifold solid.
type Shell514 struct {
	Base

	rawFaceDEs []int
}

func NewShell514() *Shell514 { return &Shell514{Base: newBase(TypeShell514, 0)} }

func (s *Shell514) ReadDE(de *DirEntry) error { s.form = de.FormNumber; return nil }

func (s *Shell514) ReadPD(pd *ParamData) error {
	ints, err := parseIntList(pd.Fields, "shell514")
	s.rawFaceDEs = ints
	return err
}

func (s *Shell514) Format(startIndex int) (*ParamData, int, error) {
	return &ParamData{Fields: formatIntChildren(s.children)}, startIndex + 1, nil
}

func (s *Shell514) Associate(m *Model) error {
	if s.associated {
		return nil
	}
	if err := associateRawList(s, &s.Base, m, s.rawFaceDEs, DependencyPhysical); err != nil {
		return err
	}
	s.associated = true
	return nil
}

func (s *Shell514) Rescale(sf float64) error { return nil }

// ManifoldSolidBRep186 is IGES Entity 186: a manifold solid bounded by
// one or more E514 Shells.
type ManifoldSolidBRep186 struct {
	Base

	rawShellDEs []int
}

func NewManifoldSolidBRep186() *ManifoldSolidBRep186 {
	return &ManifoldSolidBRep186{Base: newBase(TypeManifoldSolidBRep186, 0)}
}

func (b *ManifoldSolidBRep186) ReadDE(de *DirEntry) error { b.form = de.FormNumber; return nil }

func (b *ManifoldSolidBRep186) ReadPD(pd *ParamData) error {
	ints, err := parseIntList(pd.Fields, "manifoldsolidbrep186")
	b.rawShellDEs = ints
	return err
}

func (b *ManifoldSolidBRep186) Format(startIndex int) (*ParamData, int, error) {
	return &ParamData{Fields: formatIntChildren(b.children)}, startIndex + 1, nil
}

func (b *ManifoldSolidBRep186) Associate(m *Model) error {
	if b.associated {
		return nil
	}
	if err := associateRawList(b, &b.Base, m, b.rawShellDEs, DependencyPhysical); err != nil {
		return err
	}
	b.associated = true
	return nil
}

func (b *ManifoldSolidBRep186) Rescale(sf float64) error { return nil }

// parseIntList parses every field of pd as a DE sequence number,
// skipping a leading count field if present and consistent with the
// remaining field count — the Molex-range entities in the source share
// this "count then N pointers" shape.
func parseIntList(fields []string, label string) ([]int, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	start := 0
	if n, err := strconv.Atoi(fields[0]); err == nil && n == len(fields)-1 {
		start = 1
	}
	out := make([]int, 0, len(fields)-start)
	for _, f := range fields[start:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: parse pointer", label)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatIntChildren(children []Entity) []string {
	fields := make([]string, 0, len(children)+1)
	fields = append(fields, strconv.Itoa(len(children)))
	for _, c := range children {
		fields = append(fields, strconv.Itoa(c.DESeq()))
	}
	return fields
}

// associateRawList resolves each raw DE sequence number in raws into an
// entity and pushes it as a child of self under dep, recursively
// associating any dependency that has not yet associated itself (the
// same out-of-order-safe pattern every other entity's Associate uses).
func associateRawList(self Entity, base *Base, m *Model, raws []int, dep Dependency) error {
	for _, seq := range raws {
		e, err := m.EntityBySeq(seq)
		if err != nil {
			return errors.Wrap(err, "associate: resolve reference")
		}
		if !e.Associated() {
			if err := e.Associate(m); err != nil {
				return err
			}
		}
		if err := pushChild(self, base, e, dep); err != nil {
			return err
		}
	}
	return nil
}
