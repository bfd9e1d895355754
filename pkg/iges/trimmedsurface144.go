package iges

import (
	"strconv"

	"github.com/pkg/errors"
)

// TypeTrimmedSurface144 is the IGES type code for the Trimmed
// Parametric Surface entity.
const TypeTrimmedSurface144 = 144

// TrimmedSurface144 is IGES Entity 144: a base parametric surface cut by
// one outer-boundary curve and zero or more inner-boundary curves
// (holes), each expressed as an E142 Curve-on-Parametric-Surface. The
// base surface is a Logical reference (it may be shared); the boundary
// curves are Physical (they exist only to trim this surface).
type TrimmedSurface144 struct {
	Base

	surface Entity
	outer   *CurveOnSurface142
	inner   []*CurveOnSurface142

	rawSurfaceDE int
	rawOuterDE   int
	rawInnerDEs  []int
}

// NewTrimmedSurface144 returns an empty trimmed surface.
func NewTrimmedSurface144() *TrimmedSurface144 {
	return &TrimmedSurface144{Base: newBase(TypeTrimmedSurface144, 0)}
}

func (t *TrimmedSurface144) SetSurface(surface Entity) error {
	if err := pushChild(t, &t.Base, surface, DependencyLogical); err != nil {
		return err
	}
	t.surface = surface
	return nil
}

func (t *TrimmedSurface144) SetOuterBoundary(outer *CurveOnSurface142) error {
	if err := pushChild(t, &t.Base, outer, DependencyPhysical); err != nil {
		return err
	}
	t.outer = outer
	return nil
}

func (t *TrimmedSurface144) AddInnerBoundary(hole *CurveOnSurface142) error {
	if err := pushChild(t, &t.Base, hole, DependencyPhysical); err != nil {
		return err
	}
	t.inner = append(t.inner, hole)
	return nil
}

func (t *TrimmedSurface144) Surface() Entity                   { return t.surface }
func (t *TrimmedSurface144) OuterBoundary() *CurveOnSurface142  { return t.outer }
func (t *TrimmedSurface144) InnerBoundaries() []*CurveOnSurface142 {
	return append([]*CurveOnSurface142{}, t.inner...)
}

func (t *TrimmedSurface144) ReadDE(de *DirEntry) error {
	t.form = de.FormNumber
	return nil
}

func (t *TrimmedSurface144) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 3 {
		return errors.Errorf("trimmedsurface144: expected >=3 fields, got %d", len(pd.Fields))
	}
	surf, err := strconv.Atoi(pd.Fields[0])
	if err != nil {
		return errors.Wrap(err, "trimmedsurface144: parse surface pointer")
	}
	t.rawSurfaceDE = surf
	outer, err := strconv.Atoi(pd.Fields[1])
	if err != nil {
		return errors.Wrap(err, "trimmedsurface144: parse outer pointer")
	}
	t.rawOuterDE = outer
	n, err := strconv.Atoi(pd.Fields[2])
	if err != nil {
		return errors.Wrap(err, "trimmedsurface144: parse inner count")
	}
	if len(pd.Fields) < 3+n {
		return errors.Errorf("trimmedsurface144: declared %d inner boundaries, got %d fields", n, len(pd.Fields)-3)
	}
	t.rawInnerDEs = make([]int, n)
	for i := 0; i < n; i++ {
		seq, err := strconv.Atoi(pd.Fields[3+i])
		if err != nil {
			return errors.Wrap(err, "trimmedsurface144: parse inner pointer")
		}
		t.rawInnerDEs[i] = seq
	}
	return nil
}

func (t *TrimmedSurface144) Format(startIndex int) (*ParamData, int, error) {
	surfSeq, outerSeq := 0, 0
	if t.surface != nil {
		surfSeq = t.surface.DESeq()
	}
	if t.outer != nil {
		outerSeq = t.outer.DESeq()
	}
	fields := []string{strconv.Itoa(surfSeq), strconv.Itoa(outerSeq), strconv.Itoa(len(t.inner))}
	for _, h := range t.inner {
		fields = append(fields, strconv.Itoa(h.DESeq()))
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (t *TrimmedSurface144) Associate(m *Model) error {
	if t.associated {
		return nil
	}
	if t.rawSurfaceDE != 0 {
		surf, err := m.EntityBySeq(t.rawSurfaceDE)
		if err != nil {
			return errors.Wrap(err, "trimmedsurface144: resolve surface")
		}
		if !surf.Associated() {
			if err := surf.Associate(m); err != nil {
				return err
			}
		}
		if err := t.SetSurface(surf); err != nil {
			return err
		}
	}
	if t.rawOuterDE != 0 {
		e, err := m.EntityBySeq(t.rawOuterDE)
		if err != nil {
			return errors.Wrap(err, "trimmedsurface144: resolve outer boundary")
		}
		outer, ok := e.(*CurveOnSurface142)
		if !ok {
			return errors.Errorf("trimmedsurface144: outer boundary DE %d is not E142", t.rawOuterDE)
		}
		if !outer.Associated() {
			if err := outer.Associate(m); err != nil {
				return err
			}
		}
		if err := t.SetOuterBoundary(outer); err != nil {
			return err
		}
	}
	for _, seq := range t.rawInnerDEs {
		e, err := m.EntityBySeq(seq)
		if err != nil {
			return errors.Wrap(err, "trimmedsurface144: resolve inner boundary")
		}
		hole, ok := e.(*CurveOnSurface142)
		if !ok {
			return errors.Errorf("trimmedsurface144: inner boundary DE %d is not E142", seq)
		}
		if !hole.Associated() {
			if err := hole.Associate(m); err != nil {
				return err
			}
		}
		if err := t.AddInnerBoundary(hole); err != nil {
			return err
		}
	}
	t.associated = true
	return nil
}

func (t *TrimmedSurface144) Rescale(sf float64) error {
	return nil
}
