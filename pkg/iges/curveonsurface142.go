package iges

import (
	"strconv"

	"github.com/pkg/errors"
)

// TypeCurveOnSurface142 is the IGES type code for the Curve on a
// Parametric Surface entity.
const TypeCurveOnSurface142 = 142

// CurveOnSurfacePreference mirrors the IGES form field: which of the
// surface-space (SPTR) or model-space (BPTR) curve representations a
// consumer should prefer.
type CurveOnSurfacePreference int

const (
	PreferenceUnspecified CurveOnSurfacePreference = 0
	PreferenceSPTR        CurveOnSurfacePreference = 1
	PreferenceBPTR        CurveOnSurfacePreference = 2
	PreferenceBoth        CurveOnSurfacePreference = 3
)

// CurveOnSurface142 is IGES Entity 142: a curve lying on a parametric
// surface, carrying a back-pointer (BPTR) child curve in model space
// (typically an E102 Composite Curve) and a reference to the surface it
// lies on. The BPTR child inherits this entity's own dependency tag
// (TODO item 1's inheritance rule) and is exempt from model-wide rescale
// when it is a NURBS curve (TODO item 6) — see rescale.go.
type CurveOnSurface142 struct {
	Base

	Preference CurveOnSurfacePreference

	surface Entity
	bptr    Entity

	rawSurfaceDE int
	rawBPTR      int
}

// NewCurveOnSurface142 returns an empty curve-on-surface entity.
func NewCurveOnSurface142() *CurveOnSurface142 {
	return &CurveOnSurface142{Base: newBase(TypeCurveOnSurface142, 0)}
}

// SetSurface registers surface as a logical-dependency reference: the
// surface can outlive this curve-on-surface entity.
func (c *CurveOnSurface142) SetSurface(surface Entity) error {
	if err := pushChild(c, &c.Base, surface, DependencyLogical); err != nil {
		return err
	}
	c.surface = surface
	return nil
}

// SetBPointer registers curve as the model-space back-pointer child,
// inheriting this entity's own physical-dependency tag per TODO item 1.
func (c *CurveOnSurface142) SetBPointer(curve Entity) error {
	if err := pushChild(c, &c.Base, curve, DependencyPhysical); err != nil {
		return err
	}
	c.bptr = curve
	return nil
}

// BPointer returns the model-space back-pointer child curve, or nil.
func (c *CurveOnSurface142) BPointer() Entity { return c.bptr }

// Surface returns the referenced surface, or nil.
func (c *CurveOnSurface142) Surface() Entity { return c.surface }

func (c *CurveOnSurface142) ReadDE(de *DirEntry) error {
	c.form = de.FormNumber
	return nil
}

func (c *CurveOnSurface142) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 3 {
		return errors.Errorf("curveonsurface142: expected >=3 fields, got %d", len(pd.Fields))
	}
	pref, err := strconv.Atoi(pd.Fields[0])
	if err != nil {
		return errors.Wrap(err, "curveonsurface142: parse preference")
	}
	c.Preference = CurveOnSurfacePreference(pref)
	surf, err := strconv.Atoi(pd.Fields[1])
	if err != nil {
		return errors.Wrap(err, "curveonsurface142: parse surface pointer")
	}
	c.rawSurfaceDE = surf
	bptr, err := strconv.Atoi(pd.Fields[2])
	if err != nil {
		return errors.Wrap(err, "curveonsurface142: parse bptr pointer")
	}
	c.rawBPTR = bptr
	return nil
}

func (c *CurveOnSurface142) Format(startIndex int) (*ParamData, int, error) {
	surfSeq, bptrSeq := 0, 0
	if c.surface != nil {
		surfSeq = c.surface.DESeq()
	}
	if c.bptr != nil {
		bptrSeq = c.bptr.DESeq()
	}
	fields := []string{
		strconv.Itoa(int(c.Preference)),
		strconv.Itoa(surfSeq),
		strconv.Itoa(bptrSeq),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (c *CurveOnSurface142) Associate(m *Model) error {
	if c.associated {
		return nil
	}
	if c.rawSurfaceDE != 0 {
		surf, err := m.EntityBySeq(c.rawSurfaceDE)
		if err != nil {
			return errors.Wrap(err, "curveonsurface142: resolve surface")
		}
		if !surf.Associated() {
			if err := surf.Associate(m); err != nil {
				return err
			}
		}
		if err := c.SetSurface(surf); err != nil {
			return err
		}
	}
	if c.rawBPTR != 0 {
		curve, err := m.EntityBySeq(c.rawBPTR)
		if err != nil {
			return errors.Wrap(err, "curveonsurface142: resolve bptr")
		}
		if !curve.Associated() {
			if err := curve.Associate(m); err != nil {
				return err
			}
		}
		if err := c.SetBPointer(curve); err != nil {
			return err
		}
	}
	c.associated = true
	return nil
}

func (c *CurveOnSurface142) Rescale(sf float64) error {
	return nil
}
