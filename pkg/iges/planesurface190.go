package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypePlaneSurface190 is the IGES type code for the Plane Surface entity.
const TypePlaneSurface190 = 190

// PlaneSurface190 is IGES Entity 190: an unbounded plane given by a point
// on the plane, a unit normal, and a reference direction fixing the
// plane's local U axis. board wires one of these as the base surface of
// every top/bottom TrimmedSurface144 cap; the outer/inner E142 boundary
// curves do the actual trimming, so the plane itself carries no extent.
type PlaneSurface190 struct {
	Base

	Point  [3]float64
	Normal [3]float64
	RefDir [3]float64
}

// NewPlaneSurface190 returns a plane through the origin with the normal
// and reference direction both zeroed; callers set real values before use.
func NewPlaneSurface190() *PlaneSurface190 {
	return &PlaneSurface190{Base: newBase(TypePlaneSurface190, 0)}
}

func (p *PlaneSurface190) ReadDE(de *DirEntry) error {
	p.form = de.FormNumber
	return nil
}

func (p *PlaneSurface190) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 9 {
		return errors.Errorf("planesurface190: expected >=9 fields, got %d", len(pd.Fields))
	}
	vals := make([]float64, 9)
	for i, f := range pd.Fields[:9] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errors.Wrapf(err, "planesurface190: parse field %d", i)
		}
		vals[i] = v
	}
	p.Point = [3]float64{vals[0], vals[1], vals[2]}
	p.Normal = [3]float64{vals[3], vals[4], vals[5]}
	p.RefDir = [3]float64{vals[6], vals[7], vals[8]}
	return nil
}

func (p *PlaneSurface190) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", p.Point[0]), fmt.Sprintf("%g", p.Point[1]), fmt.Sprintf("%g", p.Point[2]),
		fmt.Sprintf("%g", p.Normal[0]), fmt.Sprintf("%g", p.Normal[1]), fmt.Sprintf("%g", p.Normal[2]),
		fmt.Sprintf("%g", p.RefDir[0]), fmt.Sprintf("%g", p.RefDir[1]), fmt.Sprintf("%g", p.RefDir[2]),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (p *PlaneSurface190) Associate(m *Model) error {
	p.associated = true
	return nil
}

// Rescale scales the plane's point but leaves the unit normal and
// reference direction untouched — they are directions, not lengths.
func (p *PlaneSurface190) Rescale(sf float64) error {
	if isBPointerSuppressed(p) {
		return nil
	}
	for i := range p.Point {
		p.Point[i] *= sf
	}
	return nil
}
