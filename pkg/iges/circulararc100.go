package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeCircularArc100 is the IGES type code for the Circular Arc entity.
const TypeCircularArc100 = 100

// CircularArc100 is IGES Entity 100: a circular arc in the plane z = ZT,
// given by center, start, and end points. Not named in spec.md's short
// entity list, but required as the 2D-arc child entity type that backs a
// geom.Arc/geom.Circle segment inside a CompositeCurve102 — without it a
// composite curve built from an outline.Outline's arcs would have no
// corresponding entity to reference.
type CircularArc100 struct {
	Base

	ZT           float64
	Center       [2]float64
	Start, End   [2]float64
}

// NewCircularArc100 returns a zeroed circular arc.
func NewCircularArc100() *CircularArc100 {
	return &CircularArc100{Base: newBase(TypeCircularArc100, 0)}
}

func (a *CircularArc100) ReadDE(de *DirEntry) error {
	a.form = de.FormNumber
	return nil
}

func (a *CircularArc100) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 7 {
		return errors.Errorf("circulararc100: expected >=7 fields, got %d", len(pd.Fields))
	}
	vals := make([]float64, 7)
	for i, f := range pd.Fields[:7] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errors.Wrapf(err, "circulararc100: parse field %d", i)
		}
		vals[i] = v
	}
	a.ZT = vals[0]
	a.Center = [2]float64{vals[1], vals[2]}
	a.Start = [2]float64{vals[3], vals[4]}
	a.End = [2]float64{vals[5], vals[6]}
	return nil
}

func (a *CircularArc100) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", a.ZT),
		fmt.Sprintf("%g", a.Center[0]), fmt.Sprintf("%g", a.Center[1]),
		fmt.Sprintf("%g", a.Start[0]), fmt.Sprintf("%g", a.Start[1]),
		fmt.Sprintf("%g", a.End[0]), fmt.Sprintf("%g", a.End[1]),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (a *CircularArc100) Associate(m *Model) error {
	a.associated = true
	return nil
}

func (a *CircularArc100) Rescale(sf float64) error {
	if isBPointerSuppressed(a) {
		return nil
	}
	a.ZT *= sf
	a.Center[0] *= sf
	a.Center[1] *= sf
	a.Start[0] *= sf
	a.Start[1] *= sf
	a.End[0] *= sf
	a.End[1] *= sf
	return nil
}
