package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeLine110 is the IGES type code for the Line entity.
const TypeLine110 = 110

// Line110 is IGES Entity 110: a 3D line segment between two points. Like
// CircularArc100, it is not in spec.md's short entity list but is the
// 2D-line child entity type that backs a geom.Line segment inside a
// CompositeCurve102.
type Line110 struct {
	Base

	Start, End [3]float64
}

// NewLine110 returns a degenerate line at the origin.
func NewLine110() *Line110 {
	return &Line110{Base: newBase(TypeLine110, 0)}
}

func (l *Line110) ReadDE(de *DirEntry) error {
	l.form = de.FormNumber
	return nil
}

func (l *Line110) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 6 {
		return errors.Errorf("line110: expected >=6 fields, got %d", len(pd.Fields))
	}
	vals := make([]float64, 6)
	for i, f := range pd.Fields[:6] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errors.Wrapf(err, "line110: parse field %d", i)
		}
		vals[i] = v
	}
	l.Start = [3]float64{vals[0], vals[1], vals[2]}
	l.End = [3]float64{vals[3], vals[4], vals[5]}
	return nil
}

func (l *Line110) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", l.Start[0]), fmt.Sprintf("%g", l.Start[1]), fmt.Sprintf("%g", l.Start[2]),
		fmt.Sprintf("%g", l.End[0]), fmt.Sprintf("%g", l.End[1]), fmt.Sprintf("%g", l.End[2]),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (l *Line110) Associate(m *Model) error {
	l.associated = true
	return nil
}

func (l *Line110) Rescale(sf float64) error {
	if isBPointerSuppressed(l) {
		return nil
	}
	for i := range l.Start {
		l.Start[i] *= sf
		l.End[i] *= sf
	}
	return nil
}
