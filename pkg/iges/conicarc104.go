package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeConicArc104 is the IGES type code for the Conic Arc entity.
const TypeConicArc104 = 104

// ConicArc104 is IGES Entity 104: a general conic `A x^2 + B xy + C y^2 +
// D x + E y + F = 0` in its defining plane, trimmed to an arc between
// Start and End. Registered for completeness of the conic-arc code path;
// for the PCB outline use case, circular arcs are represented more
// directly by E100 (CircularArc100).
type ConicArc104 struct {
	Base

	A, B, C, D, E, F float64
	ZT               float64 // plane offset along the curve's normal
	Start, End       [2]float64
}

// NewConicArc104 returns a zeroed conic arc.
func NewConicArc104() *ConicArc104 {
	return &ConicArc104{Base: newBase(TypeConicArc104, 0)}
}

func (c *ConicArc104) ReadDE(de *DirEntry) error {
	c.form = de.FormNumber
	return nil
}

func (c *ConicArc104) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 11 {
		return errors.Errorf("conicarc104: expected >=11 fields, got %d", len(pd.Fields))
	}
	vals := make([]float64, 11)
	for i, f := range pd.Fields[:11] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errors.Wrapf(err, "conicarc104: parse field %d", i)
		}
		vals[i] = v
	}
	c.A, c.B, c.C, c.D, c.E, c.F = vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	c.ZT = vals[6]
	c.Start = [2]float64{vals[7], vals[8]}
	c.End = [2]float64{vals[9], vals[10]}
	return nil
}

func (c *ConicArc104) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", c.A), fmt.Sprintf("%g", c.B), fmt.Sprintf("%g", c.C),
		fmt.Sprintf("%g", c.D), fmt.Sprintf("%g", c.E), fmt.Sprintf("%g", c.F),
		fmt.Sprintf("%g", c.ZT),
		fmt.Sprintf("%g", c.Start[0]), fmt.Sprintf("%g", c.Start[1]),
		fmt.Sprintf("%g", c.End[0]), fmt.Sprintf("%g", c.End[1]),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (c *ConicArc104) Associate(m *Model) error {
	c.associated = true
	return nil
}

// Rescale multiplies every embedded length (ZT, Start, End) by sf. The
// general conic coefficients A..F are dimension-mixed (some quadratic,
// some linear, one constant in length^2) and are left untouched, matching
// the source's treatment of conic entities as authored-in-place curves
// rather than re-derived ones.
func (c *ConicArc104) Rescale(sf float64) error {
	if isBPointerSuppressed(c) {
		return nil
	}
	c.ZT *= sf
	c.Start[0] *= sf
	c.Start[1] *= sf
	c.End[0] *= sf
	c.End[1] *= sf
	return nil
}
