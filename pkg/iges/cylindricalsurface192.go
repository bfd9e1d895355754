package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeCylindricalSurface192 is the IGES type code for the Right Circular
// Cylindrical Surface entity.
const TypeCylindricalSurface192 = 192

// CylindricalSurface192 is IGES Entity 192: an unbounded right circular
// cylindrical surface given by a point on its axis, the axis direction,
// and a radius. board wires one of these as the base surface of every
// extruded wall panel swept from an Arc or Circle segment; the outer E142
// boundary curve does the trimming to the panel's actual height and
// angular span.
type CylindricalSurface192 struct {
	Base

	Location [3]float64
	Axis     [3]float64
	Radius   float64
}

// NewCylindricalSurface192 returns a cylinder of radius 0 along the Z
// axis through the origin; callers set real values before use.
func NewCylindricalSurface192() *CylindricalSurface192 {
	return &CylindricalSurface192{Base: newBase(TypeCylindricalSurface192, 0), Axis: [3]float64{0, 0, 1}}
}

func (c *CylindricalSurface192) ReadDE(de *DirEntry) error {
	c.form = de.FormNumber
	return nil
}

func (c *CylindricalSurface192) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 7 {
		return errors.Errorf("cylindricalsurface192: expected >=7 fields, got %d", len(pd.Fields))
	}
	vals := make([]float64, 7)
	for i, f := range pd.Fields[:7] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errors.Wrapf(err, "cylindricalsurface192: parse field %d", i)
		}
		vals[i] = v
	}
	c.Location = [3]float64{vals[0], vals[1], vals[2]}
	c.Axis = [3]float64{vals[3], vals[4], vals[5]}
	c.Radius = vals[6]
	return nil
}

func (c *CylindricalSurface192) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", c.Location[0]), fmt.Sprintf("%g", c.Location[1]), fmt.Sprintf("%g", c.Location[2]),
		fmt.Sprintf("%g", c.Axis[0]), fmt.Sprintf("%g", c.Axis[1]), fmt.Sprintf("%g", c.Axis[2]),
		fmt.Sprintf("%g", c.Radius),
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (c *CylindricalSurface192) Associate(m *Model) error {
	c.associated = true
	return nil
}

// Rescale scales the location and radius but leaves the unit axis
// direction untouched.
func (c *CylindricalSurface192) Rescale(sf float64) error {
	if isBPointerSuppressed(c) {
		return nil
	}
	for i := range c.Location {
		c.Location[i] *= sf
	}
	c.Radius *= sf
	return nil
}
