package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeColor314 is the IGES type code for the Color entity.
const TypeColor314 = 314

// Color314 is IGES Entity 314: an RGB color on the 0..100 scale plus an
// optional name. It is a leaf entity — no substantive reference fields,
// forms 0 only.
type Color314 struct {
	Base

	Red, Green, Blue float64 // 0.0 .. 100.0
	Name             string
}

// NewColor314 returns black (0,0,0) with no name.
func NewColor314() *Color314 {
	return &Color314{Base: newBase(TypeColor314, 0)}
}

func (c *Color314) ReadDE(de *DirEntry) error {
	if de.FormNumber != 0 {
		return errors.Errorf("color314: form %d unsupported, only 0", de.FormNumber)
	}
	c.form = de.FormNumber
	return nil
}

func (c *Color314) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 3 {
		return errors.Errorf("color314: expected >=3 fields, got %d", len(pd.Fields))
	}
	var err error
	if c.Red, err = strconv.ParseFloat(pd.Fields[0], 64); err != nil {
		return errors.Wrap(err, "color314: parse red")
	}
	if c.Green, err = strconv.ParseFloat(pd.Fields[1], 64); err != nil {
		return errors.Wrap(err, "color314: parse green")
	}
	if c.Blue, err = strconv.ParseFloat(pd.Fields[2], 64); err != nil {
		return errors.Wrap(err, "color314: parse blue")
	}
	if len(pd.Fields) > 3 {
		c.Name = pd.Fields[3]
	}
	return nil
}

func (c *Color314) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{
		fmt.Sprintf("%g", c.Red),
		fmt.Sprintf("%g", c.Green),
		fmt.Sprintf("%g", c.Blue),
	}
	if c.Name != "" {
		fields = append(fields, c.Name)
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (c *Color314) Associate(m *Model) error {
	c.associated = true
	return nil
}

func (c *Color314) Rescale(sf float64) error { return nil }
