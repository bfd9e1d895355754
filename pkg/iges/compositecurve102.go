package iges

import (
	"strconv"

	"github.com/pkg/errors"
)

// TypeCompositeCurve102 is the IGES type code for the Composite Curve
// entity.
const TypeCompositeCurve102 = 102

// CompositeCurve102 is IGES Entity 102: an ordered chain of curve
// entities (E100 Circular Arc, E104 Conic Arc, E110 Line, or nested
// E102s) traversed end to end. Every curve added to a composite curve is
// Physical Dependency per TODO item 1 — the composite curve owns its
// curves; they cannot outlive it independently.
type CompositeCurve102 struct {
	Base

	rawCurveDEs []int // raw DE seqs, populated by ReadPD before associate
}

// NewCompositeCurve102 returns an empty composite curve.
func NewCompositeCurve102() *CompositeCurve102 {
	return &CompositeCurve102{Base: newBase(TypeCompositeCurve102, 0)}
}

// AddChild appends curve to the chain, tagging the edge Physical.
func (c *CompositeCurve102) AddChild(curve Entity) error {
	return pushChild(c, &c.Base, curve, DependencyPhysical)
}

// Curves returns the composite curve's children in chain order.
func (c *CompositeCurve102) Curves() []Entity {
	return c.Children()
}

func (c *CompositeCurve102) ReadDE(de *DirEntry) error {
	c.form = de.FormNumber
	return nil
}

func (c *CompositeCurve102) ReadPD(pd *ParamData) error {
	if len(pd.Fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(pd.Fields[0])
	if err != nil {
		return errors.Wrap(err, "compositecurve102: parse curve count")
	}
	if len(pd.Fields) < n+1 {
		return errors.Errorf("compositecurve102: declared %d curves, got %d fields", n, len(pd.Fields)-1)
	}
	c.rawCurveDEs = make([]int, n)
	for i := 0; i < n; i++ {
		seq, err := strconv.Atoi(pd.Fields[i+1])
		if err != nil {
			return errors.Wrap(err, "compositecurve102: parse curve pointer")
		}
		c.rawCurveDEs[i] = seq
	}
	return nil
}

func (c *CompositeCurve102) Format(startIndex int) (*ParamData, int, error) {
	fields := make([]string, 0, len(c.children)+1)
	fields = append(fields, strconv.Itoa(len(c.children)))
	for _, child := range c.children {
		fields = append(fields, strconv.Itoa(child.DESeq()))
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (c *CompositeCurve102) Associate(m *Model) error {
	if c.associated {
		return nil
	}
	for _, seq := range c.rawCurveDEs {
		curve, err := m.EntityBySeq(seq)
		if err != nil {
			return errors.Wrap(err, "compositecurve102: resolve curve")
		}
		if !curve.Associated() {
			if err := curve.Associate(m); err != nil {
				return err
			}
		}
		if err := c.AddChild(curve); err != nil {
			return err
		}
	}
	c.associated = true
	return nil
}

func (c *CompositeCurve102) Rescale(sf float64) error {
	return nil // composite curve carries no embedded lengths of its own
}
