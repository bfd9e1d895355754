package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeTransform124 is the IGES type code for the Transformation Matrix
// entity.
const TypeTransform124 = 124

// Transform124 is IGES Entity 124: a 3x4 rigid-body transform (rotation R
// plus translation T; the implicit fourth row is (0,0,0,1)). A transform
// may itself reference a parent transform, composing recursively.
type Transform124 struct {
	Base

	R [3][3]float64
	T [3]float64

	parent      *Transform124
	rawParentDE int // raw DE seq of the parent transform, before associate
}

// NewTransform124 returns an identity transform.
func NewTransform124() *Transform124 {
	t := &Transform124{Base: newBase(TypeTransform124, 0)}
	t.R[0][0], t.R[1][1], t.R[2][2] = 1, 1, 1
	return t
}

// SetParent makes t compose on top of parent. Rejected if parent's own
// chain already passes through t, which would create a cycle. Registers
// parent as a logical-dependency reference so writeOrder visits it (and
// assigns it a DE sequence) before t, the same way every other
// cross-entity pointer in this package is tracked.
func (t *Transform124) SetParent(parent *Transform124) error {
	if parent != nil {
		for p := parent; p != nil; p = p.parent {
			if p == t {
				return errors.Wrap(ErrCyclicDependency, "transform parent chain")
			}
		}
		if err := pushChild(t, &t.Base, parent, DependencyLogical); err != nil {
			return err
		}
	}
	t.parent = parent
	return nil
}

// Effective returns the composed rotation and translation from the root
// of the parent chain down to and including t: parentTransform . selfTransform.
func (t *Transform124) Effective() (r [3][3]float64, tr [3]float64) {
	if t.parent == nil {
		return t.R, t.T
	}
	pr, pt := t.parent.Effective()
	return composeRT(pr, pt, t.R, t.T)
}

func composeRT(pr [3][3]float64, pt [3]float64, r [3][3]float64, tr [3]float64) ([3][3]float64, [3]float64) {
	var outR [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += pr[i][k] * r[k][j]
			}
			outR[i][j] = sum
		}
	}
	var outT [3]float64
	for i := 0; i < 3; i++ {
		var sum float64
		for k := 0; k < 3; k++ {
			sum += pr[i][k] * tr[k]
		}
		outT[i] = sum + pt[i]
	}
	return outR, outT
}

// TransformPoint applies t's effective transform to p.
func (t *Transform124) TransformPoint(p [3]float64) [3]float64 {
	r, tr := t.Effective()
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = r[i][0]*p[0] + r[i][1]*p[1] + r[i][2]*p[2] + tr[i]
	}
	return out
}

func (t *Transform124) ReadDE(de *DirEntry) error {
	t.form = de.FormNumber
	return nil
}

// ReadPD expects 12 reals (R11..R13,T1,R21..R23,T2,R31..R33,T3) followed
// by an optional 13th field carrying the parent transform's raw DE
// sequence number (0 if none).
func (t *Transform124) ReadPD(pd *ParamData) error {
	if len(pd.Fields) < 12 {
		return errors.Errorf("transform124: expected >=12 fields, got %d", len(pd.Fields))
	}
	idx := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(pd.Fields[idx], 64)
			if err != nil {
				return errors.Wrap(err, "transform124: parse rotation")
			}
			t.R[i][j] = v
			idx++
		}
		v, err := strconv.ParseFloat(pd.Fields[idx], 64)
		if err != nil {
			return errors.Wrap(err, "transform124: parse translation")
		}
		t.T[i] = v
		idx++
	}
	if len(pd.Fields) > idx {
		n, err := strconv.Atoi(pd.Fields[idx])
		if err != nil {
			return errors.Wrap(err, "transform124: parse parent pointer")
		}
		t.rawParentDE = n
	}
	return nil
}

func (t *Transform124) Format(startIndex int) (*ParamData, int, error) {
	fields := make([]string, 0, 13)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			fields = append(fields, fmt.Sprintf("%g", t.R[i][j]))
		}
		fields = append(fields, fmt.Sprintf("%g", t.T[i]))
	}
	parentSeq := 0
	if t.parent != nil {
		parentSeq = t.parent.DESeq()
	}
	fields = append(fields, strconv.Itoa(parentSeq))
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (t *Transform124) Associate(m *Model) error {
	if t.associated {
		return nil
	}
	if t.rawParentDE != 0 {
		e, err := m.EntityBySeq(t.rawParentDE)
		if err != nil {
			return errors.Wrap(err, "transform124: resolve parent")
		}
		parent, ok := e.(*Transform124)
		if !ok {
			return errors.Errorf("transform124: parent DE %d is not a Transform124", t.rawParentDE)
		}
		if !parent.Associated() {
			if err := parent.Associate(m); err != nil {
				return err
			}
		}
		if err := t.SetParent(parent); err != nil {
			return err
		}
	}
	t.associated = true
	return nil
}

// Rescale multiplies the translation component by sf; rotation is
// dimensionless and untouched.
func (t *Transform124) Rescale(sf float64) error {
	if isBPointerSuppressed(t) {
		return nil
	}
	for i := range t.T {
		t.T[i] *= sf
	}
	return nil
}
