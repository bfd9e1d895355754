package iges

import (
	"strconv"

	"github.com/pkg/errors"
)

// TypeEdgeList504 is the IGES type code for the Edge List entity.
const TypeEdgeList504 = 504

// Edge504 names an edge as a curve entity plus the two VertexList502
// indices (1-based, per IGES convention) it runs between.
type Edge504 struct {
	Curve      Entity
	StartVert  int
	EndVert    int
	rawCurveDE int
}

// EdgeList504 is IGES Entity 504: an ordered list of edges, each backed
// by a curve entity and a pair of vertex-list indices. A Physical
// dependency on its VertexList502 and on every curve it names.
type EdgeList504 struct {
	Base

	Vertices *VertexList502
	Edges    []Edge504

	rawVertexDE int
}

// NewEdgeList504 returns an empty edge list.
func NewEdgeList504() *EdgeList504 {
	return &EdgeList504{Base: newBase(TypeEdgeList504, 0)}
}

func (e *EdgeList504) SetVertexList(v *VertexList502) error {
	if err := pushChild(e, &e.Base, v, DependencyPhysical); err != nil {
		return err
	}
	e.Vertices = v
	return nil
}

func (e *EdgeList504) AddEdge(curve Entity, startVert, endVert int) error {
	if err := pushChild(e, &e.Base, curve, DependencyPhysical); err != nil {
		return err
	}
	e.Edges = append(e.Edges, Edge504{Curve: curve, StartVert: startVert, EndVert: endVert})
	return nil
}

func (e *EdgeList504) ReadDE(de *DirEntry) error {
	e.form = de.FormNumber
	return nil
}

func (e *EdgeList504) ReadPD(pd *ParamData) error {
	if len(pd.Fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(pd.Fields[0])
	if err != nil {
		return errors.Wrap(err, "edgelist504: parse count")
	}
	if len(pd.Fields) < 2+3*n {
		return errors.Errorf("edgelist504: declared %d edges, got %d fields", n, len(pd.Fields)-2)
	}
	e.rawVertexDE, err = strconv.Atoi(pd.Fields[1])
	if err != nil {
		return errors.Wrap(err, "edgelist504: parse vertex list pointer")
	}
	e.Edges = make([]Edge504, n)
	for i := 0; i < n; i++ {
		base := 2 + 3*i
		curveDE, err := strconv.Atoi(pd.Fields[base])
		if err != nil {
			return errors.Wrap(err, "edgelist504: parse curve pointer")
		}
		sv, err := strconv.Atoi(pd.Fields[base+1])
		if err != nil {
			return errors.Wrap(err, "edgelist504: parse start vertex")
		}
		ev, err := strconv.Atoi(pd.Fields[base+2])
		if err != nil {
			return errors.Wrap(err, "edgelist504: parse end vertex")
		}
		e.Edges[i] = Edge504{rawCurveDE: curveDE, StartVert: sv, EndVert: ev}
	}
	return nil
}

func (e *EdgeList504) Format(startIndex int) (*ParamData, int, error) {
	vertSeq := 0
	if e.Vertices != nil {
		vertSeq = e.Vertices.DESeq()
	}
	fields := []string{strconv.Itoa(len(e.Edges)), strconv.Itoa(vertSeq)}
	for _, ed := range e.Edges {
		curveSeq := 0
		if ed.Curve != nil {
			curveSeq = ed.Curve.DESeq()
		}
		fields = append(fields, strconv.Itoa(curveSeq), strconv.Itoa(ed.StartVert), strconv.Itoa(ed.EndVert))
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (e *EdgeList504) Associate(m *Model) error {
	if e.associated {
		return nil
	}
	if e.rawVertexDE != 0 {
		v, err := m.EntityBySeq(e.rawVertexDE)
		if err != nil {
			return errors.Wrap(err, "edgelist504: resolve vertex list")
		}
		vl, ok := v.(*VertexList502)
		if !ok {
			return errors.Errorf("edgelist504: vertex list DE %d is not E502", e.rawVertexDE)
		}
		if !vl.Associated() {
			if err := vl.Associate(m); err != nil {
				return err
			}
		}
		if err := e.SetVertexList(vl); err != nil {
			return err
		}
	}
	for i, ed := range e.Edges {
		if ed.rawCurveDE == 0 {
			continue
		}
		curve, err := m.EntityBySeq(ed.rawCurveDE)
		if err != nil {
			return errors.Wrap(err, "edgelist504: resolve edge curve")
		}
		if !curve.Associated() {
			if err := curve.Associate(m); err != nil {
				return err
			}
		}
		if err := pushChild(e, &e.Base, curve, DependencyPhysical); err != nil {
			return err
		}
		e.Edges[i].Curve = curve
	}
	e.associated = true
	return nil
}

func (e *EdgeList504) Rescale(sf float64) error {
	return nil
}
