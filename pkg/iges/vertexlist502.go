package iges

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// TypeVertexList502 is the IGES type code for the Vertex List entity.
const TypeVertexList502 = 502

// VertexList502 is IGES Entity 502: an ordered list of 3D points, used by
// B-rep entities (E508 Loop, E510 Face, E514 Shell via E504 Edge List) to
// name the vertices their edges connect. board does not build these or
// EdgeList504; they are reached through the model's factory registry and
// the load path.
type VertexList502 struct {
	Base

	Points [][3]float64
}

// NewVertexList502 returns an empty vertex list.
func NewVertexList502() *VertexList502 {
	return &VertexList502{Base: newBase(TypeVertexList502, 0)}
}

func (v *VertexList502) ReadDE(de *DirEntry) error {
	v.form = de.FormNumber
	return nil
}

func (v *VertexList502) ReadPD(pd *ParamData) error {
	if len(pd.Fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(pd.Fields[0])
	if err != nil {
		return errors.Wrap(err, "vertexlist502: parse count")
	}
	if len(pd.Fields) < 1+3*n {
		return errors.Errorf("vertexlist502: declared %d points, got %d fields", n, len(pd.Fields)-1)
	}
	v.Points = make([][3]float64, n)
	for i := 0; i < n; i++ {
		base := 1 + 3*i
		for j := 0; j < 3; j++ {
			val, err := strconv.ParseFloat(pd.Fields[base+j], 64)
			if err != nil {
				return errors.Wrap(err, "vertexlist502: parse coordinate")
			}
			v.Points[i][j] = val
		}
	}
	return nil
}

func (v *VertexList502) Format(startIndex int) (*ParamData, int, error) {
	fields := []string{strconv.Itoa(len(v.Points))}
	for _, p := range v.Points {
		fields = append(fields, fmt.Sprintf("%g", p[0]), fmt.Sprintf("%g", p[1]), fmt.Sprintf("%g", p[2]))
	}
	return &ParamData{Fields: fields}, startIndex + 1, nil
}

func (v *VertexList502) Associate(m *Model) error {
	v.associated = true
	return nil
}

func (v *VertexList502) Rescale(sf float64) error {
	if isBPointerSuppressed(v) {
		return nil
	}
	for i := range v.Points {
		v.Points[i][0] *= sf
		v.Points[i][1] *= sf
		v.Points[i][2] *= sf
	}
	return nil
}
