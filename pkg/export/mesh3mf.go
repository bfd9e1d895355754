package export

import (
	"io"

	"github.com/hpinc/go3mf"
	"github.com/pcbkernel/iges/pkg/kernel"
	"github.com/pkg/errors"
)

// WriteMesh3MF packages a pkg/kernel preview mesh (the sdfx extrusion
// result, module 4) into a 3MF file — an end-to-end 3D
// interchange output for the extrusion pipeline, distinct from and never
// required by the IGES writer itself.
func WriteMesh3MF(w io.Writer, mesh *kernel.Mesh) error {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return ErrNoMesh
	}

	vertexCount := mesh.VertexCount()
	vertices := make([]go3mf.Point3D, vertexCount)
	for i := 0; i < vertexCount; i++ {
		vertices[i] = go3mf.Point3D{
			mesh.Vertices[3*i],
			mesh.Vertices[3*i+1],
			mesh.Vertices[3*i+2],
		}
	}

	triangles := make([]go3mf.Triangle, 0, len(mesh.Indices)/3)
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		triangles = append(triangles, go3mf.Triangle{
			V1: mesh.Indices[i], V2: mesh.Indices[i+1], V3: mesh.Indices[i+2],
		})
	}

	model := &go3mf.Model{}
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Name: mesh.PartName,
		Mesh: &go3mf.Mesh{
			Vertices:  go3mf.Vertices{Vertex: vertices},
			Triangles: go3mf.Triangles{Triangle: triangles},
		},
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	if err := go3mf.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "export: write 3MF")
	}
	return nil
}
