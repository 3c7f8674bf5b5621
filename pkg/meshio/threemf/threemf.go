// Package threemf writes a dmc quad mesh as a 3MF package. 3MF's base mesh
// element is triangle-only, so each quad is split into two triangles along
// its I0-I2 diagonal; dmc.Build never promises a planar quad, but the
// diagonal split is the same approximation any triangulating consumer of a
// dual-contouring mesh has to make.
package threemf

import (
	"fmt"
	"io"

	"github.com/chazu/lignin/pkg/dmc"
	"github.com/hpinc/go3mf"
)

// Write serializes vertices and quads to w as a single-object 3MF package.
func Write(w io.Writer, vertices []dmc.Vertex, quads []dmc.Quad) error {
	model := &go3mf.Model{}

	mesh := go3mf.Mesh{}
	mesh.Vertices.Vertex = make([]go3mf.Point3D, len(vertices))
	for i, v := range vertices {
		mesh.Vertices.Vertex[i] = go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, 0, len(quads)*2)
	for _, q := range quads {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle,
			go3mf.Triangle{V1: uint32(q.I0), V2: uint32(q.I1), V3: uint32(q.I2)},
			go3mf.Triangle{V1: uint32(q.I0), V2: uint32(q.I2), V3: uint32(q.I3)},
		)
	}

	obj := &go3mf.Object{ID: 1, Mesh: &mesh}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	enc := go3mf.NewEncoder(w)
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("threemf: encoding model: %w", err)
	}
	return nil
}
