package convert

import (
	"github.com/gouthamsk98/go-dae/pkg/collada"
	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// TriangleMesh decodes the scene's first instanced geometry into an
// indexed triangle-list mesh with welded vertices. Missing normals
// default to the up vector, and the UV channel is a constant (0, 0)
// since texture coordinates are not decoded.
func TriangleMesh(doc *collada.Document) (*mesh.Mesh, error) {
	geom, err := sceneGeometry(doc)
	if err != nil {
		return nil, err
	}
	lay, err := resolveLayout(geom)
	if err != nil {
		return nil, err
	}
	positions, normals, indices, err := weldTriangles(lay)
	if err != nil {
		return nil, err
	}

	m := &mesh.Mesh{
		Topology:  mesh.TriangleList,
		Positions: positions,
		Normals:   normals,
		UV0:       constantUV0(len(positions)),
		Indices:   indices,
		Bounds:    mesh.ComputeBounds(positions),
	}

	// Tangents are best effort: with a constant UV channel there are no
	// gradients to derive them from, and the mesh ships without them.
	_ = mesh.GenerateTangents(m)

	return m, nil
}

// constantUV0 returns n texture coordinates, all (0, 0).
func constantUV0(n int) [][2]float32 {
	return make([][2]float32, n)
}
