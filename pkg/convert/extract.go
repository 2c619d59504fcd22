package convert

import (
	"github.com/gouthamsk98/go-dae/pkg/collada"
)

// sceneGeometry locates the geometry to decode: the first geometry
// instanced by a node of the document's default visual scene.
func sceneGeometry(doc *collada.Document) (*collada.Geometry, error) {
	vs := doc.DefaultVisualScene()
	if vs == nil {
		return nil, geometryError(ErrNoVisualScene)
	}
	url := vs.FirstGeometryURL()
	if url == "" {
		return nil, geometryError(ErrNoGeometry)
	}
	geom := doc.GeometryByURL(url)
	if geom == nil {
		return nil, geometryError(ErrNoGeometry)
	}
	return geom, nil
}

// triangleLayout resolves where each attribute lives: which sources hold
// positions and normals, their offsets within the flat index block, and
// the block stride.
type triangleLayout struct {
	prim      *collada.Triangles
	positions *collada.Source
	normals   *collada.Source // nil when the primitive carries no normals
	posOffset int
	nrmOffset int // -1 when the primitive carries no normals
	stride    int
}

// resolveLayout inspects the geometry's first triangles primitive and
// works out the attribute layout from its role tags and input offsets.
func resolveLayout(geom *collada.Geometry) (*triangleLayout, error) {
	m := &geom.Mesh

	positions := m.SourceByRole(collada.RolePosition)
	if positions == nil {
		return nil, geometryError(ErrNoPositionSource)
	}
	if len(m.Triangles) == 0 {
		return nil, geometryError(ErrNoTriangles)
	}
	prim := &m.Triangles[0]

	lay := &triangleLayout{
		prim:      prim,
		positions: positions,
		nrmOffset: -1,
		stride:    prim.IndexStride(),
	}

	// VERTEX routes through the <vertices> block the position role was
	// tagged from; a bare POSITION input is the fallback spelling.
	if vertex := prim.InputBySemantic("VERTEX"); vertex != nil {
		lay.posOffset = vertex.Offset
	} else if pos := prim.InputBySemantic("POSITION"); pos != nil {
		lay.posOffset = pos.Offset
	} else {
		return nil, geometryError(ErrNoPositionInput)
	}

	if nrm := prim.InputBySemantic("NORMAL"); nrm != nil {
		if src := m.SourceByID(nrm.Source); src != nil {
			lay.normals = src
			lay.nrmOffset = nrm.Offset
		}
	}
	return lay, nil
}
