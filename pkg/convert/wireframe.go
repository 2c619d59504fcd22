package convert

import (
	"github.com/gouthamsk98/go-dae/pkg/collada"
	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// WireframeMesh decodes the scene's first instanced geometry into a
// line-list mesh: one vertex per distinct raw position in the position
// source, and three undirected edges per triangle. Normals and UVs are
// placeholder values since wireframe rendering does not shade.
func WireframeMesh(doc *collada.Document) (*mesh.Mesh, error) {
	geom, err := sceneGeometry(doc)
	if err != nil {
		return nil, err
	}
	lay, err := resolveLayout(geom)
	if err != nil {
		return nil, err
	}

	// Pool every distinct raw position in source order, whether or not
	// a triangle references it.
	src := lay.positions
	if src.Stride <= 0 {
		return nil, geometryError(ErrMalformedData)
	}
	count := len(src.Values) / src.Stride
	pool := make(map[vertexKey]uint32, count)
	var positions [][3]float32
	for i := 0; i < count; i++ {
		pos, ok := readVec3(src, i)
		if !ok {
			return nil, geometryError(ErrMalformedData)
		}
		key := quantize(pos)
		if _, ok := pool[key]; ok {
			continue
		}
		pool[key] = uint32(len(positions))
		positions = append(positions, pos)
	}

	// Walk the index block one triangle at a time and emit the three
	// edges of every triangle whose corners all resolve in the pool.
	// A corner that resolves to an unpooled position is not fatal; the
	// triangle is skipped.
	p := lay.prim.P
	step := lay.stride * 3
	var indices []uint32
	for face := 0; face+step <= len(p); face += step {
		var corner [3]uint32
		ok := true
		for k := 0; k < 3; k++ {
			pos, valid := readVec3(src, p[face+k*lay.stride+lay.posOffset])
			if !valid {
				return nil, geometryError(ErrMalformedData)
			}
			idx, found := pool[quantize(pos)]
			if !found {
				ok = false
				break
			}
			corner[k] = idx
		}
		if !ok {
			continue
		}
		indices = append(indices,
			corner[0], corner[1],
			corner[1], corner[2],
			corner[2], corner[0],
		)
	}

	return &mesh.Mesh{
		Topology:  mesh.LineList,
		Positions: positions,
		Normals:   placeholderNormals(len(positions)),
		UV0:       constantUV0(len(positions)),
		Indices:   indices,
		Bounds:    mesh.ComputeBounds(positions),
	}, nil
}

// placeholderNormals returns n copies of the +X axis.
func placeholderNormals(n int) [][3]float32 {
	normals := make([][3]float32, n)
	for i := range normals {
		normals[i] = [3]float32{1, 0, 0}
	}
	return normals
}
