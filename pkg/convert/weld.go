package convert

import (
	gomath "math"

	"github.com/gouthamsk98/go-dae/pkg/collada"
)

// weldScale quantizes positions to 0.001 model-space units per axis.
// Vertices whose coordinates all round to the same cell share one
// canonical index.
const weldScale = 1000

// vertexKey is a quantized position used to weld numerically-close
// vertices.
type vertexKey [3]int32

func quantize(p [3]float32) vertexKey {
	return vertexKey{
		int32(gomath.Round(float64(p[0]) * weldScale)),
		int32(gomath.Round(float64(p[1]) * weldScale)),
		int32(gomath.Round(float64(p[2]) * weldScale)),
	}
}

// readVec3 reads the three floats of element idx from src, converting
// to float32. It reports false for any read that would land outside the
// source's value array.
func readVec3(src *collada.Source, idx int) ([3]float32, bool) {
	if src == nil || idx < 0 || src.Stride <= 0 {
		return [3]float32{}, false
	}
	base := idx * src.Stride
	if base < 0 || base+3 > len(src.Values) {
		return [3]float32{}, false
	}
	return [3]float32{
		float32(src.Values[base]),
		float32(src.Values[base+1]),
		float32(src.Values[base+2]),
	}, true
}

// weldTriangles walks the triangle index block in windows of the layout
// stride, resolving raw positions and normals and welding vertices whose
// quantized positions collide. The first occurrence of a key determines
// the stored attributes; later occurrences reuse its canonical index.
//
// Every raw-array access derived from the document's offsets and strides
// is bounds-checked; reads that would land out of range fail with
// ErrMalformedData instead of panicking.
func weldTriangles(lay *triangleLayout) (positions, normals [][3]float32, indices []uint32, err error) {
	p := lay.prim.P
	if len(p) == 0 {
		// An empty index block decodes to an empty mesh.
		return nil, nil, nil, nil
	}
	if len(p)%lay.stride != 0 {
		return nil, nil, nil, geometryError(ErrMalformedData)
	}

	seen := make(map[vertexKey]uint32)
	indices = make([]uint32, 0, len(p)/lay.stride)

	for i := 0; i < len(p); i += lay.stride {
		pos, ok := readVec3(lay.positions, p[i+lay.posOffset])
		if !ok {
			return nil, nil, nil, geometryError(ErrMalformedData)
		}

		key := quantize(pos)
		if idx, ok := seen[key]; ok {
			indices = append(indices, idx)
			continue
		}

		normal := [3]float32{0, 1, 0}
		if lay.nrmOffset >= 0 {
			n, ok := readVec3(lay.normals, p[i+lay.nrmOffset])
			if !ok {
				return nil, nil, nil, geometryError(ErrMalformedData)
			}
			normal = n
		}

		idx := uint32(len(positions))
		positions = append(positions, pos)
		normals = append(normals, normal)
		seen[key] = idx
		indices = append(indices, idx)
	}
	return positions, normals, indices, nil
}
