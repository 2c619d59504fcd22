package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrTangentTopology = errors.New("tangent generation requires triangle topology")
	ErrDegenerateUVs   = errors.New("texture coordinates carry no tangent-space gradients")
)

// GenerateTangents derives per-vertex tangents from triangle UV gradients
// and stores them on the mesh. The tangent and bitangent of each triangle
// are accumulated onto its vertices, then orthonormalized against the
// vertex normal; the W component stores handedness (+1 or -1).
//
// Meshes whose texture coordinates are constant have no UV gradients at
// all and cannot carry a tangent basis; in that case the mesh is left
// untouched and ErrDegenerateUVs is returned.
func GenerateTangents(m *Mesh) error {
	if m.Topology != TriangleList {
		return ErrTangentTopology
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("generating tangents: %w", err)
	}

	n := len(m.Positions)
	tan := make([][3]float32, n)
	btan := make([][3]float32, n)
	contributed := false

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		uv0, uv1, uv2 := m.UV0[i0], m.UV0[i1], m.UV0[i2]

		edge1 := Sub(p1, p0)
		edge2 := Sub(p2, p0)

		duv1 := [2]float32{uv1[0] - uv0[0], uv1[1] - uv0[1]}
		duv2 := [2]float32{uv2[0] - uv0[0], uv2[1] - uv0[1]}

		det := duv1[0]*duv2[1] - duv1[1]*duv2[0]
		if det == 0 {
			continue
		}
		invDet := 1.0 / det

		t := [3]float32{
			invDet * (duv2[1]*edge1[0] - duv1[1]*edge2[0]),
			invDet * (duv2[1]*edge1[1] - duv1[1]*edge2[1]),
			invDet * (duv2[1]*edge1[2] - duv1[1]*edge2[2]),
		}
		b := [3]float32{
			invDet * (-duv2[0]*edge1[0] + duv1[0]*edge2[0]),
			invDet * (-duv2[0]*edge1[1] + duv1[0]*edge2[1]),
			invDet * (-duv2[0]*edge1[2] + duv1[0]*edge2[2]),
		}

		for _, idx := range []uint32{i0, i1, i2} {
			tan[idx][0] += t[0]
			tan[idx][1] += t[1]
			tan[idx][2] += t[2]
			btan[idx][0] += b[0]
			btan[idx][1] += b[1]
			btan[idx][2] += b[2]
		}
		contributed = true
	}

	if !contributed {
		return ErrDegenerateUVs
	}

	out := make([][4]float32, n)
	for i := 0; i < n; i++ {
		normal := m.Normals[i]
		t := tan[i]

		// Gram-Schmidt: T' = normalize(T - N * dot(N, T))
		nDotT := Dot(normal, t)
		ortho := [3]float32{
			t[0] - normal[0]*nDotT,
			t[1] - normal[1]*nDotT,
			t[2] - normal[2]*nDotT,
		}

		length := sqrtf(ortho[0]*ortho[0] + ortho[1]*ortho[1] + ortho[2]*ortho[2])
		if length < 1e-6 {
			// Vertex touched only by degenerate triangles.
			out[i] = [4]float32{1, 0, 0, 1}
			continue
		}
		ortho[0] /= length
		ortho[1] /= length
		ortho[2] /= length

		// Handedness from the sign of dot(cross(N, T'), B).
		w := float32(1)
		if Dot(Cross(normal, ortho), btan[i]) < 0 {
			w = -1
		}
		out[i] = [4]float32{ortho[0], ortho[1], ortho[2], w}
	}

	m.Tangents = out
	return nil
}
