// Package mesh defines the renderer-ready indexed mesh produced by the
// COLLADA decoders, plus helpers to validate and post-process it.
package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrAttributeMismatch = errors.New("attribute arrays disagree in length")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrBadIndexCount     = errors.New("index count does not match topology")
)

// Topology identifies how the index buffer groups vertices into primitives.
type Topology int

const (
	// TriangleList groups indices three at a time into filled triangles.
	TriangleList Topology = iota
	// LineList groups indices two at a time into wireframe segments.
	LineList
)

// String returns the canonical name of the topology.
func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	case LineList:
		return "line-list"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// ParseTopology maps a configuration or command-line word to a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "triangles", "triangle-list":
		return TriangleList, nil
	case "wireframe", "lines", "line-list":
		return LineList, nil
	default:
		return TriangleList, fmt.Errorf("unknown topology %q", s)
	}
}

// Mesh holds deduplicated vertex attributes and an index buffer ready for
// GPU upload. Positions, Normals and UV0 always run in lockstep; Tangents
// is nil unless tangent generation succeeded.
type Mesh struct {
	Topology  Topology
	Positions [][3]float32
	Normals   [][3]float32
	UV0       [][2]float32
	Tangents  [][4]float32
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices in the attribute arrays.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles addressed by the index
// buffer, or zero for non-triangle topologies.
func (m *Mesh) TriangleCount() int {
	if m.Topology != TriangleList {
		return 0
	}
	return len(m.Indices) / 3
}

// LineCount returns the number of line segments addressed by the index
// buffer, or zero for non-line topologies.
func (m *Mesh) LineCount() int {
	if m.Topology != LineList {
		return 0
	}
	return len(m.Indices) / 2
}

// Validate checks that attribute arrays agree in length and that every
// index addresses an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrAttributeMismatch, len(m.Normals), n)
	}
	if len(m.UV0) != n {
		return fmt.Errorf("%w: %d texture coordinates for %d positions", ErrAttributeMismatch, len(m.UV0), n)
	}
	if m.Tangents != nil && len(m.Tangents) != n {
		return fmt.Errorf("%w: %d tangents for %d positions", ErrAttributeMismatch, len(m.Tangents), n)
	}

	group := 3
	if m.Topology == LineList {
		group = 2
	}
	if len(m.Indices)%group != 0 {
		return fmt.Errorf("%w: %d indices for %s", ErrBadIndexCount, len(m.Indices), m.Topology)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at position %d, vertex count %d", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}

// ComputeBounds returns the axis-aligned bounding box of the given
// positions. An empty slice yields a zero box.
func ComputeBounds(positions [][3]float32) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, p := range positions {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	if p[0] < b.Min[0] {
		b.Min[0] = p[0]
	}
	if p[1] < b.Min[1] {
		b.Min[1] = p[1]
	}
	if p[2] < b.Min[2] {
		b.Min[2] = p[2]
	}
	if p[0] > b.Max[0] {
		b.Max[0] = p[0]
	}
	if p[1] > b.Max[1] {
		b.Max[1] = p[1]
	}
	if p[2] > b.Max[2] {
		b.Max[2] = p[2]
	}
}
