// Package collada parses COLLADA (.dae) documents into a small geometry
// model: float sources tagged with their semantic role, triangle index
// blocks, and the visual scene graph that instances geometries.
package collada

import (
	"fmt"
	"strings"
)

// SemanticRole identifies what a float source holds. Roles are assigned
// from the document's own <vertices> and <triangles> input declarations,
// never guessed from source names.
type SemanticRole int

const (
	RoleUnknown SemanticRole = iota
	RolePosition
	RoleNormal
	RoleTexCoord
)

// String returns the COLLADA semantic spelling of the role.
func (r SemanticRole) String() string {
	switch r {
	case RolePosition:
		return "POSITION"
	case RoleNormal:
		return "NORMAL"
	case RoleTexCoord:
		return "TEXCOORD"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(r))
	}
}

// Source is a flat float array with its accessor stride and semantic role.
type Source struct {
	ID     string
	Role   SemanticRole
	Stride int
	Values []float64
}

// ElementCount returns the number of stride-sized elements in the source.
func (s *Source) ElementCount() int {
	if s.Stride <= 0 {
		return 0
	}
	return len(s.Values) / s.Stride
}

// Input binds one attribute slot of a primitive to a source.
type Input struct {
	Semantic string
	Source   string
	Offset   int
}

// Triangles is a triangle primitive block: its inputs and the flat index
// block from the <p> element.
type Triangles struct {
	Count    int
	Material string
	Inputs   []Input
	P        []int
}

// InputBySemantic returns the first input with the given semantic, or nil.
func (t *Triangles) InputBySemantic(semantic string) *Input {
	for i := range t.Inputs {
		if t.Inputs[i].Semantic == semantic {
			return &t.Inputs[i]
		}
	}
	return nil
}

// IndexStride returns the number of index-block entries per vertex: the
// maximum input offset plus one, or 1 when the block declares no inputs.
func (t *Triangles) IndexStride() int {
	stride := 0
	for _, in := range t.Inputs {
		if in.Offset+1 > stride {
			stride = in.Offset + 1
		}
	}
	if stride == 0 {
		return 1
	}
	return stride
}

// Mesh is the geometry payload of a <geometry> element.
type Mesh struct {
	Sources   []Source
	Triangles []Triangles
}

// SourceByID returns the source with the given id, or nil. A leading '#'
// on the id is ignored.
func (m *Mesh) SourceByID(id string) *Source {
	id = strings.TrimPrefix(id, "#")
	for i := range m.Sources {
		if m.Sources[i].ID == id {
			return &m.Sources[i]
		}
	}
	return nil
}

// SourceByRole returns the first source tagged with the given role, or nil.
func (m *Mesh) SourceByRole(role SemanticRole) *Source {
	for i := range m.Sources {
		if m.Sources[i].Role == role {
			return &m.Sources[i]
		}
	}
	return nil
}

// Geometry is a named mesh container.
type Geometry struct {
	ID   string
	Name string
	Mesh Mesh
}

// Node is a visual scene graph node. GeometryURL is the id of the
// geometry the node instances, or empty.
type Node struct {
	ID          string
	Name        string
	GeometryURL string
	Children    []Node
}

// VisualScene is a named scene graph root.
type VisualScene struct {
	ID    string
	Name  string
	Nodes []Node
}

// FirstGeometryURL walks the scene depth-first and returns the first
// instanced geometry id, or empty when no node instances a geometry.
func (vs *VisualScene) FirstGeometryURL() string {
	for i := range vs.Nodes {
		if url := firstGeometryURL(&vs.Nodes[i]); url != "" {
			return url
		}
	}
	return ""
}

func firstGeometryURL(n *Node) string {
	if n.GeometryURL != "" {
		return n.GeometryURL
	}
	for i := range n.Children {
		if url := firstGeometryURL(&n.Children[i]); url != "" {
			return url
		}
	}
	return ""
}

// Document is a parsed COLLADA document.
type Document struct {
	Geometries   []Geometry
	VisualScenes []VisualScene
	// SceneURL is the visual scene id referenced by the document's
	// <scene> element, or empty.
	SceneURL string
}

// DefaultVisualScene returns the scene referenced by the document's
// <scene> element, falling back to the first scene in document order.
// It returns nil when the document has no visual scenes.
func (d *Document) DefaultVisualScene() *VisualScene {
	if d.SceneURL != "" {
		for i := range d.VisualScenes {
			if d.VisualScenes[i].ID == d.SceneURL {
				return &d.VisualScenes[i]
			}
		}
	}
	if len(d.VisualScenes) == 0 {
		return nil
	}
	return &d.VisualScenes[0]
}

// GeometryByURL returns the geometry with the given id, or nil. A leading
// '#' on the url is ignored.
func (d *Document) GeometryByURL(url string) *Geometry {
	id := strings.TrimPrefix(url, "#")
	for i := range d.Geometries {
		if d.Geometries[i].ID == id {
			return &d.Geometries[i]
		}
	}
	return nil
}
