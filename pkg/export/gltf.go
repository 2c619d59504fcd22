package export

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// BuildDocument assembles a single-mesh glTF document: the mesh becomes
// one primitive under one node in the default scene. glTF accessors
// cannot be empty, so meshes without vertices or indices are rejected.
func BuildDocument(m *mesh.Mesh, name string) (*gltf.Document, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return nil, errors.New("empty mesh cannot be exported to glTF")
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "go-dae"

	attrs := map[string]int{
		"POSITION":   modeler.WritePosition(doc, m.Positions),
		"NORMAL":     modeler.WriteNormal(doc, m.Normals),
		"TEXCOORD_0": modeler.WriteTextureCoord(doc, m.UV0),
	}
	if m.Tangents != nil {
		attrs["TANGENT"] = modeler.WriteTangent(doc, m.Tangents)
	}

	mode := gltf.PrimitiveTriangles
	if m.Topology == mesh.LineList {
		mode = gltf.PrimitiveLines
	}

	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(modeler.WriteIndices(doc, m.Indices)),
		Mode:       mode,
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil
}

// SaveGLTF writes the mesh as a .gltf file with the buffer embedded as a
// data URI, so the output is a single self-contained file.
func SaveGLTF(m *mesh.Mesh, name, path string) error {
	doc, err := BuildDocument(m, name)
	if err != nil {
		return err
	}
	for _, buf := range doc.Buffers {
		buf.EmbeddedResource()
	}
	return gltf.Save(doc, path)
}

// SaveGLB writes the mesh as a binary .glb file.
func SaveGLB(m *mesh.Mesh, name, path string) error {
	doc, err := BuildDocument(m, name)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, path)
}
