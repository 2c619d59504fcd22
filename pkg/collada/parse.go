package collada

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	ErrBadFloatArray = errors.New("malformed float array")
	ErrBadIndexBlock = errors.New("malformed triangle index block")
)

// Wire-level schema. Only the geometry and scene subset the converter
// needs is mapped; everything else in the document is skipped.
type xmlCollada struct {
	XMLName      xml.Name         `xml:"COLLADA"`
	Geometries   []xmlGeometry    `xml:"library_geometries>geometry"`
	VisualScenes []xmlVisualScene `xml:"library_visual_scenes>visual_scene"`
	Scene        *xmlScene        `xml:"scene"`
}

type xmlScene struct {
	InstanceVisualScene *xmlInstance `xml:"instance_visual_scene"`
}

type xmlInstance struct {
	URL string `xml:"url,attr"`
}

type xmlGeometry struct {
	ID   string   `xml:"id,attr"`
	Name string   `xml:"name,attr"`
	Mesh *xmlMesh `xml:"mesh"`
}

type xmlMesh struct {
	Sources   []xmlSource    `xml:"source"`
	Vertices  []xmlVertices  `xml:"vertices"`
	Triangles []xmlTriangles `xml:"triangles"`
}

type xmlSource struct {
	ID         string         `xml:"id,attr"`
	FloatArray *xmlFloatArray `xml:"float_array"`
	Accessor   *xmlAccessor   `xml:"technique_common>accessor"`
}

type xmlFloatArray struct {
	ID    string `xml:"id,attr"`
	Count int    `xml:"count,attr"`
	Text  string `xml:",chardata"`
}

type xmlAccessor struct {
	Source string `xml:"source,attr"`
	Count  int    `xml:"count,attr"`
	Stride int    `xml:"stride,attr"`
}

type xmlVertices struct {
	ID     string     `xml:"id,attr"`
	Inputs []xmlInput `xml:"input"`
}

type xmlInput struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   int    `xml:"offset,attr"`
}

type xmlTriangles struct {
	Count    int        `xml:"count,attr"`
	Material string     `xml:"material,attr"`
	Inputs   []xmlInput `xml:"input"`
	P        string     `xml:"p"`
}

type xmlNode struct {
	ID                 string        `xml:"id,attr"`
	Name               string        `xml:"name,attr"`
	InstanceGeometries []xmlInstance `xml:"instance_geometry"`
	Nodes              []xmlNode     `xml:"node"`
}

type xmlVisualScene struct {
	ID    string    `xml:"id,attr"`
	Name  string    `xml:"name,attr"`
	Nodes []xmlNode `xml:"node"`
}

// Parse decodes a COLLADA document from raw XML bytes.
func Parse(data []byte) (*Document, error) {
	var raw xmlCollada
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding COLLADA XML: %w", err)
	}

	doc := &Document{}
	for i := range raw.Geometries {
		g := &raw.Geometries[i]
		geom := Geometry{ID: g.ID, Name: g.Name}
		if g.Mesh != nil {
			m, err := buildMesh(g.Mesh, g.ID)
			if err != nil {
				return nil, err
			}
			geom.Mesh = *m
		}
		doc.Geometries = append(doc.Geometries, geom)
	}

	for i := range raw.VisualScenes {
		vs := &raw.VisualScenes[i]
		scene := VisualScene{ID: vs.ID, Name: vs.Name}
		for j := range vs.Nodes {
			scene.Nodes = append(scene.Nodes, buildNode(&vs.Nodes[j]))
		}
		doc.VisualScenes = append(doc.VisualScenes, scene)
	}

	if raw.Scene != nil && raw.Scene.InstanceVisualScene != nil {
		doc.SceneURL = strings.TrimPrefix(raw.Scene.InstanceVisualScene.URL, "#")
	}
	return doc, nil
}

// ParseFile reads and parses a COLLADA document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading DAE file: %w", err)
	}
	return Parse(data)
}

func buildMesh(x *xmlMesh, geomID string) (*Mesh, error) {
	var m Mesh
	for i := range x.Sources {
		s := &x.Sources[i]
		src := Source{ID: s.ID, Stride: 1}
		if s.Accessor != nil && s.Accessor.Stride > 0 {
			src.Stride = s.Accessor.Stride
		}
		if s.FloatArray != nil {
			values, err := parseFloats(s.FloatArray.Text)
			if err != nil {
				return nil, fmt.Errorf("%w: source %q: %v", ErrBadFloatArray, s.ID, err)
			}
			src.Values = values
		}
		m.Sources = append(m.Sources, src)
	}

	// Semantic roles come from the document's own input declarations:
	// the <vertices> block tags the position source, and any direct
	// triangle inputs tag their sources. VERTEX inputs point at the
	// <vertices> element, so they carry no role of their own.
	for _, v := range x.Vertices {
		for _, in := range v.Inputs {
			tagSource(&m, in.Source, in.Semantic)
		}
	}

	for i := range x.Triangles {
		tr := &x.Triangles[i]
		t := Triangles{Count: tr.Count, Material: tr.Material}
		for _, in := range tr.Inputs {
			t.Inputs = append(t.Inputs, Input{
				Semantic: in.Semantic,
				Source:   strings.TrimPrefix(in.Source, "#"),
				Offset:   in.Offset,
			})
			if in.Semantic != "VERTEX" {
				tagSource(&m, in.Source, in.Semantic)
			}
		}
		if strings.TrimSpace(tr.P) != "" {
			p, err := parseInts(tr.P)
			if err != nil {
				return nil, fmt.Errorf("%w: geometry %q: %v", ErrBadIndexBlock, geomID, err)
			}
			t.P = p
		}
		m.Triangles = append(m.Triangles, t)
	}
	return &m, nil
}

func buildNode(x *xmlNode) Node {
	n := Node{ID: x.ID, Name: x.Name}
	if len(x.InstanceGeometries) > 0 {
		n.GeometryURL = strings.TrimPrefix(x.InstanceGeometries[0].URL, "#")
	}
	for i := range x.Nodes {
		n.Children = append(n.Children, buildNode(&x.Nodes[i]))
	}
	return n
}

func tagSource(m *Mesh, url, semantic string) {
	role := roleForSemantic(semantic)
	if role == RoleUnknown {
		return
	}
	src := m.SourceByID(url)
	if src == nil || src.Role != RoleUnknown {
		return
	}
	src.Role = role
}

func roleForSemantic(semantic string) SemanticRole {
	switch semantic {
	case "POSITION":
		return RolePosition
	case "NORMAL":
		return RoleNormal
	case "TEXCOORD":
		return RoleTexCoord
	default:
		return RoleUnknown
	}
}

func parseFloats(text string) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
