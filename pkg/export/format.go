// Package export writes decoded meshes to interchange formats: glTF
// (JSON or binary) and Wavefront OBJ.
package export

import (
	"fmt"

	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// Format identifies an output file format.
type Format int

const (
	FormatGLTF Format = iota
	FormatGLB
	FormatOBJ
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatGLTF:
		return "gltf"
	case FormatGLB:
		return "glb"
	case FormatOBJ:
		return "obj"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat maps a configuration or command-line word to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "gltf":
		return FormatGLTF, nil
	case "glb":
		return FormatGLB, nil
	case "obj":
		return FormatOBJ, nil
	default:
		return FormatGLTF, fmt.Errorf("unknown output format %q", s)
	}
}

// Save writes the mesh to path in the given format.
func Save(m *mesh.Mesh, name, path string, f Format) error {
	switch f {
	case FormatGLB:
		return SaveGLB(m, name, path)
	case FormatOBJ:
		return SaveOBJ(m, name, path)
	default:
		return SaveGLTF(m, name, path)
	}
}
