package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// WriteOBJ writes the mesh as Wavefront OBJ text. Triangle meshes emit
// f records with position/uv/normal references; line meshes emit l
// records. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid mesh: %w", err)
	}
	if name == "" {
		name = "mesh"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, uv := range m.UV0 {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}

	switch m.Topology {
	case mesh.LineList:
		for i := 0; i+1 < len(m.Indices); i += 2 {
			fmt.Fprintf(bw, "l %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1)
		}
	default:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh as a .obj file.
func SaveOBJ(m *mesh.Mesh, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := WriteOBJ(f, m, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
