package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOBJ_Triangles(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, quadMesh(), "quad"); err != nil {
		t.Fatalf("WriteOBJ() = %v, want nil", err)
	}

	want := `o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 0 0
vt 0 0
vt 0 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1/1/1 2/2/2 3/3/3
f 1/1/1 3/3/3 4/4/4
`
	if got := sb.String(); got != want {
		t.Errorf("WriteOBJ() output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOBJ_Lines(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, lineMesh(), "wire"); err != nil {
		t.Fatalf("WriteOBJ() = %v, want nil", err)
	}

	got := sb.String()
	if !strings.HasPrefix(got, "o wire\n") {
		t.Errorf("output does not start with the object record:\n%s", got)
	}
	for _, line := range []string{"l 1 2\n", "l 2 3\n", "l 3 1\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("output is missing %q:\n%s", strings.TrimSpace(line), got)
		}
	}
	if strings.Contains(got, "f ") {
		t.Errorf("line mesh emitted face records:\n%s", got)
	}
}

func TestWriteOBJ_DefaultName(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, lineMesh(), ""); err != nil {
		t.Fatalf("WriteOBJ() = %v, want nil", err)
	}
	if !strings.HasPrefix(sb.String(), "o mesh\n") {
		t.Errorf("empty name did not default:\n%s", sb.String())
	}
}

func TestWriteOBJ_InvalidMesh(t *testing.T) {
	m := quadMesh()
	m.UV0 = m.UV0[:2]
	var sb strings.Builder
	if err := WriteOBJ(&sb, m, "bad"); err == nil {
		t.Error("WriteOBJ() accepted a mesh with mismatched attributes")
	}
}

func TestSaveOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := SaveOBJ(quadMesh(), "quad", path); err != nil {
		t.Fatalf("SaveOBJ() = %v, want nil", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "o quad\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"gltf", FormatGLTF, false},
		{"glb", FormatGLB, false},
		{"obj", FormatOBJ, false},
		{"", FormatGLTF, true},
		{"fbx", FormatGLTF, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_Ext(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatGLTF, ".gltf"},
		{FormatGLB, ".glb"},
		{FormatOBJ, ".obj"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Ext(); got != tt.want {
				t.Errorf("Ext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSave_Dispatch(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{FormatGLTF, FormatGLB, FormatOBJ} {
		path := filepath.Join(dir, "quad"+f.Ext())
		if err := Save(quadMesh(), "quad", path, f); err != nil {
			t.Errorf("Save(%v) = %v, want nil", f, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("Save(%v) produced no output: %v", f, err)
		}
	}
}
