// Package convert decodes COLLADA documents into renderer-ready indexed
// meshes. The triangle path welds numerically-close vertices into a
// filled triangle list; the wireframe path emits per-triangle edges over
// a pool of the document's raw positions.
//
// All failures are returned as *Error values tagged with the pipeline
// stage that produced them.
package convert

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gouthamsk98/go-dae/pkg/collada"
	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// Options control a single conversion.
type Options struct {
	// Topology selects the output primitive topology. The zero value
	// produces a filled triangle mesh; mesh.LineList produces a
	// wireframe over the same geometry.
	Topology mesh.Topology
}

// Convert parses a COLLADA document from raw bytes and decodes its first
// instanced geometry into a mesh with the requested topology.
func Convert(data []byte, opts Options) (*mesh.Mesh, error) {
	if !utf8.Valid(data) {
		return nil, ioError(errors.New("document is not valid UTF-8"))
	}
	doc, err := collada.Parse(data)
	if err != nil {
		return nil, parseError(err)
	}
	return ConvertDocument(doc, opts)
}

// ConvertDocument decodes an already-parsed document.
func ConvertDocument(doc *collada.Document, opts Options) (*mesh.Mesh, error) {
	switch opts.Topology {
	case mesh.LineList:
		return WireframeMesh(doc)
	default:
		return TriangleMesh(doc)
	}
}

// ConvertFile reads path and converts its contents.
func ConvertFile(path string, opts Options) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(fmt.Errorf("reading DAE file: %w", err))
	}
	return Convert(data, opts)
}

// Extensions returns the file extensions, without the dot, that this
// converter accepts.
func Extensions() []string {
	return []string{"dae"}
}
