package assets

import (
	"github.com/gouthamsk98/go-dae/pkg/convert"
	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

// daeConverter adapts the COLLADA pipeline to the MeshConverter interface.
type daeConverter struct{}

func (daeConverter) Extensions() []string {
	return convert.Extensions()
}

func (daeConverter) Convert(data []byte, topo mesh.Topology) (*mesh.Mesh, error) {
	return convert.Convert(data, convert.Options{Topology: topo})
}
