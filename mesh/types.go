package mesh

import (
	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/vertextable"
)

// Mesh is an indexed, texture-grouped triangle mesh (spec §3, "Indexed
// mesh"). Groups[i] holds 3*N_i vertex indices into Vertices for the i-th
// texture in TextureNames; every index is < len(Vertices) and every
// triangle's three indices are pairwise distinct.
type Mesh struct {
	TextureNames []string
	Vertices     []vertextable.Entry
	Groups       [][]uint16
	AABB         geom.AABB
}

// NumTriangles returns the total triangle count across every texture group.
func (m *Mesh) NumTriangles() int {
	total := 0
	for _, g := range m.Groups {
		total += len(g) / 3
	}
	return total
}

// Free drops a mesh's owned tables. Go's garbage collector reclaims this
// memory on its own once Mesh is unreachable; Free exists to complete the
// build_mesh/save_mesh/load_mesh/free_mesh public-operation surface
// (spec §6).
func (m *Mesh) Free() {
	if m == nil {
		return
	}
	m.Vertices = nil
	m.Groups = nil
}
