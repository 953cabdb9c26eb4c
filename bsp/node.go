package bsp

import "github.com/oxybsp/oxybsp/geom"

// rawTri is one surviving triangle during the build pass: raw
// single-precision vertices and texcoords plus its own plane, computed
// once up front (spec §4.2 pre-pass) so classification never
// recomputes it.
type rawTri struct {
	texIndex  uint16
	verts     [3][3]float32
	texcoords [3][2]float32
	plane     geom.Plane
}

func (t *rawTri) vec3(i int) geom.Vec3 {
	return geom.Vec3FromFloat32(t.verts[i])
}

// classify returns this triangle's side relative to plane.
func (t *rawTri) classify(plane geom.Plane) geom.TriSide {
	return geom.ClassifyTriangle(plane, t.vec3(0), t.vec3(1), t.vec3(2))
}

// Node is one in-memory BSP tree node as constructed by buildTree (spec §3,
// "BSP node (internal tree form)"). Every triangle in Coplanar is
// Coincident with Plane; Front and Back partition the triangles that lay
// wholly on one side, touching the plane allowed (spanning triangles
// having already been split).
type Node struct {
	Plane    geom.Plane
	Coplanar []*rawTri
	Front    *Node
	Back     *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Front == nil && n.Back == nil
}
