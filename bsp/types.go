package bsp

import (
	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/vertextable"
)

// CanonicalTri is one triangle in a compiled tree's serialized/canonicalized
// form: a texture index plus three indices into Tree.Vertices (spec §3,
// "BSP node (serialized/canonicalized form)").
type CanonicalTri struct {
	TexIndex uint16
	VIndices [3]uint16
}

// CanonicalNode is a tree node after the §4.5 canonicalization pass. Plane
// is always populated in memory, but the serializer only persists it when
// Tris is empty (spec §4.7) — for a non-empty node the plane is re-derived
// from Tris[0]'s canonicalized vertices on load instead.
type CanonicalNode struct {
	Plane geom.Plane
	Tris  []CanonicalTri
	Back  *CanonicalNode
	Front *CanonicalNode
}

// IsLeaf reports whether n has no children.
func (n *CanonicalNode) IsLeaf() bool {
	return n.Back == nil && n.Front == nil
}

// Tree is a compiled, canonicalized BSP tree: the shared vertex table, the
// texture name table, the accumulated model bounds, and the build-time
// counters the serializer's trailer carries (spec §4.7).
type Tree struct {
	TextureNames []string
	Vertices     []vertextable.Entry
	AABB         geom.AABB

	MaxDepth uint16
	NumNodes uint16
	NumTri   uint32

	Root *CanonicalNode
}

// Free releases a compiled tree's owned nodes and triangle arrays. Go's
// garbage collector reclaims this memory on its own once Tree is
// unreachable; Free exists to complete the save_bsp/load_bsp/free_bsp
// public-operation surface (spec §6) and to let a caller holding a Tree
// for a long-lived process drop its subtree references early rather than
// waiting for the next GC cycle to discover them unreachable.
func (t *Tree) Free() {
	if t == nil {
		return
	}
	t.Root = nil
	t.Vertices = nil
}
