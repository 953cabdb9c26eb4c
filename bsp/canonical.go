package bsp

import (
	"fmt"

	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/vertextable"
)

// pendingCanon pairs a build-time Node with the slot its canonicalized
// counterpart should be written into.
type pendingCanon struct {
	node   *Node
	setRef func(*CanonicalNode)
}

// canonicalizeTree implements the §4.5 post-pass: every node's coplanar
// triangles are folded through ctx into the shared vertex table, triangles
// that become degenerate after folding are dropped, and each node's plane
// is re-derived from its first surviving triangle's canonical vertices (or
// kept as the original construction plane if none survive). Walked with an
// explicit stack for the same deep-tree reason buildTree is (spec §9).
func canonicalizeTree(root *Node, ctx *vertextable.Context) (*CanonicalNode, []string, error) {
	if root == nil {
		return nil, nil, nil
	}

	var canonRoot *CanonicalNode
	var warnings []string

	stack := []pendingCanon{{node: root, setRef: func(n *CanonicalNode) { canonRoot = n }}}
	for len(stack) > 0 {
		work := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tris, nodePlane, nodeWarnings, err := canonicalizeNode(work.node, ctx)
		if err != nil {
			return nil, warnings, err
		}
		warnings = append(warnings, nodeWarnings...)

		cnode := &CanonicalNode{Plane: nodePlane, Tris: tris}
		work.setRef(cnode)

		if work.node.Back != nil {
			stack = append(stack, pendingCanon{node: work.node.Back, setRef: func(n *CanonicalNode) { cnode.Back = n }})
		}
		if work.node.Front != nil {
			stack = append(stack, pendingCanon{node: work.node.Front, setRef: func(n *CanonicalNode) { cnode.Front = n }})
		}
	}

	return canonRoot, warnings, nil
}

// canonicalizeNode folds one node's coplanar triangles through ctx (spec
// §4.5 steps 1-3) and returns the surviving canonical triangles plus the
// plane the node should carry.
func canonicalizeNode(n *Node, ctx *vertextable.Context) (tris []CanonicalTri, plane geom.Plane, warnings []string, err error) {
	plane = n.Plane // kept if every triangle is dropped (spec §4.5 last paragraph)

	for i, t := range n.Coplanar {
		var idx [3]uint16
		var canonPos [3][3]float32
		for k := 0; k < 3; k++ {
			vidx, pos, internErr := ctx.Intern(t.verts[k], t.texcoords[k])
			if internErr != nil {
				return nil, geom.Plane{}, warnings, fmt.Errorf("bsp: canonicalizing triangle %d: %w", i, internErr)
			}
			idx[k] = vidx
			canonPos[k] = pos
		}

		if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
			warnings = append(warnings, fmt.Sprintf("bsp: dropping triangle with two equal indices after canonicalization (texture %d)", t.texIndex))
			continue
		}

		rePlane, ok := geom.PlaneFromTriangle(
			geom.Vec3FromFloat32(canonPos[0]),
			geom.Vec3FromFloat32(canonPos[1]),
			geom.Vec3FromFloat32(canonPos[2]),
		)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("bsp: dropping triangle degenerate after canonicalization (texture %d)", t.texIndex))
			continue
		}

		if len(tris) == 0 {
			// First surviving triangle: its re-derived plane replaces the
			// construction plane outright (spec §4.5).
			plane = rePlane
		}
		tris = append(tris, CanonicalTri{TexIndex: t.texIndex, VIndices: idx})
	}

	return tris, plane, warnings, nil
}
