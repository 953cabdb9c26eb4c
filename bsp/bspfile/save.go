package bspfile

import (
	"fmt"
	"io"

	"github.com/oxybsp/oxybsp/bsp"
	"github.com/oxybsp/oxybsp/common"
)

// Save writes tree to w in the format spec §4.7 describes: the common
// header, then the BSP trailer (maxDepth, numNodes, numTri, preorder node
// stream). I/O errors are returned to the caller unwrapped from their own
// channel, per spec §7/§10.2.
//
// Parameters:
//   - w: the destination to write the encoded tree to
//   - tree: the compiled BSP tree to persist
//
// Returns:
//   - error: an I/O error from w, or a size-limit violation (too many textures/vertices)
func Save(w io.Writer, tree *bsp.Tree) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if err := common.WriteUint8(w, Version); err != nil {
		return err
	}

	if len(tree.TextureNames) > 0xFFFF {
		return fmt.Errorf("bspfile: %d texture names exceeds the u16 nMaps field", len(tree.TextureNames))
	}
	if err := common.WriteUint16(w, uint16(len(tree.TextureNames))); err != nil {
		return err
	}
	mapTriNums := countPerTexture(tree.Root, len(tree.TextureNames))
	for _, name := range tree.TextureNames {
		if err := common.WriteCString(w, name); err != nil {
			return err
		}
	}
	for _, n := range mapTriNums {
		if err := common.WriteUint32(w, n); err != nil {
			return err
		}
	}

	if len(tree.Vertices) > 0xFFFF {
		return fmt.Errorf("bspfile: %d vertices exceeds the u16 nVertices field", len(tree.Vertices))
	}
	if err := common.WriteUint16(w, uint16(len(tree.Vertices))); err != nil {
		return err
	}
	for _, v := range tree.Vertices {
		for _, c := range v.Pos {
			if err := common.WriteFloat32(w, c); err != nil {
				return err
			}
		}
	}
	for _, v := range tree.Vertices {
		for _, c := range v.Tex {
			if err := common.WriteFloat32(w, c); err != nil {
				return err
			}
		}
	}

	bounds := []float32{
		tree.AABB.Min[0], tree.AABB.Max[0],
		tree.AABB.Min[1], tree.AABB.Max[1],
		tree.AABB.Min[2], tree.AABB.Max[2],
	}
	for _, b := range bounds {
		if err := common.WriteFloat32(w, b); err != nil {
			return err
		}
	}

	if err := common.WriteUint16(w, tree.MaxDepth); err != nil {
		return err
	}
	if err := common.WriteUint16(w, tree.NumNodes); err != nil {
		return err
	}
	if err := common.WriteUint32(w, tree.NumTri); err != nil {
		return err
	}

	return writeNodes(w, tree.Root)
}

// countPerTexture walks the tree with an explicit stack (spec §9: deep
// trees and recursion don't mix) accumulating each texture's triangle
// count for the header's mapTriNums field.
func countPerTexture(root *bsp.CanonicalNode, nMaps int) []uint32 {
	counts := make([]uint32, nMaps)
	stack := []*bsp.CanonicalNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		for _, t := range n.Tris {
			counts[t.TexIndex]++
		}
		stack = append(stack, n.Back, n.Front)
	}
	return counts
}

// pendingWrite is one node awaiting its turn on the write stack.
type pendingWrite struct {
	node *bsp.CanonicalNode
}

// writeNodes emits the preorder node stream (self, back, front) with an
// explicit stack instead of recursion, mirroring bsp.buildTree's approach
// to the same deep-tree concern (spec §9).
func writeNodes(w io.Writer, root *bsp.CanonicalNode) error {
	if root == nil {
		return nil
	}
	stack := []pendingWrite{{node: root}}
	for len(stack) > 0 {
		work := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := work.node

		if len(n.Tris) > 0xFFFF {
			return fmt.Errorf("bspfile: node has %d triangles, exceeds u16 numTri field", len(n.Tris))
		}
		if err := common.WriteUint16(w, uint16(len(n.Tris))); err != nil {
			return err
		}
		for _, t := range n.Tris {
			if err := common.WriteUint16(w, t.TexIndex); err != nil {
				return err
			}
			for _, idx := range t.VIndices {
				if err := common.WriteUint16(w, idx); err != nil {
					return err
				}
			}
		}

		// Plane is only persisted for empty nodes; a non-empty node's
		// plane is re-derived on load from its first triangle's
		// canonicalized vertices (spec §4.7).
		if len(n.Tris) == 0 {
			if err := common.WriteFloat64(w, n.Plane.A); err != nil {
				return err
			}
			if err := common.WriteFloat64(w, n.Plane.B); err != nil {
				return err
			}
			if err := common.WriteFloat64(w, n.Plane.C); err != nil {
				return err
			}
			if err := common.WriteFloat64(w, n.Plane.D); err != nil {
				return err
			}
		}

		var cFlag byte
		switch {
		case n.Back != nil && n.Front != nil:
			cFlag = cFlagBoth
		case n.Back != nil:
			cFlag = cFlagBack
		case n.Front != nil:
			cFlag = cFlagFront
		default:
			cFlag = cFlagNone
		}
		if err := common.WriteUint8(w, cFlag); err != nil {
			return err
		}

		// Push front first so back pops next: the stack is LIFO, and the
		// preorder contract is self, back-subtree, front-subtree.
		if n.Front != nil {
			stack = append(stack, pendingWrite{node: n.Front})
		}
		if n.Back != nil {
			stack = append(stack, pendingWrite{node: n.Back})
		}
	}
	return nil
}
