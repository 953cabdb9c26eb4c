package bsp

import (
	"fmt"

	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/triangle"
)

// pendingBuild is one unit of deferred work on the explicit build stack.
// Recursive construction on deep trees risks a stack overflow (spec §9);
// buildTree walks this stack instead of calling itself.
type pendingBuild struct {
	items  []*rawTri
	depth  int
	setRef func(*Node)
}

// buildTree runs the §4.2 recursive builder over items without recursion,
// returning the constructed root plus the max depth reached and the
// number of nodes allocated.
func buildTree(items []*rawTri, parallelThreshold int) (root *Node, maxDepth, numNodes int) {
	if len(items) == 0 {
		return nil, 0, 0
	}

	stack := []pendingBuild{{
		items:  items,
		depth:  0,
		setRef: func(n *Node) { root = n },
	}}

	for len(stack) > 0 {
		work := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(work.items) == 0 {
			continue
		}

		rootIdx := selectRoot(work.items, parallelThreshold)
		r := work.items[rootIdx]
		if r.classify(r.plane) != geom.Coincident {
			panic("bsp: root candidate does not self-classify as Coincident with its own plane")
		}

		node := &Node{Plane: r.plane, Coplanar: []*rawTri{r}}
		numNodes++
		if work.depth > maxDepth {
			maxDepth = work.depth
		}

		var front, back []*rawTri
		for i, t := range work.items {
			if i == rootIdx {
				continue
			}
			switch t.classify(node.Plane) {
			case geom.Coincident:
				node.Coplanar = append(node.Coplanar, t)
			case geom.InFront:
				front = append(front, t)
			case geom.InBack:
				back = append(back, t)
			case geom.Spanning:
				f, b := split(t, node.Plane)
				front = append(front, f...)
				back = append(back, b...)
			}
		}

		work.setRef(node)

		if len(back) > 0 {
			stack = append(stack, pendingBuild{
				items: back, depth: work.depth + 1,
				setRef: func(n *Node) { node.Back = n },
			})
		}
		if len(front) > 0 {
			stack = append(stack, pendingBuild{
				items: front, depth: work.depth + 1,
				setRef: func(n *Node) { node.Front = n },
			})
		}
	}

	return root, maxDepth, numNodes
}

// Compile builds a canonicalized BSP tree from a triangle soup (spec
// §4.2-§4.5). Degenerate input triangles are dropped and reported as
// warnings rather than failing the compile (spec §4.10, §7); any other
// problem (a bad texture index, a texture name table that doesn't meet the
// ASCII/length contract) is returned as an error.
//
// Parameters:
//   - soup: the input triangles to compile
//   - textures: the texture name table soup's TexIndex fields index into
//   - opts: functional options configuring the vertex table and root-selection heuristic
//
// Returns:
//   - *Tree: the compiled, canonicalized BSP tree
//   - []string: warnings for dropped degenerate triangles
//   - error: a validation failure in soup or textures
func Compile(soup []triangle.Triangle, textures triangle.Table, opts ...CompileOption) (*Tree, []string, error) {
	if err := triangle.ValidateSoup(soup, textures); err != nil {
		return nil, nil, err
	}

	cfg := resolveConfig(opts)

	var warnings []string
	items := make([]*rawTri, 0, len(soup))
	for i, tri := range soup {
		v0 := geom.Vec3FromFloat32(tri.Vertices[0])
		v1 := geom.Vec3FromFloat32(tri.Vertices[1])
		v2 := geom.Vec3FromFloat32(tri.Vertices[2])
		plane, ok := geom.PlaneFromTriangle(v0, v1, v2)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("bsp: dropping degenerate input triangle %d", i))
			continue
		}
		items = append(items, &rawTri{
			texIndex:  tri.TexIndex,
			verts:     tri.Vertices,
			texcoords: tri.TexCoords,
			plane:     plane,
		})
	}

	root, maxDepth, numNodes := buildTree(items, cfg.parallelThreshold)

	canonRoot, canonWarnings, err := canonicalizeTree(root, cfg.context)
	if err != nil {
		return nil, warnings, err
	}
	warnings = append(warnings, canonWarnings...)

	tree := &Tree{
		TextureNames: textures.Names,
		Vertices:     cfg.context.Entries(),
		AABB:         cfg.context.AABB(),
		MaxDepth:     uint16(maxDepth),
		NumNodes:     uint16(numNodes),
		NumTri:       uint32(countTris(canonRoot)),
		Root:         canonRoot,
	}
	return tree, warnings, nil
}

// countTris walks the canonicalized tree with an explicit stack for the
// same reason buildTree does (spec §9: deep trees and recursion don't mix).
func countTris(root *CanonicalNode) int {
	total := 0
	stack := []*CanonicalNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		total += len(n.Tris)
		stack = append(stack, n.Back, n.Front)
	}
	return total
}
