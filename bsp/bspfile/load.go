package bspfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/oxybsp/oxybsp/bsp"
	"github.com/oxybsp/oxybsp/common"
	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/vertextable"
)

// errMalformed signals one of the load-time conditions spec §4.10/§7
// classifies as "malformed persisted data": bad magic, bad version, bad
// cFlag, or an out-of-range vertex index. Load converts it to a nil
// result with no error rather than propagating it, per that contract.
var errMalformed = errors.New("bspfile: malformed data")

// Load reads a BSP tree written by Save. On bad magic, bad version, or an
// unexpected cFlag byte it returns (nil, nil) — a null artifact with no
// error, per spec §4.10/§7. Genuine I/O failures are returned as-is. A degenerate triangle's re-derived plane on read is a fatal
// assertion (file corruption), not a recoverable condition, and panics.
//
// Parameters:
//   - r: the source to read the encoded tree from
//
// Returns:
//   - *bsp.Tree: the decoded tree, or nil if r held malformed data
//   - error: an I/O error from r; nil for both a successful decode and malformed data
func Load(r io.Reader) (*bsp.Tree, error) {
	tree, err := load(r)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return nil, nil
		}
		return nil, err
	}
	return tree, nil
}

func load(r io.Reader) (*bsp.Tree, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, errMalformed
	}

	version, err := common.ReadUint8(r)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, errMalformed
	}

	nMaps, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	names := make([]string, nMaps)
	for i := range names {
		names[i], err = common.ReadCString(r, 255)
		if err != nil {
			return nil, err
		}
	}
	for i := uint16(0); i < nMaps; i++ {
		if _, err := common.ReadUint32(r); err != nil { // mapTriNums, unused on load
			return nil, err
		}
	}

	nVertices, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	entries := make([]vertextable.Entry, nVertices)
	for i := range entries {
		for k := 0; k < 3; k++ {
			entries[i].Pos[k], err = common.ReadFloat32(r)
			if err != nil {
				return nil, err
			}
		}
	}
	for i := range entries {
		for k := 0; k < 2; k++ {
			entries[i].Tex[k], err = common.ReadFloat32(r)
			if err != nil {
				return nil, err
			}
		}
	}

	var aabb geom.AABB
	bounds := [6]*float32{&aabb.Min[0], &aabb.Max[0], &aabb.Min[1], &aabb.Max[1], &aabb.Min[2], &aabb.Max[2]}
	for _, b := range bounds {
		*b, err = common.ReadFloat32(r)
		if err != nil {
			return nil, err
		}
	}

	maxDepth, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	numNodes, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	numTri, err := common.ReadUint32(r)
	if err != nil {
		return nil, err
	}

	root, err := readNodes(r, entries)
	if err != nil {
		return nil, err
	}

	return &bsp.Tree{
		TextureNames: names,
		Vertices:     entries,
		AABB:         aabb,
		MaxDepth:     maxDepth,
		NumNodes:     numNodes,
		NumTri:       numTri,
		Root:         root,
	}, nil
}

// pendingRead is one node awaiting its turn on the read stack, mirroring
// bsp's pendingCanon/pendingBuild explicit-stack pattern (spec §9).
type pendingRead struct {
	setRef func(*bsp.CanonicalNode)
}

func readNodes(r io.Reader, vertices []vertextable.Entry) (*bsp.CanonicalNode, error) {
	var root *bsp.CanonicalNode
	stack := []pendingRead{{setRef: func(n *bsp.CanonicalNode) { root = n }}}

	for len(stack) > 0 {
		work := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, cFlag, err := readOneNode(r, vertices)
		if err != nil {
			return nil, err
		}
		work.setRef(node)

		switch cFlag {
		case cFlagNone:
		case cFlagBack:
			stack = append(stack, pendingRead{setRef: func(n *bsp.CanonicalNode) { node.Back = n }})
		case cFlagFront:
			stack = append(stack, pendingRead{setRef: func(n *bsp.CanonicalNode) { node.Front = n }})
		case cFlagBoth:
			// Push front first so back pops next, matching writeNodes'
			// self/back/front preorder.
			stack = append(stack, pendingRead{setRef: func(n *bsp.CanonicalNode) { node.Front = n }})
			stack = append(stack, pendingRead{setRef: func(n *bsp.CanonicalNode) { node.Back = n }})
		default:
			return nil, errMalformed
		}
	}

	return root, nil
}

func readOneNode(r io.Reader, vertices []vertextable.Entry) (*bsp.CanonicalNode, byte, error) {
	numTri, err := common.ReadUint16(r)
	if err != nil {
		return nil, 0, err
	}

	tris := make([]bsp.CanonicalTri, numTri)
	for i := range tris {
		tris[i].TexIndex, err = common.ReadUint16(r)
		if err != nil {
			return nil, 0, err
		}
		for k := 0; k < 3; k++ {
			tris[i].VIndices[k], err = common.ReadUint16(r)
			if err != nil {
				return nil, 0, err
			}
		}
	}

	var plane geom.Plane
	if numTri == 0 {
		plane.A, err = common.ReadFloat64(r)
		if err != nil {
			return nil, 0, err
		}
		plane.B, err = common.ReadFloat64(r)
		if err != nil {
			return nil, 0, err
		}
		plane.C, err = common.ReadFloat64(r)
		if err != nil {
			return nil, 0, err
		}
		plane.D, err = common.ReadFloat64(r)
		if err != nil {
			return nil, 0, err
		}
	} else {
		// Plane is re-derived from the first triangle's canonicalized
		// vertices rather than read (spec §4.7). A degenerate plane here
		// means the file is corrupt — fatal, not recoverable (spec §4.10).
		first := tris[0]
		for _, idx := range first.VIndices {
			if int(idx) >= len(vertices) {
				return nil, 0, fmt.Errorf("%w: vertex index %d out of range (table has %d entries)", errMalformed, idx, len(vertices))
			}
		}
		v0 := geom.Vec3FromFloat32(vertices[first.VIndices[0]].Pos)
		v1 := geom.Vec3FromFloat32(vertices[first.VIndices[1]].Pos)
		v2 := geom.Vec3FromFloat32(vertices[first.VIndices[2]].Pos)
		p, ok := geom.PlaneFromTriangle(v0, v1, v2)
		if !ok {
			panic("bspfile: degenerate plane on load indicates file corruption")
		}
		plane = p
	}

	cFlag, err := common.ReadUint8(r)
	if err != nil {
		return nil, 0, err
	}
	switch cFlag {
	case cFlagNone, cFlagBack, cFlagFront, cFlagBoth:
	default:
		return nil, 0, errMalformed
	}

	return &bsp.CanonicalNode{Plane: plane, Tris: tris}, cFlag, nil
}
