package bsp

import "github.com/oxybsp/oxybsp/geom"

// ringVert is one vertex of the front or back polygon being assembled
// while walking a spanning triangle's edges (spec §4.4).
type ringVert struct {
	pos [3]float32
	tex [2]float32
}

// split implements the spanning-triangle splitter (spec §4.4). Precondition:
// t classifies as geom.Spanning against plane. Walking the three edges in
// anticlockwise order, each vertex is pushed onto the front ring, the back
// ring, or both (On vertices go to both); whenever consecutive vertices
// strictly cross the plane, the crossing point is computed and pushed onto
// both rings too. Each ring (0-2 per input triangle class, up to 4 entries)
// is fan-triangulated and every output triangle's plane is re-derived,
// dropping degenerate results.
func split(t *rawTri, plane geom.Plane) (front, back []*rawTri) {
	var sides [3]geom.Side
	for i := 0; i < 3; i++ {
		sides[i] = geom.ClassifyPoint(plane, t.vec3(i))
	}

	var frontRing, backRing []ringVert
	for i := 0; i < 3; i++ {
		v := ringVert{pos: t.verts[i], tex: t.texcoords[i]}
		switch sides[i] {
		case geom.Above:
			frontRing = append(frontRing, v)
		case geom.Below:
			backRing = append(backRing, v)
		case geom.On:
			frontRing = append(frontRing, v)
			backRing = append(backRing, v)
		}

		j := (i + 1) % 3
		crosses := (sides[i] == geom.Above && sides[j] == geom.Below) ||
			(sides[i] == geom.Below && sides[j] == geom.Above)
		if !crosses {
			continue
		}
		tParam, pt := geom.SegmentPlaneIntersection(plane, t.vec3(i), t.vec3(j))
		iv := ringVert{
			pos: [3]float32{float32(pt[0]), float32(pt[1]), float32(pt[2])},
			tex: lerpTex(t.texcoords[i], t.texcoords[j], tParam),
		}
		frontRing = append(frontRing, iv)
		backRing = append(backRing, iv)
	}

	if len(frontRing) > 4 || len(backRing) > 4 {
		panic("bsp: splitter produced a ring with more than 4 vertices")
	}

	return triangulateRing(frontRing, t.texIndex), triangulateRing(backRing, t.texIndex)
}

// lerpTex interpolates a texcoord pair by the same parameter t used to
// interpolate the position (spec §4.4).
func lerpTex(a, b [2]float32, t float64) [2]float32 {
	return [2]float32{
		float32(float64(a[0]) + (float64(b[0])-float64(a[0]))*t),
		float32(float64(a[1]) + (float64(b[1])-float64(a[1]))*t),
	}
}

// triangulateRing fan-triangulates a 0/3/4-vertex ring per spec §4.4: a
// 3-vertex ring emits one triangle, a 4-vertex ring emits (r0,r1,r2) and
// (r2,r3,r0). Every emitted triangle's plane is re-derived from its own
// vertices; degenerate results are dropped.
func triangulateRing(ring []ringVert, texIndex uint16) []*rawTri {
	var fans [][3]int
	switch len(ring) {
	case 0, 1, 2:
		return nil
	case 3:
		fans = [][3]int{{0, 1, 2}}
	case 4:
		fans = [][3]int{{0, 1, 2}, {2, 3, 0}}
	default:
		panic("bsp: ring has an unexpected vertex count")
	}

	out := make([]*rawTri, 0, len(fans))
	for _, idx := range fans {
		v0, v1, v2 := ring[idx[0]], ring[idx[1]], ring[idx[2]]
		plane, ok := geom.PlaneFromTriangle(
			geom.Vec3FromFloat32(v0.pos),
			geom.Vec3FromFloat32(v1.pos),
			geom.Vec3FromFloat32(v2.pos),
		)
		if !ok {
			continue
		}
		out = append(out, &rawTri{
			texIndex:  texIndex,
			verts:     [3][3]float32{v0.pos, v1.pos, v2.pos},
			texcoords: [3][2]float32{v0.tex, v1.tex, v2.tex},
			plane:     plane,
		})
	}
	return out
}
