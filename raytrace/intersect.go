package raytrace

import (
	"math"

	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/mesh"
)

// Epsilon (ε_float) bounds how close to zero a Möller-Trumbore determinant
// may be before the triangle is treated as parallel to the ray and
// skipped.
const Epsilon = 1e-7

// Hit casts a segment from-to against every triangle of m and reports
// whether it strikes the mesh, plus the linear distance along the segment
// at which the nearest contact occurs. A zero-length segment is treated as
// an immediate hit (spec §4.8: "degenerate movement is treated as a
// collision"). Backface culling is not applied (spec §4.8, §9).
//
// Parameters:
//   - m: the indexed mesh to test against
//   - from: the segment's starting point
//   - to: the segment's ending point
//
// Returns:
//   - bool: whether the segment strikes any triangle in m
//   - float64: the linear distance along the segment to the nearest hit, 0 if none
func Hit(m *mesh.Mesh, from, to geom.Vec3) (hit bool, distance float64) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return true, 0
	}
	dir := d.Scale(1 / length)

	best := math.Inf(1)
	found := false

	for _, group := range m.Groups {
		for i := 0; i+2 < len(group); i += 3 {
			v0 := geom.Vec3FromFloat32(m.Vertices[group[i]].Pos)
			v1 := geom.Vec3FromFloat32(m.Vertices[group[i+1]].Pos)
			v2 := geom.Vec3FromFloat32(m.Vertices[group[i+2]].Pos)

			t, ok := triangleIntersect(from, dir, v0, v1, v2)
			if !ok {
				continue
			}
			if t >= 0 && t <= length && t < best {
				best = t
				found = true
			}
		}
	}

	if !found {
		return false, 0
	}
	return true, best
}

// triangleIntersect is the Möller-Trumbore ray/triangle test: a parallel
// ray (|det| < Epsilon) is skipped, and the barycentric coordinates u, v
// must fall within [0,1] with u+v <= 1 for the hit to count.
func triangleIntersect(origin, dir, v0, v1, v2 geom.Vec3) (t float64, ok bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -Epsilon && det < Epsilon {
		return 0, false
	}
	invDet := 1 / det

	tvec := origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = edge2.Dot(qvec) * invDet
	return t, true
}
