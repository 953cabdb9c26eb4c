package geom

import "math"

// SegmentEpsilon computes the adaptive tolerance used to reject a
// near-parallel segment/plane intersection. This is the source's original
// formula, |  (A + v1.z) * ε_double / 2  |, an unusual mixing of a plane
// coefficient with a single ordinate of the second endpoint. It is
// preserved by default (spec §9) because existing datasets were authored
// against it; CleanSegmentEpsilon below is the better-conditioned
// alternative the spec flags as an open question.
//
// Parameters:
//   - plane: the plane the segment is being tested against
//   - v1: the segment's second endpoint
//
// Returns:
//   - float64: the adaptive tolerance below which the intersection denominator is rejected
func SegmentEpsilon(plane Plane, v1 Vec3) float64 {
	return math.Abs((plane.A + v1[2]) * EpsilonDouble / 2)
}

// CleanSegmentEpsilon is the alternative adaptive epsilon spec §9 suggests
// substituting if regression tests on real models pass: ε scaled by the
// plane-projected extent of the segment itself, rather than one raw
// ordinate of one endpoint.
//
// Parameters:
//   - plane: the plane the segment is being tested against
//   - v0: the segment's first endpoint
//   - v1: the segment's second endpoint
//
// Returns:
//   - float64: the adaptive tolerance below which the intersection denominator is rejected
func CleanSegmentEpsilon(plane Plane, v0, v1 Vec3) float64 {
	d := v1.Sub(v0)
	return EpsilonDouble * (math.Abs(plane.A*d[0]) + math.Abs(plane.B*d[1]) + math.Abs(plane.C*d[2]))
}

// SegmentEpsilonFunc selects which adaptive epsilon formula
// SegmentPlaneIntersection uses. Defaults to the legacy formula (see
// SegmentEpsilon); CleanSegmentEpsilon has the same signature and can be
// assigned directly if a given model corpus regresses against the legacy one.
var SegmentEpsilonFunc = func(plane Plane, v0, v1 Vec3) float64 {
	return SegmentEpsilon(plane, v1)
}

// SegmentPlaneIntersection computes where the segment v0->v1 crosses plane.
// Precondition: the segment actually spans the plane (the caller has
// already classified v0 and v1 on opposite strict sides). Violating this
// precondition — a segment parallel to or lying within the plane — is a
// programmer error and panics, per spec §4.1/§7 ("the caller has violated
// the precondition").
//
// Parameters:
//   - plane: the plane the segment crosses
//   - v0: the segment's first endpoint
//   - v1: the segment's second endpoint
//
// Returns:
//   - float64: the interpolation parameter t such that the crossing point is v0 + t*(v1-v0)
//   - Vec3: the intersection point, numerically coincident with plane
func SegmentPlaneIntersection(plane Plane, v0, v1 Vec3) (t float64, point Vec3) {
	d := v1.Sub(v0)
	denom := plane.A*d[0] + plane.B*d[1] + plane.C*d[2]
	eps := SegmentEpsilonFunc(plane, v0, v1)
	if math.Abs(denom) <= eps {
		panic("geom: SegmentPlaneIntersection called on a non-spanning segment")
	}
	t = -(plane.A*v0[0] + plane.B*v0[1] + plane.C*v0[2] + plane.D) / denom
	return t, v0.Add(d.Scale(t))
}
