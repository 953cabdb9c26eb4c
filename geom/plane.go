package geom

import "math"

// EpsilonDouble is the machine epsilon for float64 (2^-52), used as the
// degeneracy threshold for a triangle's cross-product magnitude.
const EpsilonDouble = 2.220446049250313e-16

// PlaneThickness is the fat-plane thickness (ε_plane) used by ClassifyPoint:
// points within this signed distance of a plane classify as On.
const PlaneThickness = 5e-4

// Vec3 is a double-precision 3D vector. Triangle splitting and plane math
// run in double precision even though the persisted vertex format is
// single-precision — cross products on triangles spanning hundreds of units
// lose 2-3 significant bits in float32.
type Vec3 [3]float64

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// Lerp returns the point a + t*(b-a).
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Cross returns a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Dot returns a . b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Vec3FromFloat32 widens a single-precision position to the double-precision
// working type used throughout this package.
func Vec3FromFloat32(v [3]float32) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Plane is the equation Ax+By+Cz+D=0, stored in double precision.
// Invariant: (A,B,C) is a unit normal.
type Plane struct {
	A, B, C, D float64
}

// Normal returns the plane's unit normal.
func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

// SignedDistance returns the signed distance from v to the plane. Because
// the normal is unit, plugging v into Ax+By+Cz+D equals the signed
// distance directly.
func (p Plane) SignedDistance(v Vec3) float64 {
	return p.A*v[0] + p.B*v[1] + p.C*v[2] + p.D
}

// PlaneFromTriangle computes the plane through v0, v1, v2 using the
// normalized cross product of the two edges from v0. Winding is
// anticlockwise-in, so the resulting normal points the way the input
// triangle faces.
//
// Parameters:
//   - v0: the triangle's first vertex, taken as the plane's origin
//   - v1: the triangle's second vertex
//   - v2: the triangle's third vertex
//
// Returns:
//   - Plane: the plane through v0, v1, v2, valid only if ok is true
//   - bool: false if the triangle is degenerate (the cross product magnitude
//     falls at or below EpsilonDouble — collinear or zero-area)
func PlaneFromTriangle(v0, v1, v2 Vec3) (plane Plane, ok bool) {
	ab := v1.Sub(v0)
	ac := v2.Sub(v0)
	n := ab.Cross(ac)
	m := n.Length()
	if m <= EpsilonDouble {
		return Plane{}, false
	}
	invM := 1.0 / m
	a := n[0] * invM
	b := n[1] * invM
	c := n[2] * invM
	d := -(a*v0[0] + b*v0[1] + c*v0[2])
	return Plane{A: a, B: b, C: c, D: d}, true
}
