package bsp

import (
	"testing"

	"github.com/oxybsp/oxybsp/geom"
)

func zUpPlane(t *testing.T) geom.Plane {
	t.Helper()
	p, ok := geom.PlaneFromTriangle(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("unexpected degenerate fixture plane")
	}
	return p
}

func isAnticlockwise(t *testing.T, tri *rawTri, refPlane geom.Plane) {
	t.Helper()
	// A re-derived anticlockwise triangle's plane normal must point the
	// same way as the reference plane it was split from.
	n := tri.plane.Normal()
	r := refPlane.Normal()
	dot := n[0]*r[0] + n[1]*r[1] + n[2]*r[2]
	if dot <= 0 {
		t.Errorf("triangle %v winding flipped relative to source plane (dot = %v)", tri.verts, dot)
	}
}

// TestSplitSpanningTriangle mirrors scenario S3: a triangle with one vertex
// below z=0, one above, and one exactly on it.
func TestSplitSpanningTriangle(t *testing.T) {
	plane := zUpPlane(t)
	tri := &rawTri{
		texIndex: 7,
		verts: [3][3]float32{
			{0, 0, -1},
			{1, 0, 1},
			{0, 1, 0},
		},
		texcoords: [3][2]float32{{0, 0}, {1, 0}, {0, 1}},
	}
	pl, ok := geom.PlaneFromTriangle(
		geom.Vec3FromFloat32(tri.verts[0]),
		geom.Vec3FromFloat32(tri.verts[1]),
		geom.Vec3FromFloat32(tri.verts[2]),
	)
	if !ok {
		t.Fatal("unexpected degenerate input triangle")
	}
	tri.plane = pl

	side := tri.classify(plane)
	if side != geom.Spanning {
		t.Fatalf("fixture triangle classifies as %v, want Spanning", side)
	}

	front, back := split(tri, plane)
	total := len(front) + len(back)
	if total != 3 {
		t.Fatalf("split produced %d output triangles, want 3 (1 front-side + 2 back-side, or vice-versa)", total)
	}
	if !((len(front) == 1 && len(back) == 2) || (len(front) == 2 && len(back) == 1)) {
		t.Fatalf("front/back split = %d/%d, want 1/2 or 2/1", len(front), len(back))
	}

	for _, out := range front {
		isAnticlockwise(t, out, tri.plane)
		for _, v := range out.verts {
			vv := geom.Vec3FromFloat32(v)
			if geom.ClassifyPoint(plane, vv) == geom.Below {
				t.Errorf("front-side output triangle has a vertex Below the plane: %v", v)
			}
		}
	}
	for _, out := range back {
		isAnticlockwise(t, out, tri.plane)
		for _, v := range out.verts {
			vv := geom.Vec3FromFloat32(v)
			if geom.ClassifyPoint(plane, vv) == geom.Above {
				t.Errorf("back-side output triangle has a vertex Above the plane: %v", v)
			}
		}
	}

	for _, out := range append(append([]*rawTri{}, front...), back...) {
		if out.texIndex != 7 {
			t.Errorf("split output did not inherit texIndex: got %d, want 7", out.texIndex)
		}
	}
}

func TestTriangulateRing(t *testing.T) {
	ring3 := []ringVert{
		{pos: [3]float32{0, 0, 0}, tex: [2]float32{0, 0}},
		{pos: [3]float32{1, 0, 0}, tex: [2]float32{1, 0}},
		{pos: [3]float32{0, 1, 0}, tex: [2]float32{0, 1}},
	}
	if got := triangulateRing(ring3, 0); len(got) != 1 {
		t.Fatalf("3-vertex ring produced %d triangles, want 1", len(got))
	}

	ring4 := []ringVert{
		{pos: [3]float32{0, 0, 0}},
		{pos: [3]float32{1, 0, 0}},
		{pos: [3]float32{1, 1, 0}},
		{pos: [3]float32{0, 1, 0}},
	}
	if got := triangulateRing(ring4, 0); len(got) != 2 {
		t.Fatalf("4-vertex ring produced %d triangles, want 2", len(got))
	}

	if got := triangulateRing(nil, 0); got != nil {
		t.Fatalf("empty ring produced %d triangles, want 0", len(got))
	}
}
