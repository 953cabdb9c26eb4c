package geom

import "testing"

func TestSegmentPlaneIntersection(t *testing.T) {
	p := zPlane()
	tParam, pt := SegmentPlaneIntersection(p, Vec3{0, 0, -1}, Vec3{0, 0, 1})
	if tParam != 0.5 {
		t.Errorf("t = %v, want 0.5", tParam)
	}
	if pt != (Vec3{0, 0, 0}) {
		t.Errorf("point = %v, want origin", pt)
	}
	if d := p.SignedDistance(pt); d < -1e-9 || d > 1e-9 {
		t.Errorf("intersection point not on plane: d = %v", d)
	}
}

func TestSegmentPlaneIntersectionPanicsOnParallel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a segment lying in the plane")
		}
	}()
	p := zPlane()
	SegmentPlaneIntersection(p, Vec3{0, 0, 0}, Vec3{1, 1, 0})
}
