package geom

import "testing"

func zPlane() Plane {
	p, ok := PlaneFromTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	if !ok {
		panic("unexpected degenerate plane in test fixture")
	}
	return p
}

func TestClassifyPoint(t *testing.T) {
	p := zPlane()
	cases := []struct {
		name string
		v    Vec3
		want Side
	}{
		{"well above", Vec3{0, 0, 1}, Above},
		{"well below", Vec3{0, 0, -1}, Below},
		{"exactly on", Vec3{3, 4, 0}, On},
		{"within fat-plane thickness", Vec3{0, 0, PlaneThickness / 2}, On},
		{"just outside fat-plane thickness", Vec3{0, 0, PlaneThickness * 2}, Above},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyPoint(p, c.v); got != c.want {
				t.Errorf("ClassifyPoint(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestClassifyTriangle(t *testing.T) {
	p := zPlane()
	cases := []struct {
		name       string
		v0, v1, v2 Vec3
		want       TriSide
	}{
		{"coincident", Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Coincident},
		{"in front", Vec3{0, 0, 1}, Vec3{1, 0, 1}, Vec3{0, 1, 1}, InFront},
		{"in front touching plane", Vec3{0, 0, 0}, Vec3{1, 0, 1}, Vec3{0, 1, 1}, InFront},
		{"in back", Vec3{0, 0, -1}, Vec3{1, 0, -1}, Vec3{0, 1, -1}, InBack},
		{"spanning", Vec3{0, 0, -1}, Vec3{1, 0, 1}, Vec3{0, 1, 0}, Spanning},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyTriangle(p, c.v0, c.v1, c.v2); got != c.want {
				t.Errorf("ClassifyTriangle = %v, want %v", got, c.want)
			}
		})
	}
}
