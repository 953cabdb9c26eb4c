package raytrace

import (
	"testing"

	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/mesh"
	"github.com/oxybsp/oxybsp/triangle"
)

func singleTriMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	soup := []triangle.Triangle{{
		Vertices:  [3][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
		TexIndex:  0,
		TexCoords: [3][2]float32{{0, 0}, {1, 0}, {0, 1}},
	}}
	m, _, err := mesh.Build(soup, triangle.Table{Names: []string{"tex0"}})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// TestRayHit mirrors scenario S5: a ray straight through the triangle's
// plane should hit at t ~= 1.0.
func TestRayHit(t *testing.T) {
	m := singleTriMesh(t)
	hit, dist := Hit(m, geom.Vec3{0.5, 0.5, 1}, geom.Vec3{0.5, 0.5, -1})
	if !hit {
		t.Fatal("expected a hit")
	}
	if dist < 0.99 || dist > 1.01 {
		t.Errorf("distance = %v, want ~1.0", dist)
	}
}

// TestRayMiss mirrors scenario S6: a ray that misses the triangle entirely.
func TestRayMiss(t *testing.T) {
	m := singleTriMesh(t)
	hit, _ := Hit(m, geom.Vec3{3, 3, 1}, geom.Vec3{3, 3, -1})
	if hit {
		t.Error("expected no hit")
	}
}

func TestZeroLengthSegmentIsAHit(t *testing.T) {
	m := singleTriMesh(t)
	hit, dist := Hit(m, geom.Vec3{10, 10, 10}, geom.Vec3{10, 10, 10})
	if !hit {
		t.Fatal("expected zero-length movement to report a hit")
	}
	if dist != 0 {
		t.Errorf("distance = %v, want 0", dist)
	}
}

// TestRayHitsExactlyAtFarEndpoint guards against a regression where the
// nearest-hit accumulator was seeded with the segment's own length instead
// of an unreached sentinel: a triangle struck exactly at the segment's far
// endpoint (t == length) must still register as a hit.
func TestRayHitsExactlyAtFarEndpoint(t *testing.T) {
	m := singleTriMesh(t)
	hit, dist := Hit(m, geom.Vec3{0.5, 0.5, 1}, geom.Vec3{0.5, 0.5, 0})
	if !hit {
		t.Fatal("expected a hit when the triangle is struck exactly at the segment's far endpoint")
	}
	if dist < 0.99 || dist > 1.01 {
		t.Errorf("distance = %v, want ~1.0", dist)
	}
}

func TestRayStopsShortOfTriangle(t *testing.T) {
	m := singleTriMesh(t)
	hit, _ := Hit(m, geom.Vec3{0.5, 0.5, 1}, geom.Vec3{0.5, 0.5, 0.5})
	if hit {
		t.Error("expected segment ending before the plane to miss")
	}
}
