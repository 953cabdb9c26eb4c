package mesh

import (
	"testing"

	"github.com/oxybsp/oxybsp/triangle"
)

func tri(v0, v1, v2 [3]float32, texIndex uint16) triangle.Triangle {
	return triangle.Triangle{
		Vertices:  [3][3]float32{v0, v1, v2},
		TexIndex:  texIndex,
		TexCoords: [3][2]float32{{0, 0}, {1, 0}, {0, 1}},
	}
}

// TestBuildFoldsSharedEdge mirrors scenario S4: two triangles sharing an
// edge with identical endpoint coordinates and texture coordinates fold to
// four table entries, not six, and both triangles reference the same two
// indices for the shared edge.
func TestBuildFoldsSharedEdge(t *testing.T) {
	soup := []triangle.Triangle{
		tri([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, 0),
		{
			Vertices:  [3][3]float32{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			TexIndex:  0,
			TexCoords: [3][2]float32{{1, 0}, {1, 1}, {0, 1}},
		},
	}
	m, warnings, err := Build(soup, triangle.Table{Names: []string{"tex0"}})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("vertex table size = %d, want 4", len(m.Vertices))
	}
	if len(m.Groups) != 1 || len(m.Groups[0]) != 6 {
		t.Fatalf("group 0 = %v, want 6 indices", m.Groups[0])
	}
	// shared edge is (1,0,0) and (0,1,0): tri0 indices [1,2], tri1 indices [0,2]
	g := m.Groups[0]
	tri0 := [3]uint16{g[0], g[1], g[2]}
	tri1 := [3]uint16{g[3], g[4], g[5]}
	shared := map[uint16]int{}
	for _, i := range tri0 {
		shared[i]++
	}
	for _, i := range tri1 {
		shared[i]++
	}
	twice := 0
	for _, c := range shared {
		if c == 2 {
			twice++
		}
	}
	if twice != 2 {
		t.Errorf("expected exactly 2 shared indices between the two triangles, got %d (tri0=%v tri1=%v)", twice, tri0, tri1)
	}
}

func TestBuildDropsDegenerateAfterFolding(t *testing.T) {
	soup := []triangle.Triangle{{
		Vertices:  [3][3]float32{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		TexIndex:  0,
		TexCoords: [3][2]float32{{0, 0}, {0, 0}, {1, 0}},
	}}
	m, warnings, err := Build(soup, triangle.Table{Names: []string{"tex0"}})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if len(m.Groups[0]) != 0 {
		t.Fatalf("expected degenerate triangle to be dropped, got %v", m.Groups[0])
	}
}

func TestBuildRejectsBadTextureIndex(t *testing.T) {
	soup := []triangle.Triangle{
		tri([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, 3),
	}
	if _, _, err := Build(soup, triangle.Table{Names: []string{"tex0"}}); err == nil {
		t.Fatal("expected an error for an out-of-range texture index")
	}
}

func TestNumTriangles(t *testing.T) {
	m := &Mesh{Groups: [][]uint16{{0, 1, 2}, {0, 1, 2, 3, 4, 5}}}
	if got := m.NumTriangles(); got != 3 {
		t.Errorf("NumTriangles() = %d, want 3", got)
	}
}
