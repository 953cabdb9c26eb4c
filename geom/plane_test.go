package geom

import "testing"

func TestPlaneFromTriangle(t *testing.T) {
	cases := []struct {
		name       string
		v0, v1, v2 Vec3
		wantOK     bool
		wantNormal Vec3
	}{
		{
			name:       "axis-aligned XY triangle",
			v0:         Vec3{0, 0, 0},
			v1:         Vec3{1, 0, 0},
			v2:         Vec3{0, 1, 0},
			wantOK:     true,
			wantNormal: Vec3{0, 0, 1},
		},
		{
			name:   "degenerate collinear",
			v0:     Vec3{0, 0, 0},
			v1:     Vec3{1, 0, 0},
			v2:     Vec3{2, 0, 0},
			wantOK: false,
		},
		{
			name:   "degenerate zero-area",
			v0:     Vec3{1, 1, 1},
			v1:     Vec3{1, 1, 1},
			v2:     Vec3{1, 1, 1},
			wantOK: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, ok := PlaneFromTriangle(c.v0, c.v1, c.v2)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if !ok {
				return
			}
			n := p.Normal()
			for i := 0; i < 3; i++ {
				if diff := n[i] - c.wantNormal[i]; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("normal[%d] = %v, want %v", i, n[i], c.wantNormal[i])
				}
			}
			lenSq := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
			if diff := lenSq - 1; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("normal not unit length: |n|^2 = %v", lenSq)
			}
		})
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	p, ok := PlaneFromTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	if !ok {
		t.Fatal("expected non-degenerate plane")
	}
	if d := p.SignedDistance(Vec3{5, 5, 2}); d != 2 {
		t.Errorf("SignedDistance = %v, want 2", d)
	}
	if d := p.SignedDistance(Vec3{5, 5, -3}); d != -3 {
		t.Errorf("SignedDistance = %v, want -3", d)
	}
}
