package geom

import "math"

// AABB is an axis-aligned bounding box accumulated over a model's
// canonicalized vertices, stored in single precision to match the
// persisted format (spec §4.7: minX,maxX,minY,maxY,minZ,maxZ as 6 x f32).
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// EmptyAABB returns an AABB with inverted bounds so the first Extend call
// always widens it.
func EmptyAABB() AABB {
	return AABB{
		Min: [3]float32{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
		Max: [3]float32{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
	}
}

// Extend widens the box to include v.
func (b *AABB) Extend(v [3]float32) {
	for i := 0; i < 3; i++ {
		if v[i] < b.Min[i] {
			b.Min[i] = v[i]
		}
		if v[i] > b.Max[i] {
			b.Max[i] = v[i]
		}
	}
}
