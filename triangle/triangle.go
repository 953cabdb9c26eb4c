package triangle

import "fmt"

// MaxTextures is the largest number of distinct textures a model may
// reference — the serialized format's nMaps field is a u16 (spec §3, §9).
const MaxTextures = 65535

// Triangle is one anticlockwise-wound, texture-mapped input triangle.
// Vertices are single-precision to match the persisted format; plane math
// downstream widens them to double precision (geom.Vec3FromFloat32).
type Triangle struct {
	// Vertices are anticlockwise when viewed from the front. This
	// orientation is load-bearing: splits must preserve it and normals are
	// derived from it (spec §3).
	Vertices [3][3]float32

	// TexIndex references Table.Names by position.
	TexIndex uint16

	// TexCoords are the per-vertex UV coordinates, in the same order as
	// Vertices.
	TexCoords [3][2]float32
}

// Table is the texture name table a triangle soup's TexIndex values
// reference. Names must be <= 255 bytes, 7-bit ASCII (spec §6) — they are
// persisted NUL-terminated, so embedded NULs are also rejected.
type Table struct {
	Names []string
}

// Validate checks the table half of the collaborator contract spec §6
// places on callers: at most MaxTextures names, each short, 7-bit ASCII,
// and NUL-free. Texture indices are checked by ValidateSoup.
func (t Table) Validate() error {
	if len(t.Names) > MaxTextures {
		return fmt.Errorf("triangle: %d texture names exceeds the %d-texture format limit", len(t.Names), MaxTextures)
	}
	for i, name := range t.Names {
		if len(name) > 255 {
			return fmt.Errorf("triangle: texture name %d (%q) exceeds 255 bytes", i, name)
		}
		for _, r := range name {
			if r == 0 || r > 127 {
				return fmt.Errorf("triangle: texture name %d (%q) is not 7-bit ASCII", i, name)
			}
		}
	}
	return nil
}

// ValidateSoup checks that every triangle's TexIndex falls within table.
//
// Parameters:
//   - soup: the input triangles to validate
//   - table: the texture name table soup's TexIndex fields index into
//
// Returns:
//   - error: an invalid table, or a triangle referencing an out-of-range texture index
func ValidateSoup(soup []Triangle, table Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	for i, tri := range soup {
		if int(tri.TexIndex) >= len(table.Names) {
			return fmt.Errorf("triangle: triangle %d references texture index %d, but the table has %d entries", i, tri.TexIndex, len(table.Names))
		}
	}
	return nil
}
