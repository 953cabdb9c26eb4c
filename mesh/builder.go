package mesh

import (
	"fmt"

	"github.com/oxybsp/oxybsp/triangle"
)

// Build implements the §4.6 indexed mesh builder: the same vertex-folding
// contract the bsp canonicalizer uses (§4.5), applied directly to the
// input soup instead of a compiled tree's coplanar lists, and grouped by
// texture into flat index arrays rather than threaded through a tree.
// Degenerate triangles (two equal indices after folding) are dropped and
// reported as warnings, never fail the build (spec §4.10).
//
// Parameters:
//   - soup: the input triangles to build an indexed mesh from
//   - textures: the texture name table soup's TexIndex fields index into
//   - opts: functional options configuring the shared vertex table
//
// Returns:
//   - *Mesh: the built indexed mesh
//   - []string: warnings for triangles dropped after vertex folding
//   - error: a validation failure in soup or textures, or an interning failure
func Build(soup []triangle.Triangle, textures triangle.Table, opts ...BuildOption) (*Mesh, []string, error) {
	if err := triangle.ValidateSoup(soup, textures); err != nil {
		return nil, nil, err
	}

	cfg := resolveConfig(opts)

	groups := make([][]uint16, len(textures.Names))
	var warnings []string

	for i, tri := range soup {
		var idx [3]uint16
		for k := 0; k < 3; k++ {
			vidx, _, err := cfg.context.Intern(tri.Vertices[k], tri.TexCoords[k])
			if err != nil {
				return nil, warnings, fmt.Errorf("mesh: interning triangle %d: %w", i, err)
			}
			idx[k] = vidx
		}

		if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
			warnings = append(warnings, fmt.Sprintf("mesh: dropping triangle %d with two equal indices after folding (texture %d)", i, tri.TexIndex))
			continue
		}

		groups[tri.TexIndex] = append(groups[tri.TexIndex], idx[0], idx[1], idx[2])
	}

	m := &Mesh{
		TextureNames: textures.Names,
		Vertices:     cfg.context.Entries(),
		Groups:       groups,
		AABB:         cfg.context.AABB(),
	}
	return m, warnings, nil
}
