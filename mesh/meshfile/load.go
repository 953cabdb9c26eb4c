package meshfile

import (
	"errors"
	"io"

	"github.com/oxybsp/oxybsp/common"
	"github.com/oxybsp/oxybsp/geom"
	"github.com/oxybsp/oxybsp/mesh"
	"github.com/oxybsp/oxybsp/vertextable"
)

// errMalformed mirrors bspfile's errMalformed: bad magic or bad version
// (spec §4.10/§7).
var errMalformed = errors.New("meshfile: malformed data")

// Load reads an indexed mesh written by Save. On bad magic or bad version
// it returns (nil, nil) — a null artifact with no error, per spec
// §4.10/§7. Genuine I/O failures are returned as an error.
//
// Parameters:
//   - r: the source to read the encoded mesh from
//
// Returns:
//   - *mesh.Mesh: the decoded mesh, or nil if r held malformed data
//   - error: an I/O error from r; nil for both a successful decode and malformed data
func Load(r io.Reader) (*mesh.Mesh, error) {
	m, err := load(r)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func load(r io.Reader) (*mesh.Mesh, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, errMalformed
	}

	version, err := common.ReadUint8(r)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, errMalformed
	}

	nMaps, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	names := make([]string, nMaps)
	for i := range names {
		names[i], err = common.ReadCString(r, 255)
		if err != nil {
			return nil, err
		}
	}
	mapTriNums := make([]uint32, nMaps)
	for i := range mapTriNums {
		mapTriNums[i], err = common.ReadUint32(r)
		if err != nil {
			return nil, err
		}
	}

	nVertices, err := common.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	entries := make([]vertextable.Entry, nVertices)
	for i := range entries {
		for k := 0; k < 3; k++ {
			entries[i].Pos[k], err = common.ReadFloat32(r)
			if err != nil {
				return nil, err
			}
		}
	}
	for i := range entries {
		for k := 0; k < 2; k++ {
			entries[i].Tex[k], err = common.ReadFloat32(r)
			if err != nil {
				return nil, err
			}
		}
	}

	var aabb geom.AABB
	bounds := [6]*float32{&aabb.Min[0], &aabb.Max[0], &aabb.Min[1], &aabb.Max[1], &aabb.Min[2], &aabb.Max[2]}
	for _, b := range bounds {
		*b, err = common.ReadFloat32(r)
		if err != nil {
			return nil, err
		}
	}

	if _, err := common.ReadUint32(r); err != nil { // trailer numTri, unused: redundant with mapTriNums
		return nil, err
	}

	groups := make([][]uint16, nMaps)
	for i, n := range mapTriNums {
		g := make([]uint16, n*3)
		for j := range g {
			g[j], err = common.ReadUint16(r)
			if err != nil {
				return nil, err
			}
		}
		groups[i] = g
	}

	return &mesh.Mesh{
		TextureNames: names,
		Vertices:     entries,
		Groups:       groups,
		AABB:         aabb,
	}, nil
}
