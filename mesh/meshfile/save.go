package meshfile

import (
	"fmt"
	"io"

	"github.com/oxybsp/oxybsp/common"
	"github.com/oxybsp/oxybsp/mesh"
)

// Save writes m to w in the format spec §4.7 describes: the common header,
// then the IM trailer (numTri, followed by each texture's flat index
// array in turn).
//
// Parameters:
//   - w: the destination to write the encoded mesh to
//   - m: the indexed mesh to persist
//
// Returns:
//   - error: an I/O error from w, or a size-limit violation (too many textures/vertices)
func Save(w io.Writer, m *mesh.Mesh) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if err := common.WriteUint8(w, Version); err != nil {
		return err
	}

	if len(m.TextureNames) > 0xFFFF {
		return fmt.Errorf("meshfile: %d texture names exceeds the u16 nMaps field", len(m.TextureNames))
	}
	if err := common.WriteUint16(w, uint16(len(m.TextureNames))); err != nil {
		return err
	}
	for _, name := range m.TextureNames {
		if err := common.WriteCString(w, name); err != nil {
			return err
		}
	}
	for _, g := range m.Groups {
		if len(g)%3 != 0 {
			return fmt.Errorf("meshfile: texture group has %d indices, not a multiple of 3", len(g))
		}
		if err := common.WriteUint32(w, uint32(len(g)/3)); err != nil {
			return err
		}
	}

	if len(m.Vertices) > 0xFFFF {
		return fmt.Errorf("meshfile: %d vertices exceeds the u16 nVertices field", len(m.Vertices))
	}
	if err := common.WriteUint16(w, uint16(len(m.Vertices))); err != nil {
		return err
	}
	for _, v := range m.Vertices {
		for _, c := range v.Pos {
			if err := common.WriteFloat32(w, c); err != nil {
				return err
			}
		}
	}
	for _, v := range m.Vertices {
		for _, c := range v.Tex {
			if err := common.WriteFloat32(w, c); err != nil {
				return err
			}
		}
	}

	bounds := []float32{
		m.AABB.Min[0], m.AABB.Max[0],
		m.AABB.Min[1], m.AABB.Max[1],
		m.AABB.Min[2], m.AABB.Max[2],
	}
	for _, b := range bounds {
		if err := common.WriteFloat32(w, b); err != nil {
			return err
		}
	}

	numTri := uint32(0)
	for _, g := range m.Groups {
		numTri += uint32(len(g) / 3)
	}
	if err := common.WriteUint32(w, numTri); err != nil {
		return err
	}

	for _, g := range m.Groups {
		for _, idx := range g {
			if err := common.WriteUint16(w, idx); err != nil {
				return err
			}
		}
	}

	return nil
}
