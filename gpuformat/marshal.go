package gpuformat

import (
	"encoding/binary"
	"math"

	"github.com/oxybsp/oxybsp/vertextable"
)

// MarshalVertex packs a canonicalized vertex table entry into the
// little-endian byte layout VertexLayout describes, mirroring
// GPUVertex.Marshal() (engine/model/gpu_types.go).
//
// Parameters:
//   - e: the vertex table entry to pack
//
// Returns:
//   - []byte: the entry's little-endian byte encoding, VertexSize bytes long
func MarshalVertex(e vertextable.Entry) []byte {
	buf := make([]byte, VertexSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(e.Pos[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(e.Pos[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(e.Pos[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(e.Tex[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(e.Tex[1]))
	return buf
}

// MarshalVertices packs every entry in table into one contiguous buffer
// suitable for a single vertex-buffer upload.
//
// Parameters:
//   - table: the vertex table entries to pack, in order
//
// Returns:
//   - []byte: the concatenated little-endian encoding of every entry in table
func MarshalVertices(table []vertextable.Entry) []byte {
	buf := make([]byte, 0, len(table)*VertexSize)
	for _, e := range table {
		buf = append(buf, MarshalVertex(e)...)
	}
	return buf
}
