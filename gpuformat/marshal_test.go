package gpuformat

import (
	"testing"

	"github.com/oxybsp/oxybsp/vertextable"
)

func TestMarshalVertexSize(t *testing.T) {
	e := vertextable.Entry{Pos: [3]float32{1, 2, 3}, Tex: [2]float32{0.5, 0.25}}
	buf := MarshalVertex(e)
	if len(buf) != VertexSize {
		t.Fatalf("len = %d, want %d", len(buf), VertexSize)
	}
}

func TestMarshalVerticesConcatenates(t *testing.T) {
	table := []vertextable.Entry{
		{Pos: [3]float32{1, 2, 3}, Tex: [2]float32{0, 0}},
		{Pos: [3]float32{4, 5, 6}, Tex: [2]float32{1, 1}},
	}
	buf := MarshalVertices(table)
	if len(buf) != 2*VertexSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexSize)
	}
}
