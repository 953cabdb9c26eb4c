package gpuformat

import "github.com/cogentcore/webgpu/wgpu"

// VertexSize is the packed byte size of one canonicalized vertex: a
// position (float32x3, 12 bytes) followed by a texcoord (float32x2, 8
// bytes).
const VertexSize = 12 + 8

// VertexLayout describes the canonical oxybsp vertex attribute layout as a
// wgpu.VertexBufferLayout, so a caller wiring a compiled mesh or tree's
// vertex table into a WebGPU pipeline doesn't have to hand-derive
// offsets — mirrors the teacher's buildVertexBufferLayout
// (engine/renderer/shader/wgsl_parser_backend.go).
var VertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: VertexSize,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
		{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // texcoord
	},
}
