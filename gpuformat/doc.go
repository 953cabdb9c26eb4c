// Package gpuformat describes the GPU vertex-buffer layout a compiled
// oxybsp mesh's shared vertex table maps onto, and packs table entries
// into that layout's byte form. oxybsp renders nothing itself (spec §1
// names the renderer an external collaborator) — this package is metadata
// for a caller wiring a loaded mesh into their own WebGPU pipeline.
package gpuformat
