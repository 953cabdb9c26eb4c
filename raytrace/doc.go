// Package raytrace implements the ray/mesh intersection query (spec §4.8):
// a linear Möller-Trumbore scan over every triangle in an indexed mesh,
// returning the nearest hit distance within a segment. No spatial
// acceleration structure is used — this is deliberate (spec §1 Non-goals).
package raytrace
