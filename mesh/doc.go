// Package mesh builds an indexed mesh from a triangle soup: per-texture
// flat index arrays into a shared vertex table, folded by the same
// tolerance-based rules the bsp canonicalizer uses (spec §4.6). An indexed
// mesh carries no tree — it is both a direct input source and a
// low-polygon collision proxy for raytrace.Hit.
package mesh
