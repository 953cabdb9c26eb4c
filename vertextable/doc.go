// Package vertextable implements the tolerance-based vertex folding shared
// by the BSP canonicalizer (spec §4.5) and the indexed mesh builder
// (spec §4.6): a growing table of (position, texcoord) records, indexed by
// 16-bit integer, where two input pairs fold to the same entry when they
// fall within ε_vert / ε_tex of each other on every axis.
//
// A Context is a compilation-scoped object (spec §5): create one per
// Build/Compile call and do not share it across concurrent calls.
package vertextable
