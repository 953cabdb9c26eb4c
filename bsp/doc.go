// Package bsp compiles a triangle soup into a Binary Space Partitioning
// tree: root selection, spanning-triangle splitting, recursive
// front/back partitioning, and the post-pass that canonicalizes each
// node's triangles through a shared vertex table (spec §4.2-§4.5).
package bsp
