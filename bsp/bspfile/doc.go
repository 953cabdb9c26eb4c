// Package bspfile is the BSP binary serializer (spec §4.7): the common
// header (magic "BSP\0", version, texture names, shared vertex table,
// AABB) followed by a preorder node stream with a compact child-presence
// flag and the plane omitted whenever a node carries coplanar triangles.
package bspfile
