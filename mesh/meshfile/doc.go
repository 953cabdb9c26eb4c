// Package meshfile is the indexed-mesh binary serializer (spec §4.7): the
// same common header bspfile uses (magic, version, texture names, shared
// vertex table, AABB), followed by a flat per-texture index array trailer
// instead of a node tree.
package meshfile
