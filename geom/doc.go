// Package geom is the geometry kernel: plane construction from a triangle,
// point/triangle classification against a plane, segment/plane intersection,
// and axis-aligned bounding box accumulation. Everything here is a pure
// function over double-precision coordinates; nothing in this package
// allocates a tree or owns a triangle soup.
package geom
