// Package common holds small generic helpers shared across oxybsp's
// packages that don't belong to any one subsystem: the Coalesce generic
// and the little-endian binary read/write primitives bsp/bspfile and
// mesh/meshfile both build their headers from (spec §4.7).
package common
