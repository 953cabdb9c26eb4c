// Package triangle defines the input soup type shared by the BSP compiler
// and the indexed mesh builder: anticlockwise-wound, texture-mapped
// triangles plus the texture name table they index into. Nothing here
// builds a tree or a mesh; this package only validates the collaborator
// contract spec §6 places on callers.
package triangle
