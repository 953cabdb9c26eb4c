package vertextable

import (
	"fmt"
	"math"
	"sync"

	"github.com/oxybsp/oxybsp/geom"
)

// VertexEpsilon (ε_vert) is the per-axis positional tolerance for folding
// two vertices into the same table entry.
const VertexEpsilon = 0.0011276372445

// TexCoordEpsilon (ε_tex) is the per-axis texture-coordinate tolerance for
// folding two (vertex, texcoord) pairs into the same table entry.
const TexCoordEpsilon = 1.0 / 256.0

// MaxVertices is the table size cap — the serialized nVertices field and
// every triangle vertex index are u16 (spec §3, §9).
const MaxVertices = 65535

// Entry is one shared-table record: a canonical position and the texture
// coordinate folded alongside it.
type Entry struct {
	Pos [3]float32
	Tex [2]float32
}

// cellKey quantizes a 5-dimensional (position, texcoord) point into a grid
// cell sized to (VertexEpsilon, TexCoordEpsilon). Design note (spec §9)
// flags the original's 200-entry block-chain linear scan as
// cache-unfriendly; two points within tolerance on every axis can only ever
// land in the same cell or an adjacent one, so checking a point's cell plus
// its 3^5-1 neighbors is equivalent to the full linear scan but visits a
// small, bounded candidate set instead of every prior entry.
type cellKey [5]int32

func quantize(v float64, eps float64) int32 {
	return int32(math.Floor(v / eps))
}

func cellOf(pos [3]float32, tex [2]float32) cellKey {
	return cellKey{
		quantize(float64(pos[0]), VertexEpsilon),
		quantize(float64(pos[1]), VertexEpsilon),
		quantize(float64(pos[2]), VertexEpsilon),
		quantize(float64(tex[0]), TexCoordEpsilon),
		quantize(float64(tex[1]), TexCoordEpsilon),
	}
}

// Context is a compilation-scoped shared vertex table plus its running
// AABB accumulator (spec §5). Construct one per Build/Compile call; do not
// share a Context across concurrent compilations.
type Context struct {
	mu      sync.Mutex
	entries []Entry
	cells   map[cellKey][]int32
	aabb    geom.AABB
}

// NewContext returns an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		cells: make(map[cellKey][]int32),
		aabb:  geom.EmptyAABB(),
	}
}

// Len returns the number of entries currently in the table.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of the table's entries in insertion order, ready
// for serialization.
func (c *Context) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// AABB returns the running bounding box over every canonicalized vertex
// interned so far.
func (c *Context) AABB() geom.AABB {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aabb
}

func withinTolerance(a, b Entry) bool {
	for i := 0; i < 3; i++ {
		if abs32(a.Pos[i]-b.Pos[i]) > VertexEpsilon {
			return false
		}
	}
	for i := 0; i < 2; i++ {
		if abs32(a.Tex[i]-b.Tex[i]) > TexCoordEpsilon {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Intern folds (pos, tex) into the shared table: it scans the candidate's
// cell and its neighbors for the first entry within tolerance on every
// axis (spec §4.5 step 1-2) and reuses it, or appends a new entry (step 3).
// The returned canonicalPos is the table's entry position — callers must
// rewrite the triangle's own vertex to this value to keep later triangles
// in the same node coherent (spec §4.5 step 2).
//
// Parameters:
//   - pos: the candidate vertex's position
//   - tex: the candidate vertex's texture coordinate
//
// Returns:
//   - uint16: the interned entry's index in the shared table
//   - [3]float32: the canonical position to rewrite the caller's vertex to
//   - error: the table already holds MaxVertices entries and pos/tex didn't match any of them
func (c *Context) Intern(pos [3]float32, tex [2]float32) (idx uint16, canonicalPos [3]float32, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidate := Entry{Pos: pos, Tex: tex}
	center := cellOf(pos, tex)
	var key cellKey
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				for du := int32(-1); du <= 1; du++ {
					for dv := int32(-1); dv <= 1; dv++ {
						key = cellKey{center[0] + dx, center[1] + dy, center[2] + dz, center[3] + du, center[4] + dv}
						for _, existing := range c.cells[key] {
							e := c.entries[existing]
							if withinTolerance(candidate, e) {
								return uint16(existing), e.Pos, nil
							}
						}
					}
				}
			}
		}
	}

	if len(c.entries) >= MaxVertices {
		return 0, [3]float32{}, fmt.Errorf("vertextable: cannot intern vertex %d: table is capped at %d entries", len(c.entries), MaxVertices)
	}

	newIdx := int32(len(c.entries))
	c.entries = append(c.entries, candidate)
	c.cells[center] = append(c.cells[center], newIdx)
	c.aabb.Extend(pos)
	return uint16(newIdx), pos, nil
}
