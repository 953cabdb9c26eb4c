package geom

// Side classifies a point relative to a plane.
type Side int

const (
	// Below means the point's signed distance is < -PlaneThickness.
	Below Side = iota
	// On means the point's signed distance falls within the fat-plane
	// thickness of the plane.
	On
	// Above means the point's signed distance is > PlaneThickness.
	Above
)

func (s Side) String() string {
	switch s {
	case Below:
		return "Below"
	case On:
		return "On"
	case Above:
		return "Above"
	default:
		return "Side(?)"
	}
}

// ClassifyPoint classifies v against plane using the fat-plane thickness
// PlaneThickness: |d| <= PlaneThickness is On.
//
// Parameters:
//   - plane: the plane to classify against
//   - v: the point to classify
//
// Returns:
//   - Side: the point's classification relative to plane
func ClassifyPoint(plane Plane, v Vec3) Side {
	d := plane.SignedDistance(v)
	switch {
	case d > PlaneThickness:
		return Above
	case d < -PlaneThickness:
		return Below
	default:
		return On
	}
}

// TriSide classifies a triangle relative to a plane, derived from the
// classification of its three vertices.
type TriSide int

const (
	// Coincident means all three vertices classify On.
	Coincident TriSide = iota
	// InFront means every vertex classifies Above or On, with at least one Above.
	InFront
	// InBack means every vertex classifies Below or On, with at least one Below.
	InBack
	// Spanning means the triangle has vertices strictly on both sides.
	Spanning
)

func (t TriSide) String() string {
	switch t {
	case Coincident:
		return "Coincident"
	case InFront:
		return "InFront"
	case InBack:
		return "InBack"
	case Spanning:
		return "Spanning"
	default:
		return "TriSide(?)"
	}
}

// ClassifyTriangle classifies a triangle against plane from its three
// vertex classifications, per spec: all On -> Coincident; every vertex
// Above or On -> InFront; every vertex Below or On -> InBack; otherwise
// Spanning.
//
// Parameters:
//   - plane: the plane to classify against
//   - v0: the triangle's first vertex
//   - v1: the triangle's second vertex
//   - v2: the triangle's third vertex
//
// Returns:
//   - TriSide: the triangle's classification relative to plane
func ClassifyTriangle(plane Plane, v0, v1, v2 Vec3) TriSide {
	return ClassifyTriangleSides(ClassifyPoint(plane, v0), ClassifyPoint(plane, v1), ClassifyPoint(plane, v2))
}

// ClassifyTriangleSides derives the triangle classification from three
// already-computed vertex sides, avoiding recomputation when callers have
// classified vertices individually. ClassifyTriangle is built on it.
//
// Parameters:
//   - s0: the first vertex's side
//   - s1: the second vertex's side
//   - s2: the third vertex's side
//
// Returns:
//   - TriSide: the triangle's classification derived from s0, s1, s2
func ClassifyTriangleSides(s0, s1, s2 Side) TriSide {
	allOn := s0 == On && s1 == On && s2 == On
	if allOn {
		return Coincident
	}
	hasAbove := s0 == Above || s1 == Above || s2 == Above
	hasBelow := s0 == Below || s1 == Below || s2 == Below
	switch {
	case hasAbove && !hasBelow:
		return InFront
	case hasBelow && !hasAbove:
		return InBack
	default:
		return Spanning
	}
}
