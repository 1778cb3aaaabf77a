package hatching

import (
	"math"

	"github.com/sprhawk/pyslm/geometry"
)

// InnerRegion is a rotated/translated sub-region that can own its own
// hatch generator and a clip-locally flag, used by island-like recipes
// that want per-cell clipping instead of whole-region clipping
// (spec.md §4.6).
type InnerRegion struct {
	// Origin is the sub-region's local-frame origin in the parent
	// (unrotated) coordinate system.
	Origin geometry.Point2
	// Orientation is the sub-region's rotation, in radians.
	Orientation float64
	// Boundary is the sub-region's own closed-polygon boundary.
	Boundary geometry.PolygonRegion
	// RequiresClipping reports whether this sub-region's hatches still
	// need clipping against Boundary after generation (a region fully
	// inside its island cell may not).
	RequiresClipping bool
	// IsIntersecting reports whether Boundary intersects the sub-region
	// cell boundary (as opposed to lying fully inside or outside it).
	IsIntersecting bool
}

// Transform2D maps a point from the sub-region's local frame into the
// parent frame: rotate by Orientation, then translate by Origin.
func (r InnerRegion) Transform2D(p geometry.Point2) geometry.Point2 {
	x, y := rotate2D(p.X, p.Y, r.Orientation)
	return geometry.Point2{X: x + r.Origin.X, Y: y + r.Origin.Y}
}

// TransformSegments applies Transform2D to every segment endpoint,
// leaving each segment's order tag unchanged.
func (r InnerRegion) TransformSegments(segs []geometry.TaggedSegment) []geometry.TaggedSegment {
	out := make([]geometry.TaggedSegment, len(segs))
	for i, s := range segs {
		out[i] = geometry.TaggedSegment{P0: r.Transform2D(s.P0), P1: r.Transform2D(s.P1), Tag: s.Tag}
	}
	return out
}

// TransformMatrix3 returns the 3x3 homogeneous affine transform built
// from (Origin, Orientation): a 2D rotation-translation with an
// identity row/column appended so a caller that batch-applies
// transforms via matrix multiplication against (x, y, tag) vectors
// carries the tag through unchanged.
func (r InnerRegion) TransformMatrix3() [3][3]float64 {
	s, c := math.Sincos(r.Orientation)
	return [3][3]float64{
		{c, -s, r.Origin.X},
		{s, c, r.Origin.Y},
		{0, 0, 1},
	}
}

// ApplyMatrix3WithTag applies m to (p.X, p.Y, tag) as a homogeneous
// vector and returns the transformed point with tag passed through
// unchanged by the identity row/column of m.
func ApplyMatrix3WithTag(m [3][3]float64, p geometry.Point2, tag int64) (geometry.Point2, int64) {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]
	return geometry.Point2{X: x, Y: y}, tag
}
