package hatching

import (
	"math"

	"github.com/sprhawk/pyslm/geometry"
)

// HatchStrategy generates an unclipped, ordered grid of parallel
// TaggedSegments covering the bounding disk of boundary, rotated by
// angleDeg. Implementations never clip against boundary themselves —
// that is the clip engine's job — they only use boundary to compute
// the disk they must cover.
type HatchStrategy interface {
	Generate(boundary geometry.PolygonRegion, spacing, angleDeg float64) []geometry.TaggedSegment
}

// boundingDisk returns the centre and radius of the smallest disk
// containing region's axis-aligned bounding box, per spec.md §4.2
// step 1: the radius is the distance from the bbox centre to its
// farthest corner.
func boundingDisk(region geometry.PolygonRegion) (center geometry.Point2, radius float64) {
	first := true
	var minX, minY, maxX, maxY float64
	for _, ring := range region {
		for _, p := range ring {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if first {
		return geometry.Point2{}, 0
	}
	center = geometry.Point2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	dx := maxX - center.X
	dy := maxY - center.Y
	radius = math.Hypot(dx, dy)
	return center, radius
}

// rotate2D rotates (x, y) by angleRad around the origin.
func rotate2D(x, y, angleRad float64) (rx, ry float64) {
	s, c := math.Sincos(angleRad)
	return x*c - y*s, x*s + y*c
}

// UniformHatcher is the base hatch generator: a family of horizontal
// lines in a local frame, spanning the full disk, rotated by the
// hatch angle and translated to the disk centre (spec.md §4.2). Angle
// 0 produces horizontal lines — the axis convention resolved against
// the worked example in the distilled specification's §8 rather than
// the original source's vertical-line convention for angle 0.
type UniformHatcher struct{}

// Generate implements HatchStrategy.
func (UniformHatcher) Generate(boundary geometry.PolygonRegion, spacing, angleDeg float64) []geometry.TaggedSegment {
	return generateUniformLocal(boundary, spacing, angleDeg, +1)
}

// generateUniformLocal is shared by UniformHatcher (sign=+1, R(+θ))
// and StripeHatcher's per-stripe fill (sign=-1, R(-θ), per the
// preserved open question in spec.md §9 on the stripe generator's
// negated rotation convention).
func generateUniformLocal(boundary geometry.PolygonRegion, spacing, angleDeg float64, sign float64) []geometry.TaggedSegment {
	center, r := boundingDisk(boundary)
	if r <= 0 || spacing <= 0 {
		return nil
	}
	angleRad := sign * angleDeg * math.Pi / 180

	var segs []geometry.TaggedSegment
	var tag int64
	if spacing >= 2*r {
		segs = append(segs, rotateTranslateSegment(-r, 0, r, 0, angleRad, center, tag))
		return segs
	}
	for y := -r; y <= r; y += spacing {
		segs = append(segs, rotateTranslateSegment(-r, y, r, y, angleRad, center, tag))
		tag++
	}
	return segs
}

func rotateTranslateSegment(x0, y0, x1, y1, angleRad float64, center geometry.Point2, tag int64) geometry.TaggedSegment {
	rx0, ry0 := rotate2D(x0, y0, angleRad)
	rx1, ry1 := rotate2D(x1, y1, angleRad)
	return geometry.TaggedSegment{
		P0:  geometry.Point2{X: rx0 + center.X, Y: ry0 + center.Y},
		P1:  geometry.Point2{X: rx1 + center.X, Y: ry1 + center.Y},
		Tag: tag,
	}
}
