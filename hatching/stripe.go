package hatching

import (
	"math"

	"github.com/sprhawk/pyslm/geometry"
)

// StripeHatcher bounds individual scan-vector length by partitioning
// the bounding disk into parallel stripes (spec.md §4.3), each filled
// with a run of horizontal segments spanning only that stripe's width.
// Odd-indexed stripes are offset by StripeOffsetFraction*spacing in y
// so that adjacent stripes never form one continuous straight line
// across the stripe boundary.
type StripeHatcher struct {
	// StripeWidth is the nominal stripe width W.
	StripeWidth float64
	// StripeOverlap is the per-side overlap o between adjacent stripes.
	StripeOverlap float64
	// StripeOffsetFraction is f in [0,1): the fraction of spacing by
	// which odd stripes are shifted in y.
	StripeOffsetFraction float64
}

// Generate implements HatchStrategy. The rotation applied is R(-θ),
// the negated-angle convention spec.md §9 flags as diverging from the
// uniform hatcher's R(+θ) — preserved here rather than unified.
func (s StripeHatcher) Generate(boundary geometry.PolygonRegion, spacing, angleDeg float64) []geometry.TaggedSegment {
	center, r := boundingDisk(boundary)
	if r <= 0 || spacing <= 0 || s.StripeWidth <= 0 {
		return nil
	}
	angleRad := -angleDeg * math.Pi / 180
	o := s.StripeOverlap
	f := s.StripeOffsetFraction

	numStripes := int(math.Ceil(2*r/s.StripeWidth)) + 1

	var segs []geometry.TaggedSegment
	var tag int64
	for i := 0; i < numStripes; i++ {
		x0 := -r + float64(i)*s.StripeWidth - o
		x1 := -r + float64(i+1)*s.StripeWidth + o
		yOffset := 0.0
		if i%2 == 1 {
			yOffset = f * spacing
		}
		for y := -r + yOffset; y <= r; y += spacing {
			segs = append(segs, rotateTranslateSegment(x0, y, x1, y, angleRad, center, tag))
			tag++
		}
	}
	return segs
}
