package hatching

import (
	"math"

	"github.com/sprhawk/pyslm/geometry"
)

// IslandHatcher partitions the bounding disk into a checkerboard grid
// of square islands (spec.md §4.4), alternating scan direction between
// adjacent cells so that residual stress direction is distributed
// rather than aligned across the whole region.
type IslandHatcher struct {
	// IslandWidth is the island side length W.
	IslandWidth float64
	// IslandOverlap is the per-side overlap o between adjacent islands.
	IslandOverlap float64
	// IslandOffsetFraction is f in [0,1): the fractional offset applied
	// to cells where (i+j) is odd.
	IslandOffsetFraction float64
}

// Generate implements HatchStrategy. Rotation R(+θ) is applied to the
// whole grid after generation, matching the uniform hatcher's sign
// convention (islands are not named in spec.md §9's sign-convention
// open question, so they follow the uniform/default convention).
func (is IslandHatcher) Generate(boundary geometry.PolygonRegion, spacing, angleDeg float64) []geometry.TaggedSegment {
	center, r := boundingDisk(boundary)
	if r <= 0 || spacing <= 0 || is.IslandWidth <= 0 {
		return nil
	}
	angleRad := angleDeg * math.Pi / 180
	o := is.IslandOverlap
	f := is.IslandOffsetFraction

	numCells := int(math.Ceil(2*r/is.IslandWidth)) + 1

	var segs []geometry.TaggedSegment
	var tag int64
	for i := 0; i < numCells; i++ {
		startX := -r + float64(i)*is.IslandWidth - o
		endX := -r + float64(i+1)*is.IslandWidth + o
		for j := 0; j < numCells; j++ {
			startY := -r + float64(j)*is.IslandWidth - o
			endY := -r + float64(j+1)*is.IslandWidth + o

			offset := 0.0
			if (i+j)%2 == 1 {
				offset = f * spacing
			}

			if (i+j)%2 == 1 {
				for y := startY + offset; y <= endY; y += spacing {
					segs = append(segs, rotateTranslateSegment(startX, y, endX, y, angleRad, center, tag))
					tag++
				}
			} else {
				for x := startX + offset; x <= endX; x += spacing {
					segs = append(segs, rotateTranslateSegment(x, startY, x, endY, angleRad, center, tag))
					tag++
				}
			}
		}
	}
	return segs
}
