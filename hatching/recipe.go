package hatching

import (
	"math"
	"sort"

	"github.com/sprhawk/pyslm/geometry"
)

// Hatcher composes the offset chain, hatch/stripe/island generation,
// clipping, ordering and optional sort strategy into a single layer of
// geometry (spec.md §4.5). A Hatcher is configured once and its Hatch
// method is a pure function of (boundary, layer index); it owns no
// state between calls beyond its immutable configuration.
type Hatcher struct {
	// NumOuterContours and NumInnerContours are the number of outer and
	// inner contour rings to trace before hatching the interior.
	NumOuterContours int
	NumInnerContours int

	// SpotCompensation is the initial inward offset compensating for
	// the laser spot radius.
	SpotCompensation float64
	// ContourOffset is the spacing between successive contour rings.
	ContourOffset float64
	// VolOffsetHatch is the additional inward offset between the last
	// contour and the hatched interior.
	VolOffsetHatch float64

	// HatchDistance is the nominal spacing h between hatch lines.
	HatchDistance float64
	// HatchAngle is the base hatch angle θ0, in degrees.
	HatchAngle float64
	// LayerAngleIncrement Δθ rotates the hatch angle per layer index.
	LayerAngleIncrement float64

	// ScanContourFirst selects {contours, then hatches} ordering in the
	// assembled Layer when true, {hatches, then contours} when false.
	ScanContourFirst bool
	// HatchingEnabled turns hatch generation off entirely when false;
	// only contours are produced.
	HatchingEnabled bool

	// Strategy generates the unclipped hatch grid. Defaults to
	// UniformHatcher{} if nil.
	Strategy HatchStrategy
	// SortStrategy re-orders the flattened hatch points after
	// clip-and-tag-sort, if set. Leaving it nil is equivalent to
	// IdentitySort.
	SortStrategy SortStrategy

	// Engine performs offsetting and clipping. Defaults to a freshly
	// constructed NewClipEngine() if nil — per the resource model's
	// recommendation to construct one engine instance per hatch call
	// rather than share one across concurrent layers.
	Engine *ClipEngine

	// ModelID and BuildID are stamped onto every emitted geometry
	// record, identifying the BuildStyle the exposure utility should
	// use downstream.
	ModelID int
	BuildID int
}

func (h Hatcher) engine() *ClipEngine {
	if h.Engine != nil {
		return h.Engine
	}
	return NewClipEngine()
}

func (h Hatcher) strategy() HatchStrategy {
	if h.Strategy != nil {
		return h.Strategy
	}
	return UniformHatcher{}
}

// effectiveAngle canonicalises the hatch angle for layerIndex into
// (−90, 90] per spec.md §4.5 step 5a / §8 invariant 6.
func (h Hatcher) effectiveAngle(layerIndex int) float64 {
	theta := math.Mod(h.HatchAngle+h.LayerAngleIncrement*float64(layerIndex), 180)
	if theta < 0 {
		theta += 180
	}
	if theta > 90 {
		theta -= 180
	}
	return theta
}

// Hatch runs one slice's boundary through the recipe and returns the
// resulting Layer. An empty boundary yields an empty Layer; offsets
// that eliminate the region, or clips that yield no intersection, are
// silent per spec.md §7 — never an error.
func (h Hatcher) Hatch(boundary geometry.PolygonRegion, layerIndex int) geometry.Layer {
	if len(boundary) == 0 {
		return geometry.Layer{LayerIndex: layerIndex}
	}

	engine := h.engine()
	d := -h.SpotCompensation - 1e-6

	var contours []geometry.ContourGeometry
	var hatches []geometry.HatchGeometry

	for i := 0; i < h.NumOuterContours; i++ {
		if i > 0 {
			d -= h.ContourOffset
		}
		rings, err := engine.Offset(boundary, d)
		if err != nil {
			continue
		}
		for _, ring := range rings {
			contours = append(contours, geometry.ContourGeometry{
				Coords: ring, Kind: geometry.ContourOuter, ModelID: h.ModelID, BuildID: h.BuildID,
			})
		}
	}

	for i := 0; i < h.NumInnerContours; i++ {
		// Preserved verbatim from the source's ambiguous branch
		// (spec.md §9, second open question): the first inner
		// contour only skips the extra offset when there were no
		// outer contours at all.
		if (h.NumOuterContours == 0 && i > 0) || h.NumOuterContours > 0 {
			d -= h.ContourOffset
		}
		rings, err := engine.Offset(boundary, d)
		if err != nil {
			continue
		}
		for _, ring := range rings {
			contours = append(contours, geometry.ContourGeometry{
				Coords: ring, Kind: geometry.ContourInner, ModelID: h.ModelID, BuildID: h.BuildID,
			})
		}
	}

	var interior geometry.PolygonRegion
	if len(contours) > 0 {
		d -= h.VolOffsetHatch
	}
	rings, err := engine.Offset(boundary, d)
	if err == nil {
		interior = geometry.PolygonRegion(rings)
	}

	if h.HatchingEnabled && len(interior) > 0 {
		theta := h.effectiveAngle(layerIndex)
		segments := h.strategy().Generate(interior, h.HatchDistance, theta)
		clipped := engine.ClipLines(interior, segments)

		sort.SliceStable(clipped, func(i, j int) bool { return clipped[i].Tag < clipped[j].Tag })

		if len(clipped) > 0 {
			points := make([]geometry.Point2, 0, 2*len(clipped))
			for _, c := range clipped {
				points = append(points, c.P0, c.P1)
			}
			if h.SortStrategy != nil {
				points = h.SortStrategy.Sort(points)
			}
			hatches = append(hatches, geometry.HatchGeometry{Coords: points, ModelID: h.ModelID, BuildID: h.BuildID})
		}
	}

	layer := geometry.Layer{LayerIndex: layerIndex}
	if h.ScanContourFirst {
		for _, c := range contours {
			layer.Geometry = append(layer.Geometry, c)
		}
		for _, hg := range hatches {
			layer.Geometry = append(layer.Geometry, hg)
		}
	} else {
		for _, hg := range hatches {
			layer.Geometry = append(layer.Geometry, hg)
		}
		for _, c := range contours {
			layer.Geometry = append(layer.Geometry, c)
		}
	}
	return layer
}
