package hatching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sprhawk/pyslm/geometry"
)

func TestHatcherContourOffsetChain(t *testing.T) {
	h := Hatcher{
		NumOuterContours: 2,
		NumInnerContours: 1,
		SpotCompensation: 0.08,
		ContourOffset:    0.1,
		HatchingEnabled:  false,
	}
	layer := h.Hatch(unitSquare(), 0)
	contours := layer.Contours()
	assert.Len(t, contours, 3)
	assert.Equal(t, geometry.ContourOuter, contours[0].Kind)
	assert.Equal(t, geometry.ContourOuter, contours[1].Kind)
	assert.Equal(t, geometry.ContourInner, contours[2].Kind)
}

func TestHatcherEmptyBoundaryYieldsEmptyLayer(t *testing.T) {
	h := Hatcher{HatchingEnabled: true, HatchDistance: 1.0}
	layer := h.Hatch(nil, 0)
	assert.Empty(t, layer.Geometry)
}

func TestHatcherUnitSquareUniformHatch(t *testing.T) {
	h := Hatcher{
		HatchDistance:   1.0,
		HatchAngle:      0,
		HatchingEnabled: true,
	}
	layer := h.Hatch(unitSquare(), 0)
	hatches := layer.Hatches()
	assert.Len(t, hatches, 1)
	assert.Equal(t, 0, len(hatches[0].Coords)%2)
	assert.NotEmpty(t, hatches[0].Coords)
}

func TestHatcherScanOrderPlacement(t *testing.T) {
	h1 := Hatcher{HatchDistance: 1.0, HatchingEnabled: true, ScanContourFirst: true, NumOuterContours: 1, SpotCompensation: 0}
	l1 := h1.Hatch(unitSquare(), 0)
	if assert.True(t, len(l1.Geometry) >= 2) {
		_, firstIsContour := l1.Geometry[0].(geometry.ContourGeometry)
		assert.True(t, firstIsContour)
	}

	h2 := h1
	h2.ScanContourFirst = false
	l2 := h2.Hatch(unitSquare(), 0)
	if assert.True(t, len(l2.Geometry) >= 2) {
		_, firstIsHatch := l2.Geometry[0].(geometry.HatchGeometry)
		assert.True(t, firstIsHatch)
	}
}

func TestHatcherAnnulusDoubleSegmentsAcrossHole(t *testing.T) {
	annulus := geometry.PolygonRegion{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
		{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}, {X: 4, Y: 4}},
	}
	h := Hatcher{HatchDistance: 0.5, HatchAngle: 0, HatchingEnabled: true}
	layer := h.Hatch(annulus, 0)
	hatches := layer.Hatches()
	if assert.Len(t, hatches, 1) {
		assert.True(t, len(hatches[0].Coords)/2 > int(10/0.5))
	}
}
