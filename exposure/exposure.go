// Package exposure implements the exposure-point sampling utility
// described in spec.md §6: given a Layer and the Models/BuildStyles it
// references, it discretises every contour and hatch vector into a
// series of discrete laser exposure positions with the energy
// deposited at each.
//
// Grounded on pyslm.hatching.hatching.getExposurePoints
// (original_source); this is the one piece of the distilled
// specification's "external collaborator" list (§1) that the
// specification itself asks to be fully implemented (§6 "Exposed").
package exposure

import (
	"fmt"
	"math"

	"github.com/sprhawk/pyslm/geometry"
)

// Point is one sampled exposure position, optionally carrying the
// energy deposited by that exposure.
type Point struct {
	Position geometry.Point2
	// Energy is the energy deposited per exposure, in joules
	// (laserPower (W) * pointExposureTime (s)). Zero if energy was not
	// requested.
	Energy float64
}

// errMissingPointDistance reports a BuildStyle referenced by the layer
// whose PointDistance is unset (< 1 micrometre), naming the model and
// build style so the caller can locate the offending configuration.
func errMissingPointDistance(modelID, buildID int) error {
	return fmt.Errorf("exposure: point distance parameter in build style (model_id: %d, build_id: %d) must be set", modelID, buildID)
}

// Sample returns the exposure points for every geometry record in
// layer, sampled at each record's BuildStyle.PointDistance and
// optionally annotated with the energy deposited per exposure.
//
// Hatch vectors are sampled backward from their far endpoint (the
// second point of the pair) toward the first; contour edges are
// sampled forward from each vertex toward the next, matching
// getExposurePoints's point-stepping convention.
func Sample(layer geometry.Layer, models []geometry.Model, includeEnergy bool) ([]Point, error) {
	var out []Point

	for _, g := range layer.Geometry {
		switch rec := g.(type) {
		case geometry.HatchGeometry:
			model, ok := geometry.FindModel(models, rec.ModelID)
			if !ok {
				return nil, fmt.Errorf("exposure: no model found for model_id %d", rec.ModelID)
			}
			bs, ok := model.BuildStyle(rec.BuildID)
			if !ok {
				return nil, fmt.Errorf("exposure: no build style %d found for model_id %d", rec.BuildID, rec.ModelID)
			}
			if bs.PointDistance < 1 {
				return nil, errMissingPointDistance(rec.ModelID, rec.BuildID)
			}
			out = append(out, sampleHatch(rec, bs, includeEnergy)...)

		case geometry.ContourGeometry:
			model, ok := geometry.FindModel(models, rec.ModelID)
			if !ok {
				return nil, fmt.Errorf("exposure: no model found for model_id %d", rec.ModelID)
			}
			bs, ok := model.BuildStyle(rec.BuildID)
			if !ok {
				return nil, fmt.Errorf("exposure: no build style %d found for model_id %d", rec.BuildID, rec.ModelID)
			}
			if bs.PointDistance < 1 {
				return nil, errMissingPointDistance(rec.ModelID, rec.BuildID)
			}
			out = append(out, sampleContour(rec, bs, includeEnergy)...)
		}
	}
	return out, nil
}

func sampleHatch(rec geometry.HatchGeometry, bs geometry.BuildStyle, includeEnergy bool) []Point {
	pointDistance := bs.PointDistance * 1e-3 // um -> mm
	energy := bs.LaserPower * (bs.PointExposureTime * 1e-6)

	var out []Point
	for _, pair := range rec.Segments() {
		p0, p1 := pair[0], pair[1]
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// direction points from the far endpoint p1 back toward p0
		dirX, dirY := (p0.X-p1.X)/length, (p0.Y-p1.Y)/length
		numPoints := int(math.Ceil(length / pointDistance))
		for i := 0; i < numPoints; i++ {
			pt := geometry.Point2{
				X: p1.X + pointDistance*float64(i)*dirX,
				Y: p1.Y + pointDistance*float64(i)*dirY,
			}
			p := Point{Position: pt}
			if includeEnergy {
				p.Energy = energy
			}
			out = append(out, p)
		}
	}
	return out
}

func sampleContour(rec geometry.ContourGeometry, bs geometry.BuildStyle, includeEnergy bool) []Point {
	pointDistance := bs.PointDistance * 1e-3
	energy := bs.LaserPower * (bs.PointExposureTime * 1e-6)

	var out []Point
	coords := rec.Coords
	for i := 0; i+1 < len(coords); i++ {
		p0, p1 := coords[i], coords[i+1]
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		dirX, dirY := dx/length, dy/length
		numPoints := int(math.Ceil(length / pointDistance))
		for j := 0; j < numPoints; j++ {
			pt := geometry.Point2{
				X: p0.X + pointDistance*float64(j)*dirX,
				Y: p0.Y + pointDistance*float64(j)*dirY,
			}
			p := Point{Position: pt}
			if includeEnergy {
				p.Energy = energy
			}
			out = append(out, p)
		}
	}
	return out
}
