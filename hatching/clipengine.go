// Package hatching implements the hatch generation core: contour
// offsetting, parallel-hatch infill generation (uniform, stripe, and
// island variants), order-tag-preserving clipping, and the recipe that
// composes them into a Layer.
package hatching

import (
	"math"

	"github.com/sprhawk/pyslm/clipper"
	"github.com/sprhawk/pyslm/geometry"
)

// ClipEngine is a thin adapter over the fixed-precision polygon clip
// library: it converts geometry.Point2 coordinates to clipper.Point64
// at a configurable integer scale and back, and exposes exactly the
// two operations the hatching core needs (offset, clip_lines).
//
// Scale is a field on the instance rather than a process-wide
// constant, so a batch driver can run independent recipe instances,
// each with its own engine, safely in parallel.
type ClipEngine struct {
	// Scale is the fixed-point scale factor S; numeric tolerance is
	// 1/Scale in input units (millimetres). Default 1e5.
	Scale float64
	// MiterLimit bounds the miter join length during offsetting.
	MiterLimit float64
	// ArcTolerance bounds the deviation from a true arc on round
	// joins, in millimetres.
	ArcTolerance float64
}

// NewClipEngine returns a ClipEngine with the defaults from the design
// notes: scale 1e5, miter limit 2.0, arc tolerance 0.01mm.
func NewClipEngine() *ClipEngine {
	return &ClipEngine{Scale: 1e5, MiterLimit: 2.0, ArcTolerance: 0.01}
}

func (e *ClipEngine) scale() float64 {
	if e.Scale == 0 {
		return 1e5
	}
	return e.Scale
}

func (e *ClipEngine) toPoint64(p geometry.Point2) clipper.Point64 {
	s := e.scale()
	return clipper.Point64{
		X: int64(math.Round(p.X * s)),
		Y: int64(math.Round(p.Y * s)),
	}
}

func (e *ClipEngine) fromPoint64(p clipper.Point64) geometry.Point2 {
	s := e.scale()
	return geometry.Point2{X: float64(p.X) / s, Y: float64(p.Y) / s}
}

func (e *ClipEngine) toPath64(p geometry.Polyline) clipper.Path64 {
	path := make(clipper.Path64, len(p))
	for i, pt := range p {
		path[i] = e.toPoint64(pt)
	}
	return path
}

func (e *ClipEngine) fromPath64(p clipper.Path64) geometry.Polyline {
	out := make(geometry.Polyline, len(p))
	for i, pt := range p {
		out[i] = e.fromPoint64(pt)
	}
	return out
}

func (e *ClipEngine) toPaths64(r geometry.PolygonRegion) clipper.Paths64 {
	paths := make(clipper.Paths64, len(r))
	for i, ring := range r {
		paths[i] = e.toPath64(ring)
	}
	return paths
}

// closeRing appends the ring's first point as its last if it is not
// already closed, matching geometry.Polyline's convention.
func closeRing(p geometry.Polyline) geometry.Polyline {
	if len(p) == 0 {
		return p
	}
	if p[0] == p[len(p)-1] {
		return p
	}
	out := make(geometry.Polyline, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

// Offset offsets every ring of region by the signed distance delta
// (positive is outward on the outer ring) using a rounded join, per
// spec.md §4.1. A ring that vanishes under the offset is silently
// omitted from the result, never an error.
func (e *ClipEngine) Offset(region geometry.PolygonRegion, delta float64) ([]geometry.Polyline, error) {
	if len(region) == 0 {
		return nil, nil
	}
	s := e.scale()
	paths := e.toPaths64(region)
	opts := clipper.OffsetOptions{MiterLimit: e.MiterLimit, ArcTolerance: e.ArcTolerance * s}
	solution, err := clipper.InflatePaths64(paths, delta*s, clipper.JoinRound, clipper.EndPolygon, opts)
	if err != nil {
		return nil, err
	}
	out := make([]geometry.Polyline, 0, len(solution))
	for _, path := range solution {
		if len(path) < 3 {
			continue
		}
		out = append(out, closeRing(e.fromPath64(path)))
	}
	return out, nil
}

// ClippedSegment is a single clipped, tagged open path: the surviving
// portion of one subject TaggedSegment after intersection with a
// boundary, still carrying the tag of its source endpoint.
type ClippedSegment struct {
	P0, P1 geometry.Point2
	Tag    int64
}

// ClipLines intersects each tagged segment against boundary,
// individually, and returns the surviving portions with their source
// tag preserved on both endpoints.
//
// The underlying clip library's boolean-op entry point does not
// thread its open-subject-path argument through to a result (it only
// evaluates closed subject/clip paths), so clipping one segment at a
// time through it would silently yield nothing for every call. This
// uses clipper.ClipOpenPathToPolygon64 instead, which is built for
// exactly this polygon-vs-open-path case. Per the strategy sanctioned
// by spec.md §9, each TaggedSegment is still clipped individually and
// every resulting run is tagged with that segment's own tag — slower
// than a batched per-vertex-tag clip, but exactly equivalent.
func (e *ClipEngine) ClipLines(boundary geometry.PolygonRegion, segments []geometry.TaggedSegment) []ClippedSegment {
	if len(boundary) == 0 || len(segments) == 0 {
		return nil
	}
	clipPaths := e.toPaths64(boundary)

	var out []ClippedSegment
	for _, seg := range segments {
		subject := clipper.Path64{e.toPoint64(seg.P0), e.toPoint64(seg.P1)}
		for _, path := range clipper.ClipOpenPathToPolygon64(subject, clipPaths, clipper.NonZero) {
			for i := 0; i+1 < len(path); i++ {
				out = append(out, ClippedSegment{
					P0:  e.fromPoint64(path[i]),
					P1:  e.fromPoint64(path[i+1]),
					Tag: seg.Tag,
				})
			}
		}
	}
	return out
}
