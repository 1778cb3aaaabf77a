package clipper

import "sort"

// This file implements general open-path (line) versus polygon-region
// clipping, supporting arbitrary (non-convex, multi-ring) boundaries —
// the rectangle-only Cohen-Sutherland clipper in
// rectangle_clipping_lines.go cannot handle a polygon boundary with
// holes, which the hatch generation core needs to intersect its hatch
// vectors against an offset polygon interior.
//
// Reference: the approach generalises clipper.rectclip.cpp's line
// clipping to an arbitrary polygon by walking each subject edge's
// intersections with every boundary edge and classifying the
// resulting sub-intervals with the existing winding-number primitives
// in geometry.go.

// ClipOpenPathToPolygon64 returns the portions of the open path that
// lie strictly inside boundary (a polygon region: an outer ring
// followed by zero or more hole rings, as used throughout this
// package), evaluated under fillRule. Each maximal inside run of the
// path becomes one output open path.
func ClipOpenPathToPolygon64(path Path64, boundary Paths64, fillRule FillRule) Paths64 {
	if len(path) < 2 || len(boundary) == 0 {
		return nil
	}

	insideAt := func(p Point64) bool {
		wn := 0
		for _, ring := range boundary {
			wn += WindingNumber(p, ring)
		}
		switch fillRule {
		case EvenOdd:
			return wn%2 != 0
		case Positive:
			return wn > 0
		case Negative:
			return wn < 0
		default: // NonZero
			return wn != 0
		}
	}

	var result Paths64
	var run Path64

	flush := func() {
		if len(run) >= 2 {
			dup := make(Path64, len(run))
			copy(dup, run)
			result = append(result, dup)
		}
		run = nil
	}

	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		ts := edgeBreakpoints(a, b, boundary)

		prevT := 0.0
		prevPt := a
		if len(run) == 0 && insideAt(a) {
			run = append(run, a)
		}
		for _, t := range ts {
			pt := lerpPoint64(a, b, t)
			mid := lerpPoint64(a, b, (prevT+t)/2)
			if insideAt(mid) {
				if len(run) == 0 {
					run = append(run, prevPt)
				}
				run = append(run, pt)
			} else {
				flush()
			}
			prevT = t
			prevPt = pt
		}
		midLast := lerpPoint64(a, b, (prevT+1)/2)
		if insideAt(midLast) {
			if len(run) == 0 {
				run = append(run, prevPt)
			}
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()
	return result
}

// edgeBreakpoints returns the sorted, strictly-interior parametric
// positions (0, 1) at which segment a-b crosses any edge of boundary.
func edgeBreakpoints(a, b Point64, boundary Paths64) []float64 {
	var ts []float64
	for _, ring := range boundary {
		n := len(ring)
		if n < 2 {
			continue
		}
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			t, ok := segmentParamIntersection(a, b, ring[j], ring[k])
			if ok && t > 1e-9 && t < 1-1e-9 {
				ts = append(ts, t)
			}
		}
	}
	sort.Float64s(ts)
	return ts
}

// segmentParamIntersection returns the parametric position t along
// a-b (0 at a, 1 at b) where it crosses c-d, if any.
func segmentParamIntersection(a, b, c, d Point64) (float64, bool) {
	pt, kind, err := SegmentIntersection(a, b, c, d)
	if err != nil || kind == NoIntersection {
		return 0, false
	}
	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	if abx == 0 && aby == 0 {
		return 0, false
	}
	// Project the intersection point onto a-b to recover t, using
	// whichever axis has the larger range for numerical stability.
	if abx*abx >= aby*aby {
		return float64(pt.X-a.X) / abx, true
	}
	return float64(pt.Y-a.Y) / aby, true
}

func lerpPoint64(a, b Point64, t float64) Point64 {
	return Point64{
		X: a.X + int64(float64(b.X-a.X)*t),
		Y: a.Y + int64(float64(b.Y-a.Y)*t),
	}
}
