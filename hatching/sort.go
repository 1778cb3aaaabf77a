package hatching

import (
	"sort"

	"github.com/sprhawk/pyslm/geometry"
)

// SortStrategy re-orders a flat, even-length array of (start, end)
// point pairs after clipping (spec.md §4.5 step f / §9).
type SortStrategy interface {
	Sort(points []geometry.Point2) []geometry.Point2
}

// IdentitySort returns its input unchanged.
type IdentitySort struct{}

// Sort implements SortStrategy.
func (IdentitySort) Sort(points []geometry.Point2) []geometry.Point2 {
	return points
}

// AlternateSort reverses every other hatch vector's two endpoints, so
// that vector i runs start->end and vector i+1 runs end->start: a
// serpentine scan that lets the laser finish one vector where the
// next one begins, shortening jump travel between vectors.
type AlternateSort struct{}

// Sort implements SortStrategy. points must have even length (pairs).
func (AlternateSort) Sort(points []geometry.Point2) []geometry.Point2 {
	if len(points)%2 != 0 {
		return points
	}
	out := make([]geometry.Point2, len(points))
	copy(out, points)
	for i := 0; i+1 < len(out); i += 2 {
		vectorIndex := i / 2
		if vectorIndex%2 == 1 {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	return out
}

// SortAxis selects the coordinate LinearSort orders hatch vectors by.
type SortAxis uint8

const (
	// SortAxisX orders by midpoint X, breaking ties by Y.
	SortAxisX SortAxis = iota
	// SortAxisY orders by midpoint Y, breaking ties by X.
	SortAxisY
)

// LinearSort re-orders whole hatch vectors (point pairs) by the
// position of their midpoint along Axis, for callers that want a
// position-based scan order instead of generation order.
type LinearSort struct {
	Axis SortAxis
}

// Sort implements SortStrategy. points must have even length (pairs).
func (s LinearSort) Sort(points []geometry.Point2) []geometry.Point2 {
	if len(points)%2 != 0 {
		return points
	}
	n := len(points) / 2
	type vector struct {
		p0, p1 geometry.Point2
		midX   float64
		midY   float64
	}
	vectors := make([]vector, n)
	for i := 0; i < n; i++ {
		p0, p1 := points[2*i], points[2*i+1]
		vectors[i] = vector{p0: p0, p1: p1, midX: (p0.X + p1.X) / 2, midY: (p0.Y + p1.Y) / 2}
	}
	sort.SliceStable(vectors, func(i, j int) bool {
		a, b := vectors[i], vectors[j]
		if s.Axis == SortAxisY {
			if a.midY != b.midY {
				return a.midY < b.midY
			}
			return a.midX < b.midX
		}
		if a.midX != b.midX {
			return a.midX < b.midX
		}
		return a.midY < b.midY
	})
	out := make([]geometry.Point2, 0, len(points))
	for _, v := range vectors {
		out = append(out, v.p0, v.p1)
	}
	return out
}
