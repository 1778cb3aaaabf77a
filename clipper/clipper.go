// Package clipper provides a pure Go implementation of the polygon
// offsetting and open-path clipping operations the hatch generation core
// drives. This is a trimmed port of the Clipper2 library
// (https://github.com/AngusJohnson/Clipper2): only the boolean-union
// cleanup step, polygon offsetting, and open-path-against-polygon
// clipping that the hatching package actually calls are kept.
//
// # Error Handling
//
// All functions that can fail return an error as their last return value.
// Common errors include:
//   - ErrInvalidFillRule: Fill rule out of valid range (0-3)
//   - ErrInvalidClipType: Clip type out of valid range (0-3)
//   - ErrInvalidOptions: Invalid option values (miterLimit <= 0, etc.)
//   - ErrInvalidJoinType: Join type out of valid range (0-3)
//   - ErrInvalidEndType: End type out of valid range (0-4)
//
// # Input Validation
//
// Functions automatically filter degenerate paths (< 3 points for closed
// polygons, < 2 for open paths). Invalid enum values are detected and
// return appropriate errors. Empty or nil paths are handled gracefully.
//
// # Coordinate System
//
// All coordinates use 64-bit integers (int64) to avoid floating-point
// precision issues. Positive Y is typically down (screen coordinates),
// but the library works with any consistent orientation.
package clipper

// Union64 returns the union of subject and clip polygons.
// Combines both sets of polygons into a single result where overlapping areas are merged.
//
// Possible errors: ErrInvalidFillRule
func Union64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	result, _, err := BooleanOp64(Union, fillRule, subjects, nil, clips)
	return result, err
}

// BooleanOp64 performs the specified boolean operation on the input polygons.
//
// Parameters:
//   - clipType: The boolean operation to perform (Intersection, Union, Difference, Xor)
//   - fillRule: How to determine polygon interiors (EvenOdd, NonZero, Positive, Negative)
//   - subjects: Subject paths for the operation (closed polygons)
//   - subjectsOpen: Optional open paths for clipping (can be nil)
//   - clips: Clip paths for the operation (closed polygons)
//
// Returns:
//   - solution: Resulting closed paths
//   - solutionOpen: Resulting open paths (if subjectsOpen was provided)
//   - err: Error if validation fails or operation cannot be completed
//
// Possible errors: ErrInvalidClipType, ErrInvalidFillRule
//
// Note: Degenerate paths (< 3 points) are automatically filtered out.
func BooleanOp64(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Paths64) (solution, solutionOpen Paths64, err error) {
	// Validate clip type and fill rule
	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	// Filter out degenerate paths (< 3 points for closed polygons)
	subjects, _ = filterValidPaths(subjects, 3)
	clips, _ = filterValidPaths(clips, 3)

	// For open paths, we allow paths with 2+ points
	if subjectsOpen != nil {
		subjectsOpen, _ = filterValidPaths(subjectsOpen, 2)
	}

	return booleanOp64Impl(clipType, fillRule, subjects, subjectsOpen, clips)
}

// InflatePaths64 inflates (offsets) paths by the specified delta.
// Positive delta expands paths outward, negative delta shrinks them inward.
//
// Parameters:
//   - paths: Paths to offset
//   - delta: Offset distance (positive = expand, negative = shrink)
//   - joinType: How to join path segments (JoinSquare, JoinBevel, JoinRound, JoinMiter)
//   - endType: How to handle path ends (EndPolygon, EndJoined, EndButt, EndSquare, EndRound)
//   - opts: Optional offset parameters (miterLimit, arcTolerance, etc.)
//
// Possible errors: ErrInvalidJoinType, ErrInvalidEndType, ErrInvalidOptions
//
// Note: Empty paths are automatically filtered out.
func InflatePaths64(paths Paths64, delta float64, joinType JoinType, endType EndType, opts ...OffsetOptions) (Paths64, error) {
	// Validate join type and end type
	if err := validateJoinType(joinType); err != nil {
		return nil, err
	}
	if err := validateEndType(endType); err != nil {
		return nil, err
	}

	var options OffsetOptions
	if len(opts) > 0 {
		options = opts[0]
		// Validate options
		if options.MiterLimit <= 0 {
			return nil, ErrInvalidOptions
		}
		if options.ArcTolerance <= 0 {
			return nil, ErrInvalidOptions
		}
	} else {
		options = OffsetOptions{
			MiterLimit:   2.0,
			ArcTolerance: 0.25,
		}
	}

	// Filter out empty paths
	if paths == nil {
		return Paths64{}, nil
	}

	return inflatePathsImpl(paths, delta, joinType, endType, options)
}

// Area64 calculates the area of a path.
// Returns 0 for paths with fewer than 3 points.
// Positive area indicates counter-clockwise orientation.
func Area64(path Path64) float64 {
	return areaImpl(path)
}
