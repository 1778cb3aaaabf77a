package clipper

import "errors"

var (
	// ErrNotImplemented indicates a feature is not yet implemented
	ErrNotImplemented = errors.New("not implemented yet")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input parameters")

	// ErrInvalidFillRule indicates a FillRule value outside the valid range (0-3)
	ErrInvalidFillRule = errors.New("invalid fill rule: must be EvenOdd, NonZero, Positive, or Negative")

	// ErrInvalidClipType indicates a ClipType value outside the valid range (0-3)
	ErrInvalidClipType = errors.New("invalid clip type: must be Intersection, Union, Difference, or Xor")

	// ErrInvalidJoinType indicates a JoinType value outside the valid range (0-3)
	ErrInvalidJoinType = errors.New("invalid join type: must be JoinSquare, JoinBevel, JoinRound, or JoinMiter")

	// ErrInvalidEndType indicates an EndType value outside the valid range (0-4)
	ErrInvalidEndType = errors.New("invalid end type: must be EndPolygon, EndJoined, EndSquare, EndRound, or EndButt")

	// ErrInvalidOptions indicates an invalid OffsetOptions value, such as a
	// non-positive MiterLimit or ArcTolerance
	ErrInvalidOptions = errors.New("invalid offset options")
)

// validateClipType returns ErrInvalidClipType unless clipType is one of the
// four defined ClipType values.
func validateClipType(clipType ClipType) error {
	switch clipType {
	case Intersection, Union, Difference, Xor:
		return nil
	default:
		return ErrInvalidClipType
	}
}

// validateFillRule returns ErrInvalidFillRule unless fillRule is one of the
// four defined FillRule values.
func validateFillRule(fillRule FillRule) error {
	switch fillRule {
	case EvenOdd, NonZero, Positive, Negative:
		return nil
	default:
		return ErrInvalidFillRule
	}
}

// validateJoinType returns ErrInvalidJoinType unless joinType is one of the
// four defined JoinType values.
func validateJoinType(joinType JoinType) error {
	switch joinType {
	case JoinSquare, JoinBevel, JoinRound, JoinMiter:
		return nil
	default:
		return ErrInvalidJoinType
	}
}

// validateEndType returns ErrInvalidEndType unless endType is one of the
// five defined EndType values.
func validateEndType(endType EndType) error {
	switch endType {
	case EndPolygon, EndJoined, EndSquare, EndRound, EndButt:
		return nil
	default:
		return ErrInvalidEndType
	}
}

// filterValidPaths returns the subset of paths with at least minPoints
// points, along with the number of paths dropped.
func filterValidPaths(paths Paths64, minPoints int) (Paths64, int) {
	if len(paths) == 0 {
		return paths, 0
	}
	out := make(Paths64, 0, len(paths))
	dropped := 0
	for _, p := range paths {
		if len(p) >= minPoints {
			out = append(out, p)
		} else {
			dropped++
		}
	}
	return out, dropped
}
