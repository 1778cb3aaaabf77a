package geometry

// BuildStyle carries the laser-parameter fields the exposure-point
// sampling utility needs. It is otherwise an opaque collaborator of
// this module: build-style/laser-parameter modelling in full is out
// of scope (spec.md §1).
type BuildStyle struct {
	BuildID int

	// PointDistance is the spacing between exposure points, in
	// micrometres. Must be >= 1 for the exposure utility to accept it.
	PointDistance float64
	// LaserPower is the laser power, in watts.
	LaserPower float64
	// PointExposureTime is the dwell time per exposure point, in
	// microseconds.
	PointExposureTime float64
}

// Model groups the BuildStyles referenced by a model ID. It mirrors
// the (model_id, build_id) pair addressing scheme described in
// spec.md §6.
type Model struct {
	ModelID     int
	BuildStyles []BuildStyle
}

// BuildStyle looks up the build style with the given ID, returning
// ok=false if this model has no such build style.
func (m Model) BuildStyle(buildID int) (BuildStyle, bool) {
	for _, bs := range m.BuildStyles {
		if bs.BuildID == buildID {
			return bs, true
		}
	}
	return BuildStyle{}, false
}

// FindModel looks up a model by ID from a slice of models.
func FindModel(models []Model, modelID int) (Model, bool) {
	for _, m := range models {
		if m.ModelID == modelID {
			return m, true
		}
	}
	return Model{}, false
}
