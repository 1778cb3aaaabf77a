// Package config loads a Hatcher recipe from a YAML document,
// mirroring the config layer of the teacher's sibling CLI tooling
// (gopkg.in/yaml.v2, a plain exported struct with doc-commented,
// unit-annotated fields).
package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/sprhawk/pyslm/hatching"
)

// SortStrategyName names a pluggable hatch sort strategy in a config
// file; the zero value ("") means "none" (identity).
type SortStrategyName string

const (
	SortNone      SortStrategyName = ""
	SortIdentity  SortStrategyName = "identity"
	SortAlternate SortStrategyName = "alternate"
	SortLinear    SortStrategyName = "linear"
)

// GeneratorName selects which HatchStrategy a RecipeConfig builds.
type GeneratorName string

const (
	GeneratorUniform GeneratorName = "uniform"
	GeneratorStripe  GeneratorName = "stripe"
	GeneratorIsland  GeneratorName = "island"
)

// RecipeConfig is the YAML-loadable form of a hatching.Hatcher.
type RecipeConfig struct {
	// NumOuterContours and NumInnerContours are the ring counts traced
	// before hatching the interior.
	NumOuterContours int `yaml:"numOuterContours"`
	NumInnerContours int `yaml:"numInnerContours"`

	// SpotCompensation is the initial inward offset, in millimetres.
	SpotCompensation float64 `yaml:"spotCompensation"`
	// ContourOffset is the spacing between successive contour rings,
	// in millimetres.
	ContourOffset float64 `yaml:"contourOffset"`
	// VolOffsetHatch is the additional inward offset before hatching,
	// in millimetres.
	VolOffsetHatch float64 `yaml:"volOffsetHatch"`

	// HatchDistance is the nominal spacing between hatch lines, in
	// millimetres. Must be > 0 if HatchingEnabled is true.
	HatchDistance float64 `yaml:"hatchDistance"`
	// HatchAngle is the base hatch angle, in degrees.
	HatchAngle float64 `yaml:"hatchAngle"`
	// LayerAngleIncrement rotates the hatch angle per layer index, in
	// degrees.
	LayerAngleIncrement float64 `yaml:"layerAngleIncrement"`

	// ScanContourFirst selects {contours, then hatches} ordering when
	// true.
	ScanContourFirst bool `yaml:"scanContourFirst"`
	// HatchingEnabled turns hatch generation on or off.
	HatchingEnabled bool `yaml:"hatchingEnabled"`

	// Generator selects the hatch strategy: "uniform" (default),
	// "stripe", or "island".
	Generator GeneratorName `yaml:"generator"`
	// StripeWidth, StripeOverlap, StripeOffsetFraction configure the
	// stripe generator; ignored unless Generator is "stripe".
	StripeWidth          float64 `yaml:"stripeWidth"`
	StripeOverlap        float64 `yaml:"stripeOverlap"`
	StripeOffsetFraction float64 `yaml:"stripeOffsetFraction"`
	// IslandWidth, IslandOverlap, IslandOffsetFraction configure the
	// island generator; ignored unless Generator is "island".
	IslandWidth          float64 `yaml:"islandWidth"`
	IslandOverlap        float64 `yaml:"islandOverlap"`
	IslandOffsetFraction float64 `yaml:"islandOffsetFraction"`

	// SortStrategy names the post-clip sort strategy; "" means none.
	SortStrategy SortStrategyName `yaml:"sortStrategy"`
	// LinearSortAxis selects the axis for "linear" sort: "x" (default)
	// or "y".
	LinearSortAxis string `yaml:"linearSortAxis"`

	// Scale is the clip engine's fixed-point scale factor; 0 means use
	// the clip engine's own default (1e5).
	Scale float64 `yaml:"scale"`

	ModelID int `yaml:"modelID"`
	BuildID int `yaml:"buildID"`
}

// Load reads and parses a RecipeConfig from a YAML file at path.
func Load(path string) (RecipeConfig, error) {
	var cfg RecipeConfig
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns a RecipeConfig prefilled with the original recipe's
// documented defaults (spot_compensation=0.08, contour_offset=0.08,
// vol_offset_hatch=0.08, hatch_distance=0.08, hatch_angle=45,
// numInnerContours=1, numOuterContours=1, hatchingEnabled=true).
func Default() RecipeConfig {
	return RecipeConfig{
		NumOuterContours: 1,
		NumInnerContours: 1,
		SpotCompensation: 0.08,
		ContourOffset:    0.08,
		VolOffsetHatch:   0.08,
		HatchDistance:    0.08,
		HatchAngle:       45,
		HatchingEnabled:  true,
		Generator:        GeneratorUniform,
	}
}

// Save writes cfg to path as YAML.
func Save(path string, cfg RecipeConfig) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

// Build validates cfg and constructs the Hatcher it describes. An
// unknown generator or sort strategy name, or a non-positive hatch
// distance while hatching is enabled, is a configuration error that
// fails fast here rather than silently falling back to a default.
func Build(cfg RecipeConfig) (hatching.Hatcher, error) {
	h := hatching.Hatcher{
		NumOuterContours:    cfg.NumOuterContours,
		NumInnerContours:    cfg.NumInnerContours,
		SpotCompensation:    cfg.SpotCompensation,
		ContourOffset:       cfg.ContourOffset,
		VolOffsetHatch:      cfg.VolOffsetHatch,
		HatchDistance:       cfg.HatchDistance,
		HatchAngle:          cfg.HatchAngle,
		LayerAngleIncrement: cfg.LayerAngleIncrement,
		ScanContourFirst:    cfg.ScanContourFirst,
		HatchingEnabled:     cfg.HatchingEnabled,
		ModelID:             cfg.ModelID,
		BuildID:             cfg.BuildID,
	}

	if cfg.HatchingEnabled && cfg.HatchDistance <= 0 {
		return h, fmt.Errorf("config: hatchDistance must be > 0 when hatchingEnabled is true")
	}

	switch cfg.Generator {
	case "", GeneratorUniform:
		h.Strategy = hatching.UniformHatcher{}
	case GeneratorStripe:
		h.Strategy = hatching.StripeHatcher{
			StripeWidth:          cfg.StripeWidth,
			StripeOverlap:        cfg.StripeOverlap,
			StripeOffsetFraction: cfg.StripeOffsetFraction,
		}
	case GeneratorIsland:
		h.Strategy = hatching.IslandHatcher{
			IslandWidth:          cfg.IslandWidth,
			IslandOverlap:        cfg.IslandOverlap,
			IslandOffsetFraction: cfg.IslandOffsetFraction,
		}
	default:
		return h, fmt.Errorf("config: unknown generator %q", cfg.Generator)
	}

	switch cfg.SortStrategy {
	case SortNone:
		h.SortStrategy = nil
	case SortIdentity:
		h.SortStrategy = hatching.IdentitySort{}
	case SortAlternate:
		h.SortStrategy = hatching.AlternateSort{}
	case SortLinear:
		axis := hatching.SortAxisX
		if cfg.LinearSortAxis == "y" {
			axis = hatching.SortAxisY
		}
		h.SortStrategy = hatching.LinearSort{Axis: axis}
	default:
		return h, fmt.Errorf("config: unknown sort strategy %q", cfg.SortStrategy)
	}

	if cfg.Scale > 0 {
		h.Engine = &hatching.ClipEngine{Scale: cfg.Scale, MiterLimit: 2.0, ArcTolerance: 0.01}
	}

	return h, nil
}
