package coord

import (
	"fmt"
	"math"
)

// Calibration bundles the transform coefficients and scale factors for one map.
// It is a value: build it once at startup and pass it around, never mutate it.
type Calibration struct {
	Forward     Affine  `yaml:"forward"`
	Inverse     Affine  `yaml:"inverse"`
	MapSize     float64 `yaml:"map_size"`
	TimeFactor  float64 `yaml:"time_factor"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

// DefaultCalibration returns the calibration of the shipped game map.
func DefaultCalibration() Calibration {
	return Calibration{
		Forward:     forwardTransform,
		Inverse:     inverseTransform,
		MapSize:     MapSize,
		TimeFactor:  TimeFactor,
		SpeedFactor: SpeedFactor,
	}
}

// Validate reports whether c can be used for conversions.
func (c Calibration) Validate() error {
	if !positive(c.MapSize) {
		return fmt.Errorf("map size %v must be positive: %w", c.MapSize, ErrInvalidDomain)
	}
	if !positive(c.TimeFactor) {
		return fmt.Errorf("time factor %v must be positive: %w", c.TimeFactor, ErrInvalidDomain)
	}
	if !positive(c.SpeedFactor) {
		return fmt.Errorf("speed factor %v must be positive: %w", c.SpeedFactor, ErrInvalidDomain)
	}
	if degenerate(c.Forward) {
		return fmt.Errorf("forward transform is degenerate: %w", ErrInvalidDomain)
	}
	if degenerate(c.Inverse) {
		return fmt.Errorf("inverse transform is degenerate: %w", ErrInvalidDomain)
	}
	return nil
}

// ToMap converts an engine-space point to map space.
func (c Calibration) ToMap(p Point) Point {
	return c.Forward.Apply(p)
}

// ToEngine converts a map-space point to engine space.
func (c Calibration) ToEngine(p Point) Point {
	return c.Inverse.Apply(p)
}

// TravelDistance returns the distance between two map-space points in
// travel-time units: measured in engine space, divided by TimeFactor*SpeedFactor.
// Engine-space callers should use DistancePoints instead.
func (c Calibration) TravelDistance(p0, p1 Point) float64 {
	return DistancePoints(c.ToEngine(p0), c.ToEngine(p1)) / (c.TimeFactor * c.SpeedFactor)
}

// FlipY moves y between a bottom-left and a top-left origin.
func (c Calibration) FlipY(y float64) float64 {
	return c.MapSize - y
}

// AdjustXY flips the Y coordinate of (x, y), keeping X.
func (c Calibration) AdjustXY(x, y float64) Tuple {
	return Tuple{x, c.FlipY(y)}
}

// AdjustPoints flips every point of pts. pts is not modified.
func (c Calibration) AdjustPoints(pts []Tuple) []Tuple {
	out := make([]Tuple, len(pts))
	for i, p := range pts {
		out[i] = c.AdjustXY(p[0], p[1])
	}
	return out
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func degenerate(t Affine) bool {
	return t.A == 0 && t.B == 0
}
