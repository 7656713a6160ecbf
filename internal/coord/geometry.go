package coord

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any real numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * DegreesHalfCircle / math.Pi
}

// DegreesToRadians converts a compass angle to a math angle in radians.
// It subtracts 90 degrees first, mirroring the shift in RotationAngleInDegrees,
// so it is not a plain unit conversion.
func DegreesToRadians(degrees float64) float64 {
	return math.Pi / DegreesHalfCircle * (degrees - DegreesQuarterCircle)
}

// RotationAngleInDegrees returns the bearing from center to target in [0, 360),
// 0 being north and angles growing clockwise.
// Coincident points give 270 (atan2(0, 0) = 0, shifted by -90).
func RotationAngleInDegrees(center, target Point) float64 {
	theta := math.Atan2(target.Y-center.Y, target.X-center.X) - math.Pi/2
	return math.Mod(RadiansToDegrees(theta)+DegreesFullCircle, DegreesFullCircle)
}

// RotationAngleInRadians returns the difference between the angles of center
// and target as seen from the origin. It is not the bearing between them.
func RotationAngleInRadians(center, target Point) float64 {
	return math.Atan2(center.Y, center.X) - math.Atan2(target.Y, target.X)
}

// DistancePoints returns the Euclidean distance between p0 and p1.
func DistancePoints(p0, p1 Point) float64 {
	return math.Hypot(p0.X-p1.X, p0.Y-p1.Y)
}

// TravelDistance returns the travel distance between two map-space points
// using the default calibration.
func TravelDistance(p0, p1 Point) float64 {
	return DefaultCalibration().TravelDistance(p0, p1)
}

// Between reports whether value lies between a and b, which may come in any order.
func Between[T Number](value, a, b T, inclusive bool) bool {
	lo, hi := min(a, b), max(a, b)
	if inclusive {
		return value >= lo && value <= hi
	}
	return value > lo && value < hi
}

// NearestPow2 returns the largest power of two not greater than n.
// n must be positive.
func NearestPow2(n float64) (float64, error) {
	if !(n > 0) {
		return 0, fmt.Errorf("nearest power of 2 of %v: %w", n, ErrInvalidDomain)
	}
	if math.IsInf(n, 1) {
		return n, nil
	}
	// Frexp is exact where Log2 can round up just below a power of two.
	_, exp := math.Frexp(n)
	return math.Ldexp(1, exp-1), nil
}
