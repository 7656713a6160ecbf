package coord

import (
	"fmt"
	"math"
)

// CompassLabels lists the 24 compass directions clockwise from north.
// Label i is i*CompassTick degrees.
var CompassLabels = [...]string{
	"N", "N⅓NE", "N⅔NE", "NE", "E⅔NE", "E⅓NE",
	"E", "E⅓SE", "E⅔SE", "SE", "S⅔SE", "S⅓SE",
	"S", "S⅓SW", "S⅔SW", "SW", "W⅔SW", "W⅓SW",
	"W", "W⅓NW", "W⅔NW", "NW", "N⅔NW", "N⅓NW",
}

// CompassPoints is the number of compass directions.
const CompassPoints = len(CompassLabels)

// CompassTick is the angle between neighbouring directions (15 degrees).
const CompassTick = DegreesFullCircle / float64(CompassPoints)

var compassIndex = func() map[string]Compass {
	m := make(map[string]Compass, CompassPoints)
	for i, l := range CompassLabels {
		m[l] = Compass(i)
	}
	return m
}()

// Compass is an index into CompassLabels.
type Compass int

// ParseCompass looks up a compass label.
func ParseCompass(label string) (Compass, error) {
	c, ok := compassIndex[label]
	if !ok {
		return 0, fmt.Errorf("%q: %w", label, ErrUnknownCompass)
	}
	return c, nil
}

// Degrees returns the direction as degrees clockwise from north.
func (c Compass) Degrees() float64 {
	return float64(c) * CompassTick
}

func (c Compass) String() string {
	return CompassLabels[euclidMod(int(c), CompassPoints)]
}

// CompassToDegrees converts a compass label to degrees.
func CompassToDegrees(label string) (float64, error) {
	c, err := ParseCompass(label)
	if err != nil {
		return 0, err
	}
	return c.Degrees(), nil
}

// DegreesToCompass returns the label nearest to degrees.
// Any finite value is accepted, negative or above 360; NaN and infinities give "N".
func DegreesToCompass(degrees float64) string {
	v := math.Floor(degrees/CompassTick + 0.5)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return CompassLabels[0]
	}
	return Compass(math.Mod(v, float64(CompassPoints))).String()
}

func euclidMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
