// Package coord converts between game engine coordinates and map coordinates
// and derives distances, bearings and compass directions from them.
package coord

// Map and travel scale factors.
const (
	MapSize     = 8192 // map space edge length
	TimeFactor  = 2.63
	SpeedFactor = 390
)

// Degree constants.
const (
	DegreesFullCircle    = 360.0
	DegreesHalfCircle    = 180.0
	DegreesQuarterCircle = 90.0
)

// Transform coefficients calibrated for the game map.
// The inverse set is calibrated independently, not derived from the forward set.
var (
	forwardTransform = Affine{
		A: -0.004_998_667_793_638_28,
		B: -0.000_000_214_642_549_806_45,
		C: 4096.886_351_518_97,
		D: 4096.902_827_874_69,
	}
	inverseTransform = Affine{
		A: -200.053_302_087_577,
		B: -0.008_590_278_976_360_11,
		C: 819_630.836_437_126,
		D: -819_563.745_651_571,
	}
)
