package coord

import "fmt"

// The map renderer puts the origin top-left, map space has it bottom-left.
// These helpers flip Y with the default MapSize; Calibration has the same
// methods for a configured size.

// FlipY returns MapSize - y.
func FlipY(y float64) float64 {
	return DefaultCalibration().FlipY(y)
}

// AdjustXY flips y and keeps x.
func AdjustXY(x, y float64) Tuple {
	return DefaultCalibration().AdjustXY(x, y)
}

// AdjustTuple flips the Y coordinate of t.
func AdjustTuple(t Tuple) Tuple {
	return AdjustXY(t[0], t[1])
}

// AdjustPoints flips every point of pts.
func AdjustPoints(pts []Tuple) []Tuple {
	return DefaultCalibration().AdjustPoints(pts)
}

// CoordinateAdjust flips a point given as loose values.
// Exactly two values, x and y, are required.
func CoordinateAdjust(coords ...float64) (Tuple, error) {
	t, err := TupleFromSlice(coords)
	if err != nil {
		return Tuple{}, fmt.Errorf("coordinate adjust: %w", err)
	}
	return AdjustTuple(t), nil
}

// AdjustSlices flips a list of decoded [x, y] arrays.
func AdjustSlices(pts [][]float64) ([]Tuple, error) {
	out := make([]Tuple, len(pts))
	for i, s := range pts {
		t, err := TupleFromSlice(s)
		if err != nil {
			return nil, fmt.Errorf("coordinate adjust: point %d: %w", i, err)
		}
		out[i] = AdjustTuple(t)
	}
	return out, nil
}
