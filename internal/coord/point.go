package coord

import "fmt"

// Point is a 2D coordinate in either engine or map space.
// The caller decides which space a point belongs to.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tuple is the [x, y] form of a point used in JSON arrays.
type Tuple [2]float64

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Tuple returns p as [x, y].
func (p Point) Tuple() Tuple {
	return Tuple{p.X, p.Y}
}

// Point returns t as a Point.
func (t Tuple) Point() Point {
	return Point{X: t[0], Y: t[1]}
}

// FromTuple converts [x, y] to a Point.
func FromTuple(t Tuple) Point {
	return t.Point()
}

// TupleFromSlice converts a decoded JSON array to a Tuple.
// The slice must hold exactly two values.
func TupleFromSlice(s []float64) (Tuple, error) {
	if len(s) != 2 {
		return Tuple{}, fmt.Errorf("point needs 2 coordinates, got %d: %w", len(s), ErrInvalidArgument)
	}
	return Tuple{s[0], s[1]}, nil
}
