package coord

// Affine is a conformal 2D transform (rotation, uniform scale, translation):
//
//	x' = A*x + B*y + C
//	y' = B*x - A*y + D
type Affine struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// X returns the transformed X coordinate. Both input coordinates are needed.
func (t Affine) X(x, y float64) float64 {
	return t.A*x + t.B*y + t.C
}

// Y returns the transformed Y coordinate.
func (t Affine) Y(x, y float64) float64 {
	return t.B*x - t.A*y + t.D
}

// Apply transforms p.
func (t Affine) Apply(p Point) Point {
	return Point{X: t.X(p.X, p.Y), Y: t.Y(p.X, p.Y)}
}

// ForwardTransform returns the engine -> map coefficients.
func ForwardTransform() Affine { return forwardTransform }

// InverseTransform returns the map -> engine coefficients.
func InverseTransform() Affine { return inverseTransform }

// ForwardX converts engine coordinates to map X.
func ForwardX(x, y float64) float64 {
	return forwardTransform.X(x, y)
}

// ForwardY converts engine coordinates to map Y.
func ForwardY(x, y float64) float64 {
	return forwardTransform.Y(x, y)
}

// InverseX converts map coordinates to engine X.
func InverseX(x, y float64) float64 {
	return inverseTransform.X(x, y)
}

// InverseY converts map coordinates to engine Y.
func InverseY(x, y float64) float64 {
	return inverseTransform.Y(x, y)
}

// Forward converts an engine-space point to map space.
func Forward(p Point) Point {
	return forwardTransform.Apply(p)
}

// Inverse converts a map-space point to engine space.
func Inverse(p Point) Point {
	return inverseTransform.Apply(p)
}
