package point

import "math"

// roundTo is the coordinate-equality tolerance used throughout the pipeline:
// two coordinates are considered equal once rounded to this precision.
const roundTo = 1e10

// Point is an ordered pair (X, Y) of finite reals.
type Point struct {
	X, Y float64
}

// Round returns p with each coordinate rounded to 1e-10, the precision at
// which node identity and edge-weight comparisons are made downstream.
func (p Point) Round() Point {
	return Point{
		X: math.Round(p.X*roundTo) / roundTo,
		Y: math.Round(p.Y*roundTo) / roundTo,
	}
}

// Equal reports whether p and q are identical after rounding to 1e-10.
func (p Point) Equal(q Point) bool {
	pr, qr := p.Round(), q.Round()
	return pr.X == qr.X && pr.Y == qr.Y
}

// Key returns a hashable identity for p, rounded to 1e-10. Downstream
// packages (mstgraph in particular) use Key instead of a formatted string
// to key maps of nodes by coordinate.
func (p Point) Key() [2]float64 {
	r := p.Round()
	return [2]float64{r.X, r.Y}
}

// Normalize maps points onto the unit square [0,1]x[0,1]: each axis is
// rescaled by its own (min, max-min). A zero-range axis (all points share
// that coordinate) maps to the constant 0.5, per the degenerate-axis rule.
// Normalize never mutates its input; it returns a freshly allocated slice.
func Normalize(points []Point) []Point {
	out := make([]Point, len(points))
	if len(points) == 0 {
		return out
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	for i, p := range points {
		var nx, ny float64
		if rangeX == 0 {
			nx = 0.5
		} else {
			nx = (p.X - minX) / rangeX
		}
		if rangeY == 0 {
			ny = 0.5
		} else {
			ny = (p.Y - minY) / rangeY
		}
		out[i] = Point{X: nx, Y: ny}
	}

	return out
}
