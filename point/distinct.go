package point

// Distinct returns the subset of points with duplicate coordinates removed,
// comparing by Point.Key (rounded-coordinate equality). The first occurrence
// of each distinct coordinate is kept, preserving input order.
func Distinct(points []Point) []Point {
	seen := make(map[[2]float64]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		k := p.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	return out
}

// SortLex sorts points lexicographically by X then Y, in place, and returns
// the same slice for chaining. Delaunay's collinear fallback uses it to
// order sites deterministically.
func SortLex(points []Point) []Point {
	sortLex(points)
	return points
}
