package point

import "sort"

// sortLex sorts points in place by X ascending, then Y ascending.
func sortLex(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}
