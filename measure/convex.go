package measure

import "github.com/katalvlaran/scagnostics/hull"

// Convex scores how close the point scatter's alpha hull is to filling its
// convex hull: the ratio of total alpha-hull area to convex-hull area,
// clamped to [0,1]. A degenerate convex hull (zero area) scores 0.
func Convex(alphaHull []hull.Polygon, convexHull hull.Polygon) float64 {
	convexArea := hull.Area(convexHull)
	if convexArea == 0 {
		return 0
	}

	var alphaArea float64
	for _, poly := range alphaHull {
		alphaArea += hull.Area(poly)
	}

	return clamp01(alphaArea / convexArea)
}
