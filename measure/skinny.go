package measure

import (
	"math"

	"github.com/katalvlaran/scagnostics/hull"
)

// Skinny scores how far the alpha hull's shape departs from a circle:
// 1 - sqrt(4*pi*area)/perimeter, summed over the hull's area and perimeter
// across all its polygons. A degenerate hull (zero perimeter) scores 1,
// the maximally skinny case.
func Skinny(alphaHull []hull.Polygon) float64 {
	var totalArea, totalPerimeter float64
	for _, poly := range alphaHull {
		totalArea += hull.Area(poly)
		totalPerimeter += hull.Perimeter(poly)
	}

	if totalPerimeter == 0 {
		return 1
	}

	return clamp01(1 - math.Sqrt(4*math.Pi*totalArea)/totalPerimeter)
}
