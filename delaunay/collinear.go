package delaunay

import "github.com/katalvlaran/scagnostics/point"

// collinearEpsilon bounds the absolute cross-product magnitude (not scaled
// by the site extent) below which three points are considered collinear.
const collinearEpsilon = 1e-9

// isCollinear reports whether every site lies on a single line.
func isCollinear(sites []point.Point) bool {
	if len(sites) < 3 {
		return true
	}

	// Find the first pair of sites that are not coincident to anchor a
	// reference direction; if every site coincides, treat as collinear.
	a := sites[0]
	var b point.Point
	found := false
	for _, s := range sites[1:] {
		if !s.Equal(a) {
			b = s
			found = true
			break
		}
	}
	if !found {
		return true
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	for _, c := range sites {
		cross := dx*(c.Y-a.Y) - dy*(c.X-a.X)
		if abs(cross) > collinearEpsilon {
			return false
		}
	}

	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
