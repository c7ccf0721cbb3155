package hull

import "github.com/katalvlaran/scagnostics/point"

// Polygon is an ordered, counter-clockwise list of boundary points. The
// loop is implicitly closed: the last point connects back to the first.
type Polygon []point.Point

// alphaConfig holds AlphaShape's tunables.
type alphaConfig struct {
	alpha float64
}

// AlphaOption configures AlphaShape.
type AlphaOption func(*alphaConfig)

// WithAlpha sets the alpha-shape parameter: triangles qualify when their
// circumradius does not exceed 1/alpha, so larger alpha admits smaller
// circumradii and the shape shrinks as alpha grows. alpha=0 admits every
// triangle regardless of circumradius (threshold +Inf) and is exactly the
// convex hull.
func WithAlpha(alpha float64) AlphaOption {
	return func(c *alphaConfig) { c.alpha = alpha }
}

func newAlphaConfig(opts []AlphaOption) alphaConfig {
	cfg := alphaConfig{alpha: 0}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
