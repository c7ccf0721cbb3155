package measure

import "github.com/katalvlaran/scagnostics/mstgraph"

// StringyFormula selects between two different fractions for scoring how
// path-like a tree is; each shows up under the name "stringy" in different
// treatments of scagnostics, and neither subsumes the other, so both are
// available by name rather than picking one silently.
type StringyFormula int

const (
	// StringyClassic computes (v1-v3)/(n-v1-v3) and is the default.
	StringyClassic StringyFormula = iota
	// StringyAlternative computes v2/(n-v1).
	StringyAlternative
)

type stringyConfig struct {
	formula StringyFormula
}

// StringyOption configures Stringy.
type StringyOption func(*stringyConfig)

// WithStringyFormula selects which named formula Stringy computes.
func WithStringyFormula(f StringyFormula) StringyOption {
	return func(c *stringyConfig) { c.formula = f }
}

// Stringy scores how path-like (as opposed to branching) the pruned MST is.
// By default it computes (v1-v3)/(n-v1-v3), clamped to [0,1] and defined as
// 0 when the denominator is not positive, where v1/v3 are the counts of
// degree-1/degree-3-or-more nodes and n is the total node count. Pass
// WithStringyFormula(StringyAlternative) for the v2/(n-v1) form instead.
func Stringy(mst mstgraph.Graph, opts ...StringyOption) float64 {
	cfg := stringyConfig{formula: StringyClassic}
	for _, o := range opts {
		o(&cfg)
	}

	n := len(mst.Nodes)
	v1, v2, v3plus := degreeCounts(mst)

	switch cfg.formula {
	case StringyAlternative:
		denom := n - v1
		if denom <= 0 {
			return 0
		}
		return clamp01(float64(v2) / float64(denom))
	default:
		denom := n - v1 - v3plus
		if denom <= 0 {
			return 0
		}
		return clamp01(float64(v1-v3plus) / float64(denom))
	}
}
