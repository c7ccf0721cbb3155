package delaunay

import "errors"

// ErrTooFewSites indicates fewer than 3 sites were given to Triangulate.
var ErrTooFewSites = errors.New("delaunay: at least 3 sites are required")
