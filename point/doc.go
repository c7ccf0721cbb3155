// Package point defines the shared 2-D Point value type used by every
// stage of the scagnostics pipeline, plus the Normalizer that maps an
// arbitrary point scatter onto the unit square.
package point
