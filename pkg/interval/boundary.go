// Package interval provides boundaries (cut points just below or just
// above a domain value), intervals over boundary pairs, and a Cmp
// comparer that carries the interval-level algebra for a given value
// domain.
package interval

// Side tells whether a boundary cuts just below or just above its
// reference value.
type Side uint8

const (
	// BelowValue is the cut immediately preceding the reference value;
	// a range starting there includes the value.
	BelowValue Side = iota
	// AboveValue is the cut immediately following the reference value;
	// a range ending there includes the value.
	AboveValue
)

// Boundary is an infinitesimally thin cut point in an ordered domain.
// No domain value ever equals a boundary; boundaries compare only to
// each other or to values, through a Cmp.
type Boundary[V any] struct {
	v    V
	side Side
}

// Below returns the cut immediately preceding v.
func Below[V any](v V) Boundary[V] {
	return Boundary[V]{v: v, side: BelowValue}
}

// Above returns the cut immediately following v.
func Above[V any](v V) Boundary[V] {
	return Boundary[V]{v: v, side: AboveValue}
}

// Value returns the reference value of b.
func (b Boundary[V]) Value() V { return b.v }

// Side returns which side of the reference value b cuts on.
func (b Boundary[V]) Side() Side { return b.side }
