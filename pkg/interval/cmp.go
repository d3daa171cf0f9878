package interval

import (
	"errors"

	"github.com/autumngray/intervalsets/pkg/ordered"
)

// ErrOutOfDomain is returned when the value beside a cut sits past
// the domain minimum or maximum.
var ErrOutOfDomain = errors.New("no adjacent value: boundary at the domain edge")

// Cmp compares boundaries and intervals over a single value domain.
// It resolves the discrete capability once at construction; on a
// discrete domain Above(v) and Below(succ(v)) denote the same cut and
// compare as equal.
type Cmp[V any] struct {
	d    ordered.Domain[V]
	disc ordered.Discrete[V] // nil on dense domains
}

// NewCmp returns a comparer for d.
func NewCmp[V any](d ordered.Domain[V]) *Cmp[V] {
	c := &Cmp[V]{d: d}
	if disc, ok := ordered.AsDiscrete(d); ok {
		c.disc = disc
	}
	return c
}

// adjacent reports whether hi is the successor of lo.
func (c *Cmp[V]) adjacent(lo, hi V) bool {
	if c.disc == nil {
		return false
	}
	next, ok := c.disc.Next(lo)
	return ok && c.d.Compare(next, hi) == 0
}

// Boundaries compares two cuts, returning -1, 0 or +1.
func (c *Cmp[V]) Boundaries(a, b Boundary[V]) int {
	if a.side == b.side {
		return c.d.Compare(a.v, b.v)
	}
	if a.side == BelowValue {
		// Below(x) vs Above(y): the cuts coincide when x = succ(y);
		// otherwise Below(x) < Above(y) iff x <= y.
		if c.adjacent(b.v, a.v) {
			return 0
		}
		if c.d.Compare(a.v, b.v) <= 0 {
			return -1
		}
		return 1
	}
	// Above(x) vs Below(y): coincide when y = succ(x); otherwise
	// Above(x) < Below(y) iff x < y.
	if c.adjacent(a.v, b.v) {
		return 0
	}
	if c.d.Compare(a.v, b.v) < 0 {
		return -1
	}
	return 1
}

// BoundaryValue compares a cut against a bare value. Never returns 0:
// no value equals a cut.
func (c *Cmp[V]) BoundaryValue(b Boundary[V], v V) int {
	if b.side == BelowValue {
		// Below(x) < v iff x <= v.
		if c.d.Compare(b.v, v) <= 0 {
			return -1
		}
		return 1
	}
	// Above(x) < v iff x < v.
	if c.d.Compare(b.v, v) < 0 {
		return -1
	}
	return 1
}

// ValueAbove returns the nearest representable value above the cut b.
// For Below(x) that is x itself on any domain; for Above(x) it is
// succ(x), which needs a discrete domain (ordered.ErrDense) with x
// not at the maximum (ErrOutOfDomain).
func (c *Cmp[V]) ValueAbove(b Boundary[V]) (V, error) {
	if b.side == BelowValue {
		return b.v, nil
	}
	if c.disc == nil {
		var zero V
		return zero, ordered.ErrDense
	}
	next, ok := c.disc.Next(b.v)
	if !ok {
		var zero V
		return zero, ErrOutOfDomain
	}
	return next, nil
}

// ValueBelow returns the nearest representable value below the cut b,
// symmetric to ValueAbove.
func (c *Cmp[V]) ValueBelow(b Boundary[V]) (V, error) {
	if b.side == AboveValue {
		return b.v, nil
	}
	if c.disc == nil {
		var zero V
		return zero, ordered.ErrDense
	}
	prev, ok := c.disc.Prev(b.v)
	if !ok {
		var zero V
		return zero, ErrOutOfDomain
	}
	return prev, nil
}

// Empty reports whether iv holds no value.
func (c *Cmp[V]) Empty(iv Interval[V]) bool {
	return c.Boundaries(iv.hi, iv.lo) <= 0
}

// Contains reports whether iv holds v.
func (c *Cmp[V]) Contains(iv Interval[V], v V) bool {
	return c.BoundaryValue(iv.lo, v) < 0 && c.BoundaryValue(iv.hi, v) > 0
}

// ContainsInterval reports whether a holds every value of b. An empty
// b is contained in anything.
func (c *Cmp[V]) ContainsInterval(a, b Interval[V]) bool {
	if c.Empty(b) {
		return true
	}
	return c.Boundaries(a.lo, b.lo) <= 0 && c.Boundaries(b.hi, a.hi) <= 0
}

// Overlaps reports whether a and b share a value or merely touch:
// equal cuts, or discrete adjacency with no value between them. It is
// the single predicate for both true overlap and must-fuse detection.
func (c *Cmp[V]) Overlaps(a, b Interval[V]) bool {
	if c.Empty(a) || c.Empty(b) {
		return false
	}
	return c.Boundaries(a.hi, b.lo) >= 0 && c.Boundaries(b.hi, a.lo) >= 0
}

// StrictlyOverlaps reports whether a and b share at least one value.
// Touching does not count; removal uses this.
func (c *Cmp[V]) StrictlyOverlaps(a, b Interval[V]) bool {
	if c.Empty(a) || c.Empty(b) {
		return false
	}
	return c.Boundaries(a.hi, b.lo) > 0 && c.Boundaries(b.hi, a.lo) > 0
}

// Intersect returns the values held by both a and b, possibly empty.
func (c *Cmp[V]) Intersect(a, b Interval[V]) Interval[V] {
	lo := a.lo
	if c.Boundaries(b.lo, lo) > 0 {
		lo = b.lo
	}
	hi := a.hi
	if c.Boundaries(b.hi, hi) < 0 {
		hi = b.hi
	}
	return Interval[V]{lo: lo, hi: hi}
}

// Extent returns the convex hull of a and b. An empty operand
// contributes nothing.
func (c *Cmp[V]) Extent(a, b Interval[V]) Interval[V] {
	if c.Empty(a) {
		return b
	}
	if c.Empty(b) {
		return a
	}
	lo := a.lo
	if c.Boundaries(b.lo, lo) < 0 {
		lo = b.lo
	}
	hi := a.hi
	if c.Boundaries(b.hi, hi) > 0 {
		hi = b.hi
	}
	return Interval[V]{lo: lo, hi: hi}
}

// Difference returns the part of a below b and the part of a above b.
// Either fragment may be empty.
func (c *Cmp[V]) Difference(a, b Interval[V]) (below, above Interval[V]) {
	below = Interval[V]{lo: a.lo, hi: b.lo}
	above = Interval[V]{lo: b.hi, hi: a.hi}
	return below, above
}

// Compare orders intervals by (lo, hi), with every empty interval
// sorting first.
func (c *Cmp[V]) Compare(a, b Interval[V]) int {
	ea, eb := c.Empty(a), c.Empty(b)
	switch {
	case ea && eb:
		return 0
	case ea:
		return -1
	case eb:
		return 1
	}
	if v := c.Boundaries(a.lo, b.lo); v != 0 {
		return v
	}
	return c.Boundaries(a.hi, b.hi)
}

// Normalize rewrites a non-empty discrete interval so its lower cut
// is Below-side and its upper cut is Above-side; the interval is then
// exactly the inclusive pair of its boundary values. Identity on
// dense domains and on empty intervals.
func (c *Cmp[V]) Normalize(iv Interval[V]) Interval[V] {
	if c.disc == nil || c.Empty(iv) {
		return iv
	}
	if iv.lo.side == AboveValue {
		next, ok := c.disc.Next(iv.lo.v)
		if !ok {
			return iv
		}
		iv.lo = Below(next)
	}
	if iv.hi.side == BelowValue {
		prev, ok := c.disc.Prev(iv.hi.v)
		if !ok {
			return iv
		}
		iv.hi = Above(prev)
	}
	return iv
}
