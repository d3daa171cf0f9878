package intervalset

import (
	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/ordered"
)

// Universe returns the set holding every value of d, as the single
// interval from the domain minimum through the maximum. The domain
// must be bounded; otherwise ordered.ErrUnbounded.
func Universe[V any](d ordered.Domain[V]) (*Set[V], error) {
	bd, ok := ordered.AsBounded(d)
	if !ok {
		return nil, ordered.ErrUnbounded
	}
	s := New(d)
	s.Incl(interval.Closed(bd.Min(), bd.Max()))
	return s, nil
}

// Complement returns the values of the domain not in s. Bounded
// domains only.
func Complement[V any](s *Set[V]) (*Set[V], error) {
	u, err := Universe(s.d)
	if err != nil {
		return nil, err
	}
	u.ExclSet(s)
	return u, nil
}

// Union returns the values in a or b. Inputs are not mutated.
func Union[V any](a, b *Set[V]) *Set[V] {
	c := a.Clone()
	c.InclSet(b)
	return c
}

// Difference returns the values in a but not b.
func Difference[V any](a, b *Set[V]) *Set[V] {
	c := a.Clone()
	c.ExclSet(b)
	return c
}

// Intersection returns the values in both a and b, as a minus the
// part of a outside b. Works on unbounded domains too, unlike the
// complement-based formulation.
func Intersection[V any](a, b *Set[V]) *Set[V] {
	c := a.Clone()
	c.ExclSet(Difference(a, b))
	return c
}

// SymmetricDifference returns the values in exactly one of a and b.
func SymmetricDifference[V any](a, b *Set[V]) *Set[V] {
	return Union(Difference(a, b), Difference(b, a))
}
