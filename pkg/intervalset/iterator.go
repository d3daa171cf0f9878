package intervalset

import (
	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/ordered"
)

// Iterator walks the stored intervals of a set in ascending order. It
// iterates over a snapshot; mutating the set does not disturb it.
type Iterator[V any] struct {
	current int
	ivs     []interval.Interval[V]
}

// Iterate returns an interval iterator positioned before the first
// entry. Call Iterate again to restart.
func (s *Set[V]) Iterate() *Iterator[V] {
	return &Iterator[V]{current: -1, ivs: s.Intervals()}
}

func (r *Iterator[V]) Next() bool {
	r.current++
	return r.current < len(r.ivs)
}

func (r *Iterator[V]) Interval() interval.Interval[V] {
	return r.ivs[r.current]
}

// ValueIterator walks every member value of a discrete-domain set in
// ascending order.
type ValueIterator[V any] struct {
	disc ordered.Discrete[V]
	ivs  []interval.Interval[V]
	idx  int
	cur  V
}

// IterateValues returns a value iterator positioned before the first
// member. The domain must be discrete; on a dense domain it returns
// ordered.ErrDense.
func (s *Set[V]) IterateValues() (*ValueIterator[V], error) {
	disc, ok := ordered.AsDiscrete(s.d)
	if !ok {
		return nil, ordered.ErrDense
	}
	return &ValueIterator[V]{disc: disc, ivs: s.Intervals(), idx: -1}, nil
}

func (r *ValueIterator[V]) Next() bool {
	if r.idx < 0 {
		r.idx = 0
		if len(r.ivs) == 0 {
			return false
		}
		r.cur = r.ivs[0].Lo().Value()
		return true
	}
	if r.idx >= len(r.ivs) {
		return false
	}
	if r.disc.Compare(r.cur, r.ivs[r.idx].Hi().Value()) == 0 {
		r.idx++
		if r.idx >= len(r.ivs) {
			return false
		}
		r.cur = r.ivs[r.idx].Lo().Value()
		return true
	}
	next, ok := r.disc.Next(r.cur)
	if !ok {
		r.idx = len(r.ivs)
		return false
	}
	r.cur = next
	return true
}

func (r *ValueIterator[V]) Value() V {
	return r.cur
}

// Values collects every member value in ascending order. Discrete
// domains only.
func (s *Set[V]) Values() ([]V, error) {
	iter, err := s.IterateValues()
	if err != nil {
		return nil, err
	}
	var vs []V
	for iter.Next() {
		vs = append(vs, iter.Value())
	}
	return vs, nil
}
