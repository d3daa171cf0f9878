// Package intervalset maintains sets of values over a totally ordered
// domain as minimal sorted sequences of disjoint, non-mergeable
// intervals. Mutations re-establish canonical form eagerly over the
// locally affected index range, located by binary search.
package intervalset

import (
	"math/big"
	"sort"
	"strings"

	"github.com/autumngray/intervalsets/pkg/hash"
	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/ordered"
)

// Set is a set of domain values stored as its canonical interval
// sequence: sorted ascending by lower cut, no entry empty, no two
// entries overlapping or touching. The sequence is the set's sole
// storage; derived results never share it.
//
// A Set is not safe for concurrent use; callers owning one across
// goroutines must serialize access externally.
type Set[V any] struct {
	d   ordered.Domain[V]
	cmp *interval.Cmp[V]
	ivs []interval.Interval[V]
}

// New returns an empty set over d.
func New[V any](d ordered.Domain[V]) *Set[V] {
	return &Set[V]{d: d, cmp: interval.NewCmp(d)}
}

// Domain returns the value domain of s.
func (s *Set[V]) Domain() ordered.Domain[V] { return s.d }

// Clone returns a structural copy sharing no storage with s.
func (s *Set[V]) Clone() *Set[V] {
	c := &Set[V]{d: s.d, cmp: s.cmp}
	if len(s.ivs) > 0 {
		c.ivs = append([]interval.Interval[V]{}, s.ivs...)
	}
	return c
}

// IsEmpty reports whether s holds no value.
func (s *Set[V]) IsEmpty() bool { return len(s.ivs) == 0 }

// NumIntervals returns the number of stored intervals.
func (s *Set[V]) NumIntervals() int { return len(s.ivs) }

// Intervals returns a copy of the stored interval sequence,
// ascending.
func (s *Set[V]) Intervals() []interval.Interval[V] {
	if len(s.ivs) == 0 {
		return nil
	}
	return append([]interval.Interval[V]{}, s.ivs...)
}

// Extent returns the convex hull of s, or false when s is empty.
func (s *Set[V]) Extent() (interval.Interval[V], bool) {
	if len(s.ivs) == 0 {
		return interval.Interval[V]{}, false
	}
	return interval.New(s.ivs[0].Lo(), s.ivs[len(s.ivs)-1].Hi()), true
}

// Size returns the number of member values. The domain must be
// discrete; on a dense domain Size returns ordered.ErrDense.
func (s *Set[V]) Size() (*big.Int, error) {
	disc, ok := ordered.AsDiscrete(s.d)
	if !ok {
		return nil, ordered.ErrDense
	}
	one := big.NewInt(1)
	total := new(big.Int)
	for _, iv := range s.ivs {
		n := disc.Distance(iv.Lo().Value(), iv.Hi().Value())
		total.Add(total, n.Add(n, one))
	}
	return total, nil
}

// Contains reports whether v is in s.
func (s *Set[V]) Contains(v V) bool {
	i := sort.Search(len(s.ivs), func(k int) bool {
		return s.cmp.BoundaryValue(s.ivs[k].Hi(), v) > 0
	})
	return i < len(s.ivs) && s.cmp.BoundaryValue(s.ivs[i].Lo(), v) < 0
}

// ContainsInterval reports whether every value of iv is in s. A
// contiguous range can only be enclosed by a single stored entry, so
// one binary search decides it. An empty iv is contained.
func (s *Set[V]) ContainsInterval(iv interval.Interval[V]) bool {
	iv = s.cmp.Normalize(iv)
	if s.cmp.Empty(iv) {
		return true
	}
	i := sort.Search(len(s.ivs), func(k int) bool {
		return s.cmp.Boundaries(s.ivs[k].Hi(), iv.Lo()) >= 0
	})
	return i < len(s.ivs) && s.cmp.ContainsInterval(s.ivs[i], iv)
}

// ContainsSet reports whether every value of o is in s. An empty s
// contains nothing, the empty o included.
func (s *Set[V]) ContainsSet(o *Set[V]) bool {
	if len(s.ivs) == 0 {
		return false
	}
	for _, iv := range o.ivs {
		if !s.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same values. Canonical form
// makes this a sequence comparison.
func (s *Set[V]) Equal(o *Set[V]) bool {
	if len(s.ivs) != len(o.ivs) {
		return false
	}
	for i, iv := range s.ivs {
		if s.cmp.Boundaries(iv.Lo(), o.ivs[i].Lo()) != 0 ||
			s.cmp.Boundaries(iv.Hi(), o.ivs[i].Hi()) != 0 {
			return false
		}
	}
	return true
}

// Hash folds the boundary data of every stored interval into a
// uint32. Equal sets hash equal.
func (s *Set[V]) Hash() uint32 {
	h := hash.Seed
	for _, iv := range s.ivs {
		h = hash.Fold(h, s.d.Hash(iv.Lo().Value()))
		h = hash.Fold(h, uint32(iv.Lo().Side()))
		h = hash.Fold(h, s.d.Hash(iv.Hi().Value()))
		h = hash.Fold(h, uint32(iv.Hi().Side()))
	}
	return h
}

// String renders s as "{iv, iv, ...}".
func (s *Set[V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, iv := range s.ivs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(iv.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// overlapRange returns the index range [i, j) of stored entries that
// overlap q, found by two independent binary searches over the sorted
// disjoint sequence. When the range is empty (i >= j), i is the
// correct insertion position for q. With fuse true, entries merely
// touching q (equal cuts, or discrete adjacency) are part of the
// range, since they must be fused with q on insertion.
func (s *Set[V]) overlapRange(q interval.Interval[V], fuse bool) (int, int) {
	if fuse {
		i := sort.Search(len(s.ivs), func(k int) bool {
			return s.cmp.Boundaries(s.ivs[k].Hi(), q.Lo()) >= 0
		})
		j := sort.Search(len(s.ivs), func(k int) bool {
			return s.cmp.Boundaries(s.ivs[k].Lo(), q.Hi()) > 0
		})
		return i, j
	}
	i := sort.Search(len(s.ivs), func(k int) bool {
		return s.cmp.Boundaries(s.ivs[k].Hi(), q.Lo()) > 0
	})
	j := sort.Search(len(s.ivs), func(k int) bool {
		return s.cmp.Boundaries(s.ivs[k].Lo(), q.Hi()) >= 0
	})
	return i, j
}

// Incl adds every value of iv to s. Empty intervals are identity.
func (s *Set[V]) Incl(iv interval.Interval[V]) {
	iv = s.cmp.Normalize(iv)
	if s.cmp.Empty(iv) {
		return
	}
	i, j := s.overlapRange(iv, true)
	if i >= j {
		// Touches nothing, new entry at the insertion position.
		s.insertAt(i, iv)
		return
	}
	if j-i == 1 && s.cmp.ContainsInterval(s.ivs[i], iv) {
		return
	}
	// The searched range is the maximal run of entries overlapping or
	// touching iv; its hull replaces the whole run.
	fused := s.cmp.Extent(iv, s.ivs[i])
	fused = s.cmp.Extent(fused, s.ivs[j-1])
	s.replaceRange(i, j, fused)
}

// InclValue adds v to s.
func (s *Set[V]) InclValue(v V) {
	s.Incl(interval.Point(v))
}

// InclSet adds every value of o to s.
func (s *Set[V]) InclSet(o *Set[V]) {
	for _, iv := range o.Intervals() {
		s.Incl(iv)
	}
}

// Excl removes every value of iv from s. Empty intervals are
// identity.
func (s *Set[V]) Excl(iv interval.Interval[V]) {
	iv = s.cmp.Normalize(iv)
	if s.cmp.Empty(iv) {
		return
	}
	i, j := s.overlapRange(iv, false)
	if i >= j {
		return
	}
	// The first entry may survive below iv, the last may survive
	// above it; everything between is consumed. When the range has
	// size one both fragments come from the same entry, covering the
	// hole-in-the-middle case.
	below, above := s.cmp.Difference(s.ivs[i], iv)
	if j-i > 1 {
		_, above = s.cmp.Difference(s.ivs[j-1], iv)
	}
	repl := make([]interval.Interval[V], 0, 2)
	if !s.cmp.Empty(below) {
		repl = append(repl, s.cmp.Normalize(below))
	}
	if !s.cmp.Empty(above) {
		repl = append(repl, s.cmp.Normalize(above))
	}
	s.replaceRange(i, j, repl...)
}

// ExclValue removes v from s.
func (s *Set[V]) ExclValue(v V) {
	s.Excl(interval.Point(v))
}

// ExclSet removes every value of o from s.
func (s *Set[V]) ExclSet(o *Set[V]) {
	for _, iv := range o.Intervals() {
		s.Excl(iv)
	}
}

func (s *Set[V]) insertAt(i int, iv interval.Interval[V]) {
	s.ivs = append(s.ivs, interval.Interval[V]{})
	copy(s.ivs[i+1:], s.ivs[i:])
	s.ivs[i] = iv
}

// replaceRange substitutes repl for the entries in [i, j) in one
// splice; no partially edited sequence is observable afterwards.
func (s *Set[V]) replaceRange(i, j int, repl ...interval.Interval[V]) {
	if grow := len(repl) - (j - i); grow > 0 {
		for k := 0; k < grow; k++ {
			s.ivs = append(s.ivs, interval.Interval[V]{})
		}
		copy(s.ivs[j+grow:], s.ivs[j:])
		j += grow
	}
	copy(s.ivs[i:], repl)
	if i+len(repl) < j {
		s.ivs = append(s.ivs[:i+len(repl)], s.ivs[j:]...)
	}
}
