package intervalset

import (
	"fmt"
	"sort"

	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/ordered"
	"k8s.io/apimachinery/pkg/util/sets"
)

// From returns the set over d holding every value of the given
// intervals. Empties are dropped, the rest sorted and coalesced in
// one pass; malformed raw intervals (lower past upper) are empty and
// therefore dropped silently.
func From[V any](d ordered.Domain[V], ivs ...interval.Interval[V]) *Set[V] {
	s := New(d)
	rr := make([]interval.Interval[V], 0, len(ivs))
	for _, iv := range ivs {
		iv = s.cmp.Normalize(iv)
		if !s.cmp.Empty(iv) {
			rr = append(rr, iv)
		}
	}
	sort.Slice(rr, func(i, j int) bool { return s.cmp.Compare(rr[i], rr[j]) < 0 })
	for _, r := range rr {
		if n := len(s.ivs); n > 0 && s.cmp.Overlaps(s.ivs[n-1], r) {
			s.ivs[n-1] = s.cmp.Extent(s.ivs[n-1], r)
			continue
		}
		s.ivs = append(s.ivs, r)
	}
	return s
}

// FromValues returns the set over d holding exactly the given values.
func FromValues[V any](d ordered.Domain[V], vs ...V) *Set[V] {
	ivs := make([]interval.Interval[V], 0, len(vs))
	for _, v := range vs {
		ivs = append(ivs, interval.Point(v))
	}
	return From(d, ivs...)
}

// FromSet returns the set over d holding the members of ks.
func FromSet[V comparable](d ordered.Domain[V], ks sets.Set[V]) *Set[V] {
	return FromValues(d, ks.UnsortedList()...)
}

// FromBits returns the set whose members are the values at the set
// bit positions of words, counting from base: bit b of words[w]
// stands for base advanced w*64+b successor steps. Runs of
// consecutive set bits are already sorted and separated by at least
// one clear bit, so they are emitted as entries directly. A set bit
// past the domain maximum is a construction error.
func FromBits[V any](d ordered.Discrete[V], base V, words []uint64) (*Set[V], error) {
	s := New[V](d)
	cur := base
	curOK := true
	run := false
	var runStart, last V
	for wi, w := range words {
		for b := 0; b < 64; b++ {
			bit := w&(1<<uint(b)) != 0
			if !curOK {
				if bit {
					return nil, fmt.Errorf("bit %d is past the domain maximum", wi*64+b)
				}
				continue
			}
			if bit {
				if !run {
					run = true
					runStart = cur
				}
				last = cur
			} else if run {
				run = false
				s.ivs = append(s.ivs, interval.Closed(runStart, last))
			}
			cur, curOK = d.Next(cur)
		}
	}
	if run {
		s.ivs = append(s.ivs, interval.Closed(runStart, last))
	}
	return s, nil
}
