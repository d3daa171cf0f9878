// Package ipalloc applies interval sets to IP addresses: address sets
// bridged to netipx ranges and prefixes, and a claim table carrying
// nipam routes.
package ipalloc

import (
	"net/netip"

	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/intervalset"
	"github.com/autumngray/intervalsets/pkg/ordered"
	"go4.org/netipx"
)

// Set holds IP addresses of both families as canonical interval sets,
// one per family.
type Set struct {
	v4 *intervalset.Set[netip.Addr]
	v6 *intervalset.Set[netip.Addr]
}

func NewSet() *Set {
	return &Set{
		v4: intervalset.New[netip.Addr](ordered.Addr4()),
		v6: intervalset.New[netip.Addr](ordered.Addr6()),
	}
}

// FromIPSet converts an already-canonical netipx set; its sorted
// disjoint ranges are taken as they come.
func FromIPSet(is *netipx.IPSet) *Set {
	s := NewSet()
	for _, r := range is.Ranges() {
		s.AddRange(r)
	}
	return s
}

func (s *Set) family(a netip.Addr) *intervalset.Set[netip.Addr] {
	if a.Is4() {
		return s.v4
	}
	return s.v6
}

func (s *Set) AddRange(r netipx.IPRange) {
	if !r.IsValid() {
		return
	}
	s.family(r.From()).Incl(interval.Closed(r.From(), r.To()))
}

func (s *Set) RemoveRange(r netipx.IPRange) {
	if !r.IsValid() {
		return
	}
	s.family(r.From()).Excl(interval.Closed(r.From(), r.To()))
}

func (s *Set) AddPrefix(p netip.Prefix) {
	s.AddRange(netipx.RangeOfPrefix(p))
}

func (s *Set) RemovePrefix(p netip.Prefix) {
	s.RemoveRange(netipx.RangeOfPrefix(p))
}

func (s *Set) AddAddr(a netip.Addr) {
	if a.IsValid() {
		s.family(a).InclValue(a)
	}
}

func (s *Set) RemoveAddr(a netip.Addr) {
	if a.IsValid() {
		s.family(a).ExclValue(a)
	}
}

func (s *Set) Contains(a netip.Addr) bool {
	if !a.IsValid() {
		return false
	}
	return s.family(a).Contains(a)
}

func (s *Set) IsEmpty() bool {
	return s.v4.IsEmpty() && s.v6.IsEmpty()
}

// Ranges returns all addresses as sorted netipx ranges, IPv4 first.
func (s *Set) Ranges() []netipx.IPRange {
	var rr []netipx.IPRange
	for _, fam := range []*intervalset.Set[netip.Addr]{s.v4, s.v6} {
		iter := fam.Iterate()
		for iter.Next() {
			iv := iter.Interval()
			rr = append(rr, netipx.IPRangeFrom(iv.Lo().Value(), iv.Hi().Value()))
		}
	}
	return rr
}

// IPSet converts back to a netipx set.
func (s *Set) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range s.Ranges() {
		b.AddRange(r)
	}
	return b.IPSet()
}

// Prefixes returns the minimal CIDR cover of the set.
func (s *Set) Prefixes() ([]netip.Prefix, error) {
	is, err := s.IPSet()
	if err != nil {
		return nil, err
	}
	return is.Prefixes(), nil
}
