package ipalloc

import (
	"fmt"
	"net/netip"

	"github.com/autumngray/intervalsets/pkg/alloc"
	"github.com/autumngray/intervalsets/pkg/intervalset"
	"github.com/autumngray/intervalsets/pkg/ordered"
	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

type IPTable interface {
	Get(addr string) (table.Route, error)
	Claim(addr string, d table.Route) error
	Release(addr string) error
	Update(addr string, d table.Route) error

	Count() int
	Has(addr string) bool

	IsFree(addr string) bool
	FindFree() (netip.Addr, error)
	FreeSet() *intervalset.Set[netip.Addr]

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

// NewTable returns a claim table over the address window from..to.
// Both ends must belong to the same family.
func NewTable(from, to netip.Addr) (IPTable, error) {
	if from.Is4() != to.Is4() {
		return nil, fmt.Errorf("mixed address families in range from %s to %s", from, to)
	}
	dom := ordered.Addr6()
	if from.Is4() {
		dom = ordered.Addr4()
	}
	t, err := alloc.New[netip.Addr, table.Route](dom, from, to, nil, nil)
	if err != nil {
		return nil, err
	}
	return &ipTable{
		table:   t,
		ipRange: netipx.IPRangeFrom(from, to),
	}, nil
}

type ipTable struct {
	table   alloc.Table[netip.Addr, table.Route]
	ipRange netipx.IPRange
}

func (r *ipTable) Get(addr string) (table.Route, error) {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return table.Route{}, err
	}
	return r.table.Get(claimIP)
}

func (r *ipTable) Claim(addr string, d table.Route) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	if !r.table.IsFree(claimIP) {
		return fmt.Errorf("claim failed ip %s already claimed", addr)
	}
	return r.table.Claim(claimIP, d)
}

func (r *ipTable) Release(addr string) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	return r.table.Release(claimIP)
}

func (r *ipTable) Update(addr string, d table.Route) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	if r.table.IsFree(claimIP) {
		return fmt.Errorf("update failed ip %s not claimed", addr)
	}
	return r.table.Update(claimIP, d)
}

func (r *ipTable) Count() int {
	return r.table.Count()
}

func (r *ipTable) Has(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.table.Has(claimIP)
}

func (r *ipTable) IsFree(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.table.IsFree(claimIP)
}

func (r *ipTable) FindFree() (netip.Addr, error) {
	return r.table.FindFree()
}

func (r *ipTable) FreeSet() *intervalset.Set[netip.Addr] {
	return r.table.FreeSet()
}

func (r *ipTable) GetAll() table.Routes {
	var routes table.Routes
	iter := r.table.Iterate()
	for iter.Next() {
		routes = append(routes, iter.Data())
	}
	return routes
}

func (r *ipTable) GetByLabel(selector labels.Selector) table.Routes {
	var routes table.Routes

	iter := r.table.Iterate()
	for iter.Next() {
		route := iter.Data()
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	claimIP, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(claimIP) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return claimIP, nil
}
