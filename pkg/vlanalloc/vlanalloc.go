// Package vlanalloc claims VLAN IDs 0 through 4095 with label
// payloads. The untagged, default and reserved IDs are pre-claimed
// and protected against caller claims.
package vlanalloc

import (
	"fmt"

	"github.com/autumngray/intervalsets/pkg/alloc"
	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/intervalset"
	"github.com/autumngray/intervalsets/pkg/ordered"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	MinID uint16 = 0
	MaxID uint16 = 4095
)

type VLANTable interface {
	Get(id uint16) (labels.Set, error)
	Claim(id uint16, d labels.Set) error
	ClaimDynamic(d labels.Set) (uint16, error)
	ClaimRange(from, to uint16, d labels.Set) error
	Release(id uint16) error
	Update(id uint16, d labels.Set) error

	Count() int
	Has(id uint16) bool

	IsFree(id uint16) bool
	FindFree() (uint16, error)
	FreeSet() *intervalset.Set[uint16]

	GetAll() map[uint16]labels.Set
	GetByLabel(selector labels.Selector) map[uint16]labels.Set
}

var initEntries = map[uint16]labels.Set{
	0:    map[string]string{"type": "untagged", "status": "reserved"},
	1:    map[string]string{"type": "untagged", "status": "reserved"},
	4095: map[string]string{"type": "untagged", "status": "reserved"},
}

func New() (VLANTable, error) {
	t, err := alloc.New[uint16, labels.Set](
		ordered.Uint16(),
		MinID,
		MaxID,
		initEntries,
		func(id uint16) error {
			switch id {
			case 0:
				return fmt.Errorf("VLAN %d is the untagged VLAN, cannot be added to the database", id)
			case 1:
				return fmt.Errorf("VLAN %d is the default VLAN, cannot be added to the database", id)
			case 4095:
				return fmt.Errorf("VLAN %d is reserved, cannot be added to the database", id)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{table: t}, nil
}

type vlanTable struct {
	table alloc.Table[uint16, labels.Set]
}

func (r *vlanTable) Get(id uint16) (labels.Set, error) {
	return r.table.Get(id)
}

func (r *vlanTable) Claim(id uint16, d labels.Set) error {
	if !r.table.IsFree(id) {
		return fmt.Errorf("id %d is already claimed", id)
	}
	return r.table.Claim(id, d)
}

func (r *vlanTable) ClaimDynamic(d labels.Set) (uint16, error) {
	return r.table.ClaimDynamic(d)
}

func (r *vlanTable) ClaimRange(from, to uint16, d labels.Set) error {
	return r.table.ClaimRange(interval.Closed(from, to), d)
}

func (r *vlanTable) Release(id uint16) error {
	return r.table.Release(id)
}

func (r *vlanTable) Update(id uint16, d labels.Set) error {
	return r.table.Update(id, d)
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(id uint16) bool {
	return r.table.Has(id)
}

func (r *vlanTable) IsFree(id uint16) bool {
	return r.table.IsFree(id)
}

func (r *vlanTable) FindFree() (uint16, error) {
	return r.table.FindFree()
}

func (r *vlanTable) FreeSet() *intervalset.Set[uint16] {
	return r.table.FreeSet()
}

func (r *vlanTable) GetAll() map[uint16]labels.Set {
	return r.table.GetAll()
}

func (r *vlanTable) GetByLabel(selector labels.Selector) map[uint16]labels.Set {
	entries := map[uint16]labels.Set{}

	iter := r.table.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Data()) {
			entries[iter.Value()] = iter.Data()
		}
	}
	return entries
}
