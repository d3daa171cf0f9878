// Package alloc tracks claimed values inside a bounded window of a
// discrete domain. Claimed values carry caller data; free space is
// interval-set arithmetic over the window, so dynamic claims and
// free-run searches never scan value by value.
package alloc

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/autumngray/intervalsets/pkg/interval"
	"github.com/autumngray/intervalsets/pkg/intervalset"
	"github.com/autumngray/intervalsets/pkg/ordered"
)

// ValidateFn vetoes a claim or release of v.
type ValidateFn[V any] func(v V) error

type Table[V comparable, D any] interface {
	Get(v V) (D, error)
	Claim(v V, d D) error
	ClaimDynamic(d D) (V, error)
	ClaimRange(iv interval.Interval[V], d D) error
	ClaimSize(n int, d D) ([]V, error)
	Release(v V) error
	ReleaseRange(iv interval.Interval[V]) error
	Update(v V, d D) error

	Iterate() *Iterator[V, D]

	Count() int
	Has(v V) bool

	IsFree(v V) bool
	FindFree() (V, error)
	FreeSet() *intervalset.Set[V]
	ClaimedSet() *intervalset.Set[V]

	GetAll() map[V]D
}

// New returns a table over the window from..to of dom. Init entries
// are claimed up front, bypassing the validation fn; their errors
// accumulate.
func New[V comparable, D any](dom ordered.Discrete[V], from, to V, initEntries map[V]D, v ValidateFn[V]) (Table[V, D], error) {
	r := &table[V, D]{
		m:          new(sync.RWMutex),
		dom:        dom,
		cmp:        interval.NewCmp[V](dom),
		window:     interval.Closed(from, to),
		entries:    map[V]D{},
		claimed:    intervalset.New[V](dom),
		validateFn: v,
	}

	var errm error
	for v, d := range initEntries {
		if err := r.add(v, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type table[V comparable, D any] struct {
	m          *sync.RWMutex
	dom        ordered.Discrete[V]
	cmp        *interval.Cmp[V]
	window     interval.Interval[V]
	entries    map[V]D
	claimed    *intervalset.Set[V]
	validateFn ValidateFn[V]
}

func (r *table[V, D]) validate(v V, init bool) error {
	if !r.cmp.Contains(r.window, v) {
		return fmt.Errorf("value %v is outside the window %s", v, r.window)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[V, D]) Get(v V) (D, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d D

	if err := r.validate(v, false); err != nil {
		return d, err
	}
	d, ok := r.entries[v]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", v)
	}
	return d, nil
}

func (r *table[V, D]) Claim(v V, d D) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(v, d, false)
}

func (r *table[V, D]) ClaimDynamic(d D) (V, error) {
	r.m.Lock()
	defer r.m.Unlock()

	v, err := r.findFree()
	if err != nil {
		return v, err
	}
	if err := r.add(v, d, false); err != nil {
		return v, err
	}
	return v, nil
}

func (r *table[V, D]) ClaimRange(iv interval.Interval[V], d D) error {
	r.m.Lock()
	defer r.m.Unlock()

	want := intervalset.From[V](r.dom, iv)
	if want.IsEmpty() {
		return fmt.Errorf("cannot claim an empty range %s", iv)
	}
	if !r.freeSet().ContainsSet(want) {
		return fmt.Errorf("range %s is not entirely free", iv)
	}
	vs, err := want.Values()
	if err != nil {
		return err
	}
	for _, v := range vs {
		// getting an error is unlikely as we have a lock
		if err := r.add(v, d, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[V, D]) ClaimSize(n int, d D) ([]V, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if n <= 0 {
		return nil, fmt.Errorf("size %d must be positive", n)
	}
	want := big.NewInt(int64(n))
	iter := r.freeSet().Iterate()
	for iter.Next() {
		iv := iter.Interval()
		run := intervalset.From[V](r.dom, iv)
		size, err := run.Size()
		if err != nil {
			return nil, err
		}
		if size.Cmp(want) < 0 {
			continue
		}
		vs := make([]V, 0, n)
		v := iv.Lo().Value()
		for len(vs) < n {
			vs = append(vs, v)
			next, ok := r.dom.Next(v)
			if !ok {
				break
			}
			v = next
		}
		for _, v := range vs {
			if err := r.add(v, d, false); err != nil {
				return nil, err
			}
		}
		return vs, nil
	}
	return nil, fmt.Errorf("could not find %d consecutive free values", n)
}

func (r *table[V, D]) Release(v V) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(v)
}

func (r *table[V, D]) ReleaseRange(iv interval.Interval[V]) error {
	r.m.Lock()
	defer r.m.Unlock()

	held := intervalset.Intersection(r.claimed, intervalset.From[V](r.dom, iv))
	vs, err := held.Values()
	if err != nil {
		return err
	}
	for _, v := range vs {
		if err := r.delete(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[V, D]) Update(v V, d D) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(v, false); err != nil {
		return err
	}
	if _, ok := r.entries[v]; !ok {
		return fmt.Errorf("entry %v not found", v)
	}
	r.entries[v] = d
	return nil
}

func (r *table[V, D]) Iterate() *Iterator[V, D] {
	r.m.RLock()
	defer r.m.RUnlock()

	keys, _ := r.claimed.Values()
	tbl := make(map[V]D, len(r.entries))
	for k, v := range r.entries {
		tbl[k] = v
	}
	return &Iterator[V, D]{current: -1, keys: keys, table: tbl}
}

func (r *table[V, D]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[V, D]) Has(v V) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[v]
	return ok
}

func (r *table[V, D]) IsFree(v V) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(v)
}

func (r *table[V, D]) isFree(v V) bool {
	_, ok := r.entries[v]
	return !ok
}

func (r *table[V, D]) FindFree() (V, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree()
}

func (r *table[V, D]) findFree() (V, error) {
	free := r.freeSet()
	iter := free.Iterate()
	if iter.Next() {
		return iter.Interval().Lo().Value(), nil
	}
	var zero V
	return zero, fmt.Errorf("no free entry found")
}

func (r *table[V, D]) FreeSet() *intervalset.Set[V] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.freeSet()
}

func (r *table[V, D]) freeSet() *intervalset.Set[V] {
	return intervalset.Difference(intervalset.From[V](r.dom, r.window), r.claimed)
}

func (r *table[V, D]) ClaimedSet() *intervalset.Set[V] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Clone()
}

func (r *table[V, D]) GetAll() map[V]D {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[V]D, len(r.entries))
	for v, d := range r.entries {
		entries[v] = d
	}
	return entries
}

func (r *table[V, D]) add(v V, d D, init bool) error {
	if err := r.validate(v, init); err != nil {
		return err
	}
	if !r.isFree(v) {
		return fmt.Errorf("entry %v already exists", v)
	}
	r.entries[v] = d
	r.claimed.InclValue(v)
	return nil
}

func (r *table[V, D]) delete(v V) error {
	if err := r.validate(v, false); err != nil {
		return err
	}
	delete(r.entries, v)
	r.claimed.ExclValue(v)
	return nil
}
