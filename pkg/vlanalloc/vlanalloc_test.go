package vlanalloc

import (
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		initEntries       map[uint16]labels.Set
		newSuccessEntries map[uint16]labels.Set
		newFailedEntries  map[uint16]labels.Set
		expectedEntries   int
	}{

		"Normal": {
			initEntries: initEntries,
			newSuccessEntries: map[uint16]labels.Set{
				10: map[string]string{},
				11: map[string]string{},
			},
			newFailedEntries: map[uint16]labels.Set{
				0:    map[string]string{},
				4095: map[string]string{},
			},
			expectedEntries: 5,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New()
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d)
				assert.NoError(t, err)
			}
			for id, d := range tc.newFailedEntries {
				err := r.Claim(id, d)
				assert.Error(t, err)
			}
			// check table
			for id := range tc.initEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting initEntry: %d\n", name, id)
				}
			}
			for id := range tc.newSuccessEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting success claim entry: %d\n", name, id)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
		})
	}
}

func TestClaimDynamic(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	// 0 and 1 are reserved; the first free ID is 2.
	id, err := r.ClaimDynamic(map[string]string{"purpose": "test"})
	assert.NoError(t, err)
	assert.Equal(t, uint16(2), id)

	// A claimed run is skipped past.
	err = r.ClaimRange(3, 10, map[string]string{"purpose": "pool"})
	assert.NoError(t, err)
	id, err = r.ClaimDynamic(map[string]string{"purpose": "test"})
	assert.NoError(t, err)
	assert.Equal(t, uint16(11), id)

	assert.Equal(t, "{12..4094}", r.FreeSet().String())
}

func TestGetByLabel(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	assert.NoError(t, r.Claim(100, map[string]string{"tenant": "red"}))
	assert.NoError(t, r.Claim(101, map[string]string{"tenant": "blue"}))
	assert.NoError(t, r.Claim(102, map[string]string{"tenant": "red"}))

	sel, err := labels.Parse("tenant=red")
	assert.NoError(t, err)

	entries := r.GetByLabel(sel)
	assert.Equal(t, 2, len(entries))
	for _, id := range []uint16{100, 102} {
		if _, ok := entries[id]; !ok {
			t.Errorf("expecting entry: %d\n", id)
		}
	}
}

func TestReleaseReserved(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	assert.Error(t, r.Release(4095))
	assert.True(t, r.Has(4095))
}
