package interval

import (
	"errors"
	"testing"

	"github.com/autumngray/intervalsets/pkg/ordered"
	"github.com/stretchr/testify/assert"
)

func TestBoundaries(t *testing.T) {
	intCmp := NewCmp[int](ordered.Int())
	floatCmp := NewCmp[float64](ordered.Float64())

	intCases := map[string]struct {
		a, b     Boundary[int]
		expected int
	}{
		"SameSideLess":    {Below(1), Below(2), -1},
		"SameSideEqual":   {Above(5), Above(5), 0},
		"SameSideGreater": {Above(7), Above(3), 1},
		"Adjacent":        {Below(6), Above(5), 0},
		"AdjacentFlipped": {Above(5), Below(6), 0},
		"BelowVsAboveLt":  {Below(4), Above(5), -1},
		"BelowVsAboveEq":  {Below(5), Above(5), -1},
		"BelowVsAboveGt":  {Below(8), Above(5), 1},
		"AboveVsBelowLt":  {Above(3), Below(5), -1},
		"AboveVsBelowGt":  {Above(5), Below(5), 1},
	}
	for name, tc := range intCases {
		t.Run("Int"+name, func(t *testing.T) {
			if got := intCmp.Boundaries(tc.a, tc.b); got != tc.expected {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expected, got)
			}
		})
	}

	floatCases := map[string]struct {
		a, b     Boundary[float64]
		expected int
	}{
		"NoAdjacency":   {Below(1.0), Above(0.0), 1},
		"EqualValue":    {Below(0.5), Above(0.5), -1},
		"ExactMatch":    {Above(0.5), Above(0.5), 0},
		"AboveVsBelow":  {Above(0.5), Below(0.5), 1},
		"AboveVsBelow2": {Above(0.25), Below(0.5), -1},
	}
	for name, tc := range floatCases {
		t.Run("Float"+name, func(t *testing.T) {
			if got := floatCmp.Boundaries(tc.a, tc.b); got != tc.expected {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expected, got)
			}
		})
	}
}

func TestBoundaryValue(t *testing.T) {
	c := NewCmp[int](ordered.Int())

	cases := map[string]struct {
		b        Boundary[int]
		v        int
		expected int
	}{
		"BelowIncludes":  {Below(5), 5, -1},
		"BelowPrecedes":  {Below(5), 7, -1},
		"BelowFollows":   {Below(5), 4, 1},
		"AboveIncludes":  {Above(5), 5, 1},
		"AbovePrecedes":  {Above(5), 7, -1},
		"AboveFollows":   {Above(5), 4, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.BoundaryValue(tc.b, tc.v); got != tc.expected {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expected, got)
			}
		})
	}
}

func TestValueAboveBelow(t *testing.T) {
	intCmp := NewCmp[uint8](ordered.Uint8())
	floatCmp := NewCmp[float64](ordered.Float64())

	v, err := intCmp.ValueAbove(Above(uint8(4)))
	assert.NoError(t, err)
	assert.Equal(t, uint8(5), v)

	v, err = intCmp.ValueBelow(Below(uint8(4)))
	assert.NoError(t, err)
	assert.Equal(t, uint8(3), v)

	// Below(x)/Above(x) sit directly beside x.
	v, err = intCmp.ValueAbove(Below(uint8(9)))
	assert.NoError(t, err)
	assert.Equal(t, uint8(9), v)

	_, err = intCmp.ValueAbove(Above(uint8(255)))
	if !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("ValueAbove at the maximum: -want ErrOutOfDomain, +got: %v\n", err)
	}
	_, err = intCmp.ValueBelow(Below(uint8(0)))
	if !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("ValueBelow at the minimum: -want ErrOutOfDomain, +got: %v\n", err)
	}

	_, err = floatCmp.ValueAbove(Above(0.5))
	if !errors.Is(err, ordered.ErrDense) {
		t.Errorf("ValueAbove on dense: -want ErrDense, +got: %v\n", err)
	}
	fv, err := floatCmp.ValueAbove(Below(0.5))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, fv)
}

func TestEmpty(t *testing.T) {
	intCmp := NewCmp[int](ordered.Int())
	floatCmp := NewCmp[float64](ordered.Float64())

	intCases := map[string]struct {
		iv       Interval[int]
		expected bool
	}{
		"Point":        {Point(5), false},
		"Closed":       {Closed(1, 3), false},
		"Reversed":     {Closed(3, 1), true},
		"OpenNoValues": {Open(4, 5), true},
		"OpenOne":      {Open(4, 6), false},
		"ClosedOpen":   {ClosedOpen(4, 5), false},
		"ClosedOpen0":  {ClosedOpen(4, 4), true},
	}
	for name, tc := range intCases {
		t.Run("Int"+name, func(t *testing.T) {
			if got := intCmp.Empty(tc.iv); got != tc.expected {
				t.Errorf("%s: -want %v, +got: %v\n", name, tc.expected, got)
			}
		})
	}

	floatCases := map[string]struct {
		iv       Interval[float64]
		expected bool
	}{
		"Point":      {Point(0.5), false},
		"Open":       {Open(0.4, 0.5), false},
		"OpenSame":   {Open(0.5, 0.5), true},
		"ClosedOpen": {ClosedOpen(0.5, 0.5), true},
	}
	for name, tc := range floatCases {
		t.Run("Float"+name, func(t *testing.T) {
			if got := floatCmp.Empty(tc.iv); got != tc.expected {
				t.Errorf("%s: -want %v, +got: %v\n", name, tc.expected, got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	c := NewCmp[int](ordered.Int())

	cases := map[string]struct {
		a, b     Interval[int]
		overlap  bool
		strict   bool
	}{
		"Separate":   {Closed(1, 3), Closed(6, 9), false, false},
		"Adjacent":   {Closed(1, 3), Closed(4, 9), true, false},
		"Overlap":    {Closed(1, 5), Closed(4, 9), true, true},
		"Contained":  {Closed(1, 9), Closed(4, 5), true, true},
		"EmptyLeft":  {Closed(3, 1), Closed(4, 5), false, false},
		"EmptyRight": {Closed(1, 3), Closed(5, 4), false, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.Overlaps(tc.a, tc.b); got != tc.overlap {
				t.Errorf("%s overlaps: -want %v, +got: %v\n", name, tc.overlap, got)
			}
			if got := c.Overlaps(tc.b, tc.a); got != tc.overlap {
				t.Errorf("%s overlaps flipped: -want %v, +got: %v\n", name, tc.overlap, got)
			}
			if got := c.StrictlyOverlaps(tc.a, tc.b); got != tc.strict {
				t.Errorf("%s strictly: -want %v, +got: %v\n", name, tc.strict, got)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	c := NewCmp[int](ordered.Int())

	a := Closed(1, 10)
	below, above := c.Difference(a, Point(5))
	assert.Equal(t, "1..4", c.Normalize(below).String())
	assert.Equal(t, "6..10", c.Normalize(above).String())

	below, above = c.Difference(a, Closed(8, 20))
	assert.Equal(t, "1..7", c.Normalize(below).String())
	assert.True(t, c.Empty(above))

	below, above = c.Difference(a, Closed(0, 20))
	assert.True(t, c.Empty(below))
	assert.True(t, c.Empty(above))
}

func TestExtentIntersect(t *testing.T) {
	c := NewCmp[int](ordered.Int())

	ext := c.Extent(Closed(1, 3), Closed(7, 9))
	assert.Equal(t, "1..9", ext.String())
	// An empty operand contributes nothing.
	ext = c.Extent(Closed(3, 1), Closed(7, 9))
	assert.Equal(t, "7..9", ext.String())

	in := c.Intersect(Closed(1, 5), Closed(4, 9))
	assert.Equal(t, "4..5", c.Normalize(in).String())
	in = c.Intersect(Closed(1, 3), Closed(6, 9))
	assert.True(t, c.Empty(in))
}

func TestNormalize(t *testing.T) {
	c := NewCmp[int](ordered.Int())

	cases := map[string]struct {
		iv       Interval[int]
		expected string
	}{
		"Open":       {Open(1, 5), "2..4"},
		"ClosedOpen": {ClosedOpen(1, 5), "1..4"},
		"OpenClosed": {OpenClosed(1, 5), "2..5"},
		"Closed":     {Closed(1, 5), "1..5"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.Normalize(tc.iv).String(); got != tc.expected {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expected, got)
			}
		})
	}
}

func TestIntervalString(t *testing.T) {
	cases := map[string]struct {
		iv       Interval[float64]
		expected string
	}{
		"Closed":     {Closed(0.0, 0.5), "0..0.5"},
		"Open":       {Open(0.0, 0.5), "0<..<0.5"},
		"ClosedOpen": {ClosedOpen(0.0, 0.5), "0..<0.5"},
		"OpenClosed": {OpenClosed(0.0, 0.5), "0<..0.5"},
		"Point":      {Point(0.5), "0.5"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.iv.String(); got != tc.expected {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expected, got)
			}
		})
	}

	// Distinct values rendering alike must not collapse to a
	// singleton; only an actually equal pair does.
	if got := Closed(sameRender(1), sameRender(2)).String(); got != "x..x" {
		t.Errorf("distinct values: -want x..x, +got: %s\n", got)
	}
	if got := Point(sameRender(1)).String(); got != "x" {
		t.Errorf("singleton: -want x, +got: %s\n", got)
	}
}

type sameRender int

func (sameRender) String() string { return "x" }
