package interval

import (
	"fmt"
	"reflect"
	"strings"
)

// Interval is a possibly-empty contiguous range between two cut
// points. Emptiness, overlap and the other interval predicates depend
// on the value domain and live on Cmp.
type Interval[V any] struct {
	lo, hi Boundary[V]
}

// New returns the interval between the cuts lo and hi.
func New[V any](lo, hi Boundary[V]) Interval[V] {
	return Interval[V]{lo: lo, hi: hi}
}

// Closed returns the interval holding every value from a through b
// inclusive.
func Closed[V any](a, b V) Interval[V] {
	return Interval[V]{lo: Below(a), hi: Above(b)}
}

// Open returns the interval holding every value strictly between a
// and b.
func Open[V any](a, b V) Interval[V] {
	return Interval[V]{lo: Above(a), hi: Below(b)}
}

// ClosedOpen returns the interval holding a and every value up to but
// excluding b.
func ClosedOpen[V any](a, b V) Interval[V] {
	return Interval[V]{lo: Below(a), hi: Below(b)}
}

// OpenClosed returns the interval holding every value after a up
// through b.
func OpenClosed[V any](a, b V) Interval[V] {
	return Interval[V]{lo: Above(a), hi: Above(b)}
}

// Point returns the singleton interval holding only v.
func Point[V any](v V) Interval[V] {
	return Closed(v, v)
}

// Lo returns the lower cut of iv.
func (iv Interval[V]) Lo() Boundary[V] { return iv.lo }

// Hi returns the upper cut of iv.
func (iv Interval[V]) Hi() Boundary[V] { return iv.hi }

// String renders iv as "a..b", marking an open end with "<":
// "a..<b", "a<..b", "a<..<b". A closed singleton renders as the bare
// value.
func (iv Interval[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", iv.lo.v)
	if iv.lo.side == BelowValue && iv.hi.side == AboveValue &&
		reflect.DeepEqual(iv.lo.v, iv.hi.v) {
		return sb.String()
	}
	if iv.lo.side == AboveValue {
		sb.WriteString("<")
	}
	sb.WriteString("..")
	if iv.hi.side == BelowValue {
		sb.WriteString("<")
	}
	fmt.Fprintf(&sb, "%v", iv.hi.v)
	return sb.String()
}
