// Package ordered describes totally ordered value domains. A Domain is the
// strategy object the interval and set packages compare values through; the
// Discrete and Bounded capabilities tell them, once, whether a value type
// has adjacent values and domain edges.
package ordered

import (
	"errors"
	"math/big"
)

var (
	// ErrDense is returned when an operation that needs adjacent values
	// (successor/predecessor, member counting, value iteration) runs
	// against a dense domain.
	ErrDense = errors.New("dense domain: values have no successor or predecessor")

	// ErrUnbounded is returned when an operation that needs the domain
	// edges (universe, complement) runs against an unbounded domain.
	ErrUnbounded = errors.New("unbounded domain: no minimum or maximum value")
)

// Domain is a totally ordered set of values of type V.
type Domain[V any] interface {
	// Compare returns -1 if a sorts before b, +1 if a sorts after b and
	// 0 if they are the same value.
	Compare(a, b V) int
	// Hash folds v into a uint32, for structural hashing of containers
	// holding domain values.
	Hash(v V) uint32
}

// Bounded is a Domain with minimum and maximum values.
type Bounded[V any] interface {
	Domain[V]
	Min() V
	Max() V
}

// Discrete is a Bounded domain whose values have successors and
// predecessors, such as integers or IP addresses. Dense domains (reals,
// strings) must not implement it.
type Discrete[V any] interface {
	Bounded[V]
	// Next returns the value immediately after v, or false if v is the
	// domain maximum.
	Next(v V) (V, bool)
	// Prev returns the value immediately before v, or false if v is the
	// domain minimum.
	Prev(v V) (V, bool)
	// Distance returns the number of successor steps from a to b.
	// Requires a <= b. Full-width domains exceed 64 bits (all of uint64,
	// IPv6), hence the big.Int.
	Distance(a, b V) *big.Int
}

// AsDiscrete reports whether d has the Discrete capability. Callers are
// expected to resolve this once, not per comparison.
func AsDiscrete[V any](d Domain[V]) (Discrete[V], bool) {
	dd, ok := d.(Discrete[V])
	return dd, ok
}

// AsBounded reports whether d has the Bounded capability.
func AsBounded[V any](d Domain[V]) (Bounded[V], bool) {
	bd, ok := d.(Bounded[V])
	return bd, ok
}
