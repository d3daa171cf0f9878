package ordered

import (
	"math"
	"math/big"
	"net/netip"
	"strings"
	"unicode"

	"github.com/autumngray/intervalsets/pkg/hash"
	"golang.org/x/exp/constraints"
)

type integer[V constraints.Integer] struct {
	min, max V
}

func (d integer[V]) Compare(a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d integer[V]) Hash(v V) uint32 {
	return hash.UInt64(uint64(v))
}

func (d integer[V]) Min() V { return d.min }
func (d integer[V]) Max() V { return d.max }

func (d integer[V]) Next(v V) (V, bool) {
	if v == d.max {
		return v, false
	}
	return v + 1, true
}

func (d integer[V]) Prev(v V) (V, bool) {
	if v == d.min {
		return v, false
	}
	return v - 1, true
}

func (d integer[V]) Distance(a, b V) *big.Int {
	return new(big.Int).Sub(intToBig(b), intToBig(a))
}

func intToBig[V constraints.Integer](v V) *big.Int {
	if v < 0 {
		return new(big.Int).SetInt64(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// Int returns the discrete domain of the native int type.
func Int() Discrete[int] { return integer[int]{math.MinInt, math.MaxInt} }

func Int8() Discrete[int8]   { return integer[int8]{math.MinInt8, math.MaxInt8} }
func Int16() Discrete[int16] { return integer[int16]{math.MinInt16, math.MaxInt16} }
func Int32() Discrete[int32] { return integer[int32]{math.MinInt32, math.MaxInt32} }
func Int64() Discrete[int64] { return integer[int64]{math.MinInt64, math.MaxInt64} }

func Uint8() Discrete[uint8]   { return integer[uint8]{0, math.MaxUint8} }
func Uint16() Discrete[uint16] { return integer[uint16]{0, math.MaxUint16} }
func Uint32() Discrete[uint32] { return integer[uint32]{0, math.MaxUint32} }
func Uint64() Discrete[uint64] { return integer[uint64]{0, math.MaxUint64} }

// Rune returns the discrete domain of unicode code points, 0 through
// unicode.MaxRune. Surrogate gaps are not skipped; the successor of a
// rune is the next code point.
func Rune() Discrete[rune] { return integer[rune]{0, unicode.MaxRune} }

type float64Domain struct{}

// Float64 returns the dense bounded domain of float64 values, with
// -Inf and +Inf as the domain edges. NaN is outside the documented
// input domain.
func Float64() Bounded[float64] { return float64Domain{} }

func (float64Domain) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (float64Domain) Hash(v float64) uint32 {
	if v == 0 {
		// -0.0 compares equal to 0.0 and must hash the same.
		v = 0
	}
	return hash.UInt64(math.Float64bits(v))
}

func (float64Domain) Min() float64 { return math.Inf(-1) }
func (float64Domain) Max() float64 { return math.Inf(1) }

type stringDomain struct{}

// String returns the dense unbounded domain of strings. Sets over it
// support no Universe or Complement.
func String() Domain[string] { return stringDomain{} }

func (stringDomain) Compare(a, b string) int { return strings.Compare(a, b) }
func (stringDomain) Hash(v string) uint32    { return hash.String(v) }

type addrDomain struct {
	min, max netip.Addr
}

// Addr4 returns the discrete domain of IPv4 addresses,
// 0.0.0.0 through 255.255.255.255.
func Addr4() Discrete[netip.Addr] {
	return addrDomain{
		min: netip.AddrFrom4([4]byte{}),
		max: netip.AddrFrom4([4]byte{0xff, 0xff, 0xff, 0xff}),
	}
}

// Addr6 returns the discrete domain of IPv6 addresses,
// :: through ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff.
func Addr6() Discrete[netip.Addr] {
	return addrDomain{
		min: netip.AddrFrom16([16]byte{}),
		max: netip.AddrFrom16([16]byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		}),
	}
}

func (d addrDomain) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (d addrDomain) Hash(v netip.Addr) uint32 {
	a16 := v.As16()
	return hash.Bytes(a16[:])
}

func (d addrDomain) Min() netip.Addr { return d.min }
func (d addrDomain) Max() netip.Addr { return d.max }

func (d addrDomain) Next(v netip.Addr) (netip.Addr, bool) {
	next := v.Next()
	return next, next.IsValid()
}

func (d addrDomain) Prev(v netip.Addr) (netip.Addr, bool) {
	prev := v.Prev()
	return prev, prev.IsValid()
}

func (d addrDomain) Distance(a, b netip.Addr) *big.Int {
	return new(big.Int).Sub(addrToInt(b), addrToInt(a))
}

func addrToInt(a netip.Addr) *big.Int {
	bytes := a.As16()
	return new(big.Int).SetBytes(bytes[:])
}
