// Package hash contains small hash functions for folding values into
// uint32 hashes.
package hash

// Seed is the initial value for incremental folds.
const Seed = uint32(5381)

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func String(s string) uint32 {
	h := Seed
	for i := 0; i < len(s); i++ {
		h = mul33(h) + uint32(s[i])
	}
	return h
}

func Bytes(bs []byte) uint32 {
	h := Seed
	for _, b := range bs {
		h = mul33(h) + uint32(b)
	}
	return h
}

// Fold mixes next into an accumulated hash h.
func Fold(h, next uint32) uint32 {
	return mul33(h) + next
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
