package hamt

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// String hashes a string with 64-bit murmur3.
func String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

// Bytes hashes a byte slice with 64-bit murmur3.
func Bytes(b []byte) uint64 {
	return murmur3.Sum64(b)
}

// Seeded returns a murmur3 string hasher using the given seed.
func Seeded(seed uint32) func(string) uint64 {
	return func(s string) uint64 {
		return murmur3.Sum64WithSeed([]byte(s), seed)
	}
}

// Identity uses an integer as its own hash. Small consecutive integers land in distinct
// root slots; sparse or strided integers can build deep tries, see Integer.
func Identity[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// Integer hashes the little-endian bytes of an integer with 64-bit murmur3.
func Integer[T constraints.Integer](v T) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(v))

	return murmur3.Sum64(buf[:])
}
