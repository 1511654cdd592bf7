// Package bitcount provides interchangeable population count (Hamming weight) strategies
// for 64-bit words.
//
// All strategies return the same result for every word; they only differ in speed and in
// the platform features they rely on:
//
//   - Loop        - portable, clears the lowest set bit until the word is zero;
//   - Table       - portable, sums a 256-entry byte lookup table;
//   - SWAR        - portable, branch-free parallel sum of bit fields;
//   - Accelerated - hardware POPCNT via github.com/hideo55/go-popcount (falls back to
//     software when the CPU lacks the instruction);
//   - Intrinsic   - math/bits.OnesCount64, lowered to POPCNT by the compiler.
package bitcount

import (
	"math/bits"
	"sort"

	"github.com/hideo55/go-popcount"
)

// Func returns the number of set bits in a word.
type Func func(x uint64) int

// Default is the strategy containers use unless configured otherwise.
var Default Func = Intrinsic

const (
	m1  uint64 = 0x5555555555555555 // 0101...
	m2  uint64 = 0x3333333333333333 // 0011...
	m4  uint64 = 0x0f0f0f0f0f0f0f0f // 00001111...
	h01 uint64 = 0x0101010101010101 // sum of 256^0 + 256^1 + ...
)

var byteTable [256]uint8

func init() {
	for i := 1; i < len(byteTable); i++ {
		byteTable[i] = byteTable[i>>1] + uint8(i&1)
	}
}

var registry = map[string]Func{
	"loop":        Loop,
	"table":       Table,
	"swar":        SWAR,
	"accelerated": Accelerated,
	"intrinsic":   Intrinsic,
}

// Loop counts bits by repeatedly clearing the lowest set one.
func Loop(x uint64) int {
	var n int

	for ; x != 0; n++ {
		x &= x - 1
	}

	return n
}

// Table counts bits one byte at a time.
func Table(x uint64) int {
	return int(byteTable[x&0xFF]) +
		int(byteTable[x>>8&0xFF]) +
		int(byteTable[x>>16&0xFF]) +
		int(byteTable[x>>24&0xFF]) +
		int(byteTable[x>>32&0xFF]) +
		int(byteTable[x>>40&0xFF]) +
		int(byteTable[x>>48&0xFF]) +
		int(byteTable[x>>56])
}

// SWAR counts bits in parallel within the word itself.
func SWAR(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4

	return int((x * h01) >> 56)
}

// Accelerated counts bits with the POPCNT instruction when it is available.
func Accelerated(x uint64) int {
	return int(popcount.Count(x))
}

// Intrinsic counts bits with the compiler intrinsic.
func Intrinsic(x uint64) int {
	return bits.OnesCount64(x)
}

// ByName returns a registered strategy.
func ByName(name string) (Func, bool) {
	fn, ok := registry[name]

	return fn, ok
}

// Names returns the names of all registered strategies in a sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
