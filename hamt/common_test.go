package hamt

import (
	"strings"
)

// collidingHash maps every string to its length, so words of equal length collide fully.
func collidingHash(s string) uint64 {
	return uint64(len(s))
}

// foldHash is consistent with strings.EqualFold for ASCII strings.
func foldHash(s string) uint64 {
	return String(strings.ToLower(s))
}

// slotsOf returns the occupied slots of a branch bitmap in the ascending order.
func slotsOf(bitmap uint64) []uint {
	var slots []uint

	for slot := uint(0); slot < Fanout; slot++ {
		if bitmap&(uint64(1)<<slot) != 0 {
			slots = append(slots, slot)
		}
	}

	return slots
}

func collect[T any](t *Trie[T]) []T {
	var elems []T

	for elem := range t.All() {
		elems = append(elems, elem)
	}

	return elems
}
