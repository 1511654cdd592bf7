package hamt

import (
	"fmt"
	"strings"
)

const (
	// ChunkWidth is the number of hash bits consumed by each level of a trie.
	ChunkWidth = 6

	// Fanout is the number of logical child slots of a branch (1 << ChunkWidth).
	Fanout = 1 << ChunkWidth

	// HashWidth is the width of an element hash in bits.
	HashWidth = 64

	// MaxDepth is the number of levels a hash can address: ceil(HashWidth / ChunkWidth).
	// Levels 0..9 consume 6 bits each, level 10 consumes the remaining 4 bits.
	MaxDepth = (HashWidth + ChunkWidth - 1) / ChunkWidth

	chunkMask uint64 = Fanout - 1 // 0b_111111
)

// chunkAt extracts a slot number [0..63] for the given trie depth from a hash.
//
// Chunks are taken from the least significant bits up. The second result is false once
// the hash is exhausted (depth >= MaxDepth).
func chunkAt(hash uint64, depth int) (uint, bool) {
	if depth < 0 || depth >= MaxDepth {
		return 0, false
	}

	return uint(hash >> (depth * ChunkWidth) & chunkMask), true
}

// pathMask masks the hash bits consumed by the first depth levels.
func pathMask(depth int) uint64 {
	if depth*ChunkWidth >= HashWidth {
		return ^uint64(0)
	}

	return uint64(1)<<(depth*ChunkWidth) - 1
}

// PathString returns a string of the form "/%02d/%02d..." describing the slots the first
// depth chunks of a hash lead through.
func PathString(hash uint64, depth int) string {
	if depth <= 0 {
		return "/"
	}

	if depth > MaxDepth {
		depth = MaxDepth
	}

	var b strings.Builder

	for d := 0; d < depth; d++ {
		slot, _ := chunkAt(hash, d)
		fmt.Fprintf(&b, "/%02d", slot)
	}

	return b.String()
}
