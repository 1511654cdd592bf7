// Package hamt defines an implementation of a Hash Array Mapped Trie (HAMT) set.
//
// A HAMT consists of a number of connected Twigs (branches, leaves and collisions).
// Every element is routed by its 64-bit hash which is consumed 6 bits at a time, least
// significant chunk first, so a trie is at most MaxDepth (11) levels deep.
//
// Twig variants:
// -------------
//
//   - Branch:    bits  - 64-bit bitmap of occupied slots;
//     twigs - dense children array, len(twigs) == popcount(bits).
//
//   - Leaf:      bits  - the full hash of the element;
//     elems - exactly one element.
//
//   - Collision: bits  - the full hash shared by all the members;
//     elems - two or more distinct elements.
//
// A child occupying slot i of a branch lives at index popcount(bits & (1<<i - 1)) of the
// children array, so no memory is spent on absent children.
//
// Example trie (hash values shown next to the leaves):
// ---------------------------------------------------
//
//	[branch:bmp=..0100101] --+-- [00] [leaf:64]   hash 0b_000001_000000
//	                         |
//	                         +-- [02] [branch:bmp=..11] --+-- [00] [leaf:2]    hash 0b_000000_000010
//	                         |                            |
//	                         |                            `-- [01] [leaf:66]   hash 0b_000001_000010
//	                         |
//	                         `-- [05] [collision:x,y] hash(x) == hash(y) == 5
//
// Twigs are never modified once linked into a trie: an insert rebuilds the path from the
// root down to the changed twig and swaps the root last. Clones share every untouched
// subtree.
package hamt
