package hamt

import (
	"fmt"
	"strings"
)

type kind uint8

const (
	kindEmpty kind = iota // zero value; never stored as a child
	kindLeaf
	kindBranch
	kindCollision
)

func (k kind) String() string {
	switch k {
	case kindEmpty:
		return "Empty"
	case kindLeaf:
		return "Leaf"
	case kindBranch:
		return "Branch"
	case kindCollision:
		return "Collision"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// twig is a uniform element of a trie (meaning a branch, a leaf or a collision).
type twig[T any] struct {
	kind  kind
	bits  uint64    // branch: slot bitmap; leaf, collision: the full element hash
	twigs []twig[T] // branch: children in slot order, len == popcount(bits)
	elems []T       // leaf: a single element; collision: two or more elements
}

func newLeaf[T any](hash uint64, val T) twig[T] {
	return twig[T]{
		kind:  kindLeaf,
		bits:  hash,
		elems: []T{val},
	}
}

// newCollision groups an existing leaf element with a new one of the same hash.
func newCollision[T any](hash uint64, old, val T) twig[T] {
	return twig[T]{
		kind:  kindCollision,
		bits:  hash,
		elems: []T{old, val},
	}
}

// newBranch2 builds a branch chain holding two leaf-like twigs (leaves or collisions) of
// different hashes. The chain descends while both hashes share a chunk.
func newBranch2[T any](one, two twig[T], depth int) twig[T] {
	var (
		slot1, ok1 = chunkAt(one.bits, depth)
		slot2, ok2 = chunkAt(two.bits, depth)
	)

	if !ok1 || !ok2 {
		panic("hamt: ran out of hash bits while splitting a leaf")
	}

	if slot1 == slot2 {
		// both twigs have the same chunk - append a branch
		return twig[T]{
			kind:  kindBranch,
			bits:  uint64(1) << slot1,
			twigs: []twig[T]{newBranch2(one, two, depth+1)},
		}
	}

	// end with two twigs in slot order
	if slot2 < slot1 {
		one, two = two, one
	}

	return twig[T]{
		kind:  kindBranch,
		bits:  uint64(1)<<slot1 | uint64(1)<<slot2,
		twigs: []twig[T]{one, two},
	}
}

// withChild returns a copy of a branch with a new child spliced in at the compacted index.
func (tw twig[T]) withChild(mask uint64, idx int, child twig[T]) twig[T] {
	var (
		curTwigs = tw.twigs
		newTwigs = make([]twig[T], len(curTwigs)+1)
	)

	copy(newTwigs[:idx], curTwigs[:idx])
	newTwigs[idx] = child
	copy(newTwigs[idx+1:], curTwigs[idx:])

	return twig[T]{
		kind:  kindBranch,
		bits:  tw.bits | mask,
		twigs: newTwigs,
	}
}

// withReplaced returns a copy of a branch with the child at the compacted index replaced.
func (tw twig[T]) withReplaced(idx int, child twig[T]) twig[T] {
	newTwigs := make([]twig[T], len(tw.twigs))

	copy(newTwigs, tw.twigs)
	newTwigs[idx] = child

	return twig[T]{
		kind:  kindBranch,
		bits:  tw.bits,
		twigs: newTwigs,
	}
}

// withMember returns a copy of a collision with one more element.
func (tw twig[T]) withMember(val T) twig[T] {
	newElems := make([]T, len(tw.elems)+1)

	copy(newElems, tw.elems)
	newElems[len(tw.elems)] = val

	return twig[T]{
		kind:  kindCollision,
		bits:  tw.bits,
		elems: newElems,
	}
}

// width returns the number of positions a cursor can take within the twig.
func (tw twig[T]) width() int {
	if tw.kind == kindCollision {
		return len(tw.elems)
	}

	return len(tw.twigs)
}

func (tw twig[T]) String() string {
	var b strings.Builder

	b.WriteString("<hamt|" + tw.kind.String())

	switch tw.kind {
	case kindBranch:
		fmt.Fprintf(&b, "|bmp:%064b|%d", tw.bits, len(tw.twigs))
	case kindLeaf:
		fmt.Fprintf(&b, "|hash:%#016x|%v", tw.bits, tw.elems[0])
	case kindCollision:
		fmt.Fprintf(&b, "|hash:%#016x|%v", tw.bits, tw.elems)
	}

	b.WriteByte('>')

	return b.String()
}
