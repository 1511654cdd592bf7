package hamt

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/aglyzov/go-hamt/bitcount"
)

// Trie is a set of elements organized as a Hash Array Mapped Trie.
//
// A Trie is not safe for concurrent mutation. Clones never write to shared twigs and may
// be used from different goroutines.
type Trie[T any] struct {
	root  twig[T] // always a branch; the only branch allowed to be empty
	size  int
	hash  func(T) uint64
	equal func(a, b T) bool
	count bitcount.Func
	log   *slog.Logger
}

// New returns a new Trie of comparable elements using == for equality.
//
// Note that floating point NaNs never compare equal, so every inserted NaN is added.
func New[T comparable](hash func(T) uint64, opts ...Option) *Trie[T] {
	return NewFunc(hash, func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns a new Trie using the given hash and equality functions.
//
// The hash must be consistent with equality: equal elements must hash equal.
func NewFunc[T any](hash func(T) uint64, equal func(a, b T) bool, opts ...Option) *Trie[T] {
	if hash == nil {
		panic("hamt: nil hash function")
	}

	if equal == nil {
		panic("hamt: nil equality function")
	}

	o := buildOptions(opts)

	return &Trie[T]{
		root:  twig[T]{kind: kindBranch},
		hash:  hash,
		equal: equal,
		count: o.count,
		log:   o.logger,
	}
}

// Size returns the number of distinct elements in the trie.
func (t *Trie[T]) Size() int {
	return t.size
}

// Len returns the number of distinct elements in the trie.
func (t *Trie[T]) Len() int {
	return t.size
}

// Clone returns a copy of the trie sharing all of its twigs. Both tries can be modified
// independently afterwards.
func (t *Trie[T]) Clone() *Trie[T] {
	clone := *t

	return &clone
}

// Insert adds an element to the trie. It returns true if the element was not present.
func (t *Trie[T]) Insert(val T) bool {
	root, added := t.insert(t.root, t.hash(val), val, 0)
	if !added {
		return false
	}

	t.root = root
	t.size++

	return true
}

// InsertAll adds a number of elements and returns how many of them were new.
func (t *Trie[T]) InsertAll(vals ...T) int {
	var added int

	for _, val := range vals {
		if t.Insert(val) {
			added++
		}
	}

	return added
}

// insert returns a replacement for the branch at the given depth with the element added.
// The branch itself is left intact.
func (t *Trie[T]) insert(node twig[T], hash uint64, val T, depth int) (twig[T], bool) {
	slot, ok := chunkAt(hash, depth)
	if !ok {
		panic("hamt: ran out of hash bits while inserting")
	}

	var (
		mask = uint64(1) << slot
		idx  = t.count(node.bits & (mask - 1))
	)

	if node.bits&mask == 0 {
		// the branch doesn't have the slot yet - add a leaf
		return node.withChild(mask, idx, newLeaf(hash, val)), true
	}

	child := node.twigs[idx]

	switch child.kind {
	case kindBranch:
		sub, added := t.insert(child, hash, val, depth+1)
		if !added {
			return node, false
		}

		return node.withReplaced(idx, sub), true

	case kindLeaf:
		if child.bits != hash {
			// different hashes sharing the chunks so far - split
			return node.withReplaced(idx, newBranch2(child, newLeaf(hash, val), depth+1)), true
		}

		if t.equal(child.elems[0], val) {
			return node, false
		}

		t.logCollision(hash, depth+1, 2)

		return node.withReplaced(idx, newCollision(hash, child.elems[0], val)), true

	case kindCollision:
		if child.bits != hash {
			return node.withReplaced(idx, newBranch2(child, newLeaf(hash, val), depth+1)), true
		}

		for _, elem := range child.elems {
			if t.equal(elem, val) {
				return node, false
			}
		}

		t.logCollision(hash, depth+1, len(child.elems)+1)

		return node.withReplaced(idx, child.withMember(val)), true
	}

	panic(fmt.Sprintf("hamt: unexpected %v twig at %s", child.kind, PathString(hash, depth+1)))
}

func (t *Trie[T]) logCollision(hash uint64, depth, members int) {
	if t.log == nil {
		return
	}

	t.log.Debug("hash collision",
		"hash", fmt.Sprintf("%#016x", hash),
		"path", PathString(hash, depth),
		"members", members,
	)
}

// Find looks an element up. The returned cursor reports IsAtLeaf() == true if the
// element is present and denotes the stored element in that case.
func (t *Trie[T]) Find(val T) *Cursor[T] {
	var (
		hash = t.hash(val)
		cur  = &Cursor[T]{hash: hash, frames: make([]frame[T], 0, 4)}
		node = t.root
	)

	for depth := 0; ; depth++ {
		slot, ok := chunkAt(hash, depth)
		if !ok {
			return cur // dead end
		}

		var (
			mask = uint64(1) << slot
			idx  = t.count(node.bits & (mask - 1))
		)

		cur.frames = append(cur.frames, frame[T]{node: node, pos: idx})

		if node.bits&mask == 0 {
			return cur // the branch doesn't have the slot
		}

		child := node.twigs[idx]

		switch child.kind {
		case kindBranch:
			node = child

		case kindLeaf:
			cur.leaf = child.bits == hash && t.equal(child.elems[0], val)

			return cur

		case kindCollision:
			if child.bits != hash {
				return cur
			}

			for i, elem := range child.elems {
				if t.equal(elem, val) {
					cur.frames = append(cur.frames, frame[T]{node: child, pos: i})
					cur.leaf = true

					break
				}
			}

			return cur

		default:
			return cur
		}
	}
}

// Contains reports whether an element is present in the trie.
func (t *Trie[T]) Contains(val T) bool {
	return t.Find(val).IsAtLeaf()
}

// First returns a cursor at the first element in the iteration order. The cursor is not
// at a leaf if the trie is empty.
func (t *Trie[T]) First() *Cursor[T] {
	cur := &Cursor[T]{}

	if len(t.root.twigs) == 0 {
		return cur
	}

	cur.frames = append(make([]frame[T], 0, 4), frame[T]{node: t.root})
	cur.leaf = cur.descend()

	return cur
}

// All returns a sequence of all the elements in the trie.
//
// The order follows the slot order of every branch (hash chunk order); members of a
// collision follow their insertion order. Each call to the sequence starts a fresh
// traversal of the trie as it is at that moment.
func (t *Trie[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := t.First(); cur.IsAtLeaf(); cur.Next() {
			if !yield(cur.Elem()) {
				return
			}
		}
	}
}

// Elems returns all the elements in the iteration order.
func (t *Trie[T]) Elems() []T {
	elems := make([]T, 0, t.size)

	for elem := range t.All() {
		elems = append(elems, elem)
	}

	return elems
}
