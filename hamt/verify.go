package hamt

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/pkg/errors"
)

// Stats describes the shape of a trie.
type Stats struct {
	Branches   int
	Leaves     int
	Collisions int
	Elems      int // leaves plus collision members
	MaxDepth   int // the deepest level holding an element (the root's children are level 1)
}

// Verify walks the whole trie and checks its structural invariants. It returns nil for a
// consistent trie.
//
// Verify counts bits with math/bits regardless of the configured bit counter.
func (t *Trie[T]) Verify() error {
	if t.root.kind != kindBranch {
		return errors.Errorf("hamt: root is a %v, not a branch", t.root.kind)
	}

	elems, err := t.verify(t.root, 0, 0)
	if err != nil {
		return errors.Wrap(err, "hamt: inconsistent trie")
	}

	if elems != t.size {
		return errors.Errorf("hamt: %d elements reachable, size is %d", elems, t.size)
	}

	return nil
}

// verify checks a branch whose path consumed the prefix bits. It returns the number of
// elements beneath.
func (t *Trie[T]) verify(node twig[T], prefix uint64, depth int) (int, error) {
	var path = PathString(prefix, depth)

	if depth >= MaxDepth {
		return 0, errors.Errorf("branch at %s is deeper than %d levels", path, MaxDepth)
	}

	if total := bits.OnesCount64(node.bits); total != len(node.twigs) {
		return 0, errors.Errorf("branch at %s: bitmap has %d bits set, %d children", path, total, len(node.twigs))
	}

	if depth > 0 && len(node.twigs) == 0 {
		return 0, errors.Errorf("branch at %s has no children", path)
	}

	var elems, idx int

	for slot := uint(0); slot < Fanout; slot++ {
		if node.bits&(uint64(1)<<slot) == 0 {
			continue
		}

		var (
			child      = node.twigs[idx]
			childPath  = prefix | uint64(slot)<<(depth*ChunkWidth)
			childDepth = depth + 1
		)

		if i := bits.OnesCount64(node.bits & (uint64(1)<<slot - 1)); i != idx {
			return 0, errors.Errorf("slot %02d at %s maps to index %d, expected %d", slot, path, i, idx)
		}

		idx++

		switch child.kind {
		case kindBranch:
			n, err := t.verify(child, childPath, childDepth)
			if err != nil {
				return 0, err
			}

			elems += n

		case kindLeaf, kindCollision:
			n, err := t.verifyElems(child, childPath, childDepth)
			if err != nil {
				return 0, err
			}

			elems += n

		default:
			return 0, errors.Errorf("slot %02d at %s holds a %v twig", slot, path, child.kind)
		}
	}

	return elems, nil
}

func (t *Trie[T]) verifyElems(node twig[T], prefix uint64, depth int) (int, error) {
	var path = PathString(prefix, depth)

	if node.bits&pathMask(depth) != prefix {
		return 0, errors.Errorf("%v at %s: hash %#016x does not match its path", node.kind, path, node.bits)
	}

	switch {
	case node.kind == kindLeaf && len(node.elems) != 1:
		return 0, errors.Errorf("leaf at %s holds %d elements", path, len(node.elems))
	case node.kind == kindCollision && len(node.elems) < 2:
		return 0, errors.Errorf("collision at %s holds %d elements", path, len(node.elems))
	}

	for i, elem := range node.elems {
		if hash := t.hash(elem); hash != node.bits {
			return 0, errors.Errorf("%v at %s: element %v hashes to %#016x, stored %#016x",
				node.kind, path, elem, hash, node.bits)
		}

		for _, other := range node.elems[i+1:] {
			if t.equal(elem, other) {
				return 0, errors.Errorf("collision at %s holds %v twice", path, elem)
			}
		}
	}

	return len(node.elems), nil
}

// Stats walks the trie and counts its twigs.
func (t *Trie[T]) Stats() Stats {
	var stats Stats

	walk(t.root, 0, &stats)

	return stats
}

func walk[T any](node twig[T], depth int, stats *Stats) {
	switch node.kind {
	case kindBranch:
		stats.Branches++

		for _, child := range node.twigs {
			walk(child, depth+1, stats)
		}

		return

	case kindLeaf:
		stats.Leaves++
	case kindCollision:
		stats.Collisions++
	default:
		return
	}

	stats.Elems += len(node.elems)

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
}

// Dump writes an indented rendering of the whole trie.
func (t *Trie[T]) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "T: size=%d\n", t.size)
	if err != nil {
		return err
	}

	return dump(w, t.root, "  ")
}

func dump[T any](w io.Writer, node twig[T], indent string) error {
	var slot uint

	for _, child := range node.twigs {
		for node.bits&(uint64(1)<<slot) == 0 {
			slot++
		}

		if _, err := fmt.Fprintf(w, "%s[%02d] %v\n", indent, slot, child); err != nil {
			return err
		}

		if child.kind == kindBranch {
			if err := dump(w, child, indent+"  "); err != nil {
				return err
			}
		}

		slot++
	}

	return nil
}

// String returns a short description of the trie.
func (t *Trie[T]) String() string {
	stats := t.Stats()

	return fmt.Sprintf("<hamt|size:%d|branches:%d|leaves:%d|collisions:%d|depth:%d>",
		t.size, stats.Branches, stats.Leaves, stats.Collisions, stats.MaxDepth)
}
