package hamt

// Cursor is a path from the root of a trie to one of its elements (or to a dead end of a
// failed search).
//
// A cursor keeps copies of the twigs it went through. Twigs of a trie are never modified,
// so a cursor stays valid after the trie it came from is changed: it keeps walking the
// version it was created on.
type Cursor[T any] struct {
	frames []frame[T]
	hash   uint64
	leaf   bool
}

// frame is a position within a branch (a compacted child index) or within a collision
// (a member index).
type frame[T any] struct {
	node twig[T]
	pos  int
}

// IsAtLeaf reports whether the cursor denotes a present element.
func (c *Cursor[T]) IsAtLeaf() bool {
	return c != nil && c.leaf
}

// Elem returns the element the cursor denotes or a zero value if it is not at a leaf.
func (c *Cursor[T]) Elem() T {
	var zero T

	if !c.IsAtLeaf() {
		return zero
	}

	top := c.frames[len(c.frames)-1]

	if top.node.kind == kindCollision {
		return top.node.elems[top.pos]
	}

	return top.node.twigs[top.pos].elems[0]
}

// Hash returns the hash of the current element or, for a failed search, the hash that
// was looked up.
func (c *Cursor[T]) Hash() uint64 {
	if c == nil {
		return 0
	}

	return c.hash
}

// Depth returns the number of branches on the path.
func (c *Cursor[T]) Depth() int {
	if c == nil {
		return 0
	}

	var depth int

	for _, f := range c.frames {
		if f.node.kind == kindBranch {
			depth++
		}
	}

	return depth
}

// Path returns the slots of the path as a "/%02d/%02d..." string.
func (c *Cursor[T]) Path() string {
	return PathString(c.Hash(), c.Depth())
}

// Clone returns an independent copy of the cursor.
func (c *Cursor[T]) Clone() *Cursor[T] {
	if c == nil {
		return nil
	}

	clone := *c
	clone.frames = make([]frame[T], len(c.frames), cap(c.frames))
	copy(clone.frames, c.frames)

	return &clone
}

// Next moves the cursor to the next element in the iteration order. It returns whether
// the cursor is at a leaf afterwards. A cursor that is not at a leaf stays where it is.
func (c *Cursor[T]) Next() bool {
	if !c.IsAtLeaf() {
		return false
	}

	// keep ascending while the frame has no more positions to the right
	for n := len(c.frames); n > 0; n = len(c.frames) {
		top := &c.frames[n-1]

		if top.pos+1 < top.node.width() {
			// step to the right sibling and descend to its leftmost element
			top.pos++
			c.leaf = c.descend()

			return c.leaf
		}

		c.frames = c.frames[:n-1]
	}

	c.leaf = false

	return false
}

// descend walks down the leftmost children starting at the current position of the top
// frame until it reaches an element.
func (c *Cursor[T]) descend() bool {
	for {
		top := c.frames[len(c.frames)-1]

		if top.node.kind == kindCollision {
			c.hash = top.node.bits

			return true
		}

		if top.pos >= len(top.node.twigs) {
			return false
		}

		child := top.node.twigs[top.pos]

		switch child.kind {
		case kindLeaf:
			c.hash = child.bits

			return true

		case kindBranch, kindCollision:
			c.frames = append(c.frames, frame[T]{node: child})

		default:
			return false
		}
	}
}
