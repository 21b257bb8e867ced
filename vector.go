package vector

import (
	"fmt"

	"github.com/gopvec/vector/internal/option"
	"github.com/xlab/treeprint"
)

// Vector is a persistent, immutable indexed sequence. The zero value
// is not a valid Vector; use Empty to obtain one. A Vector value is
// exactly four fields (spec §3) and is cheap to copy: copies always
// share the same underlying tree.
type Vector[T any] struct {
	size, shift int
	root, tail  *node[T]
}

// Empty returns the empty Vector of element type T.
func Empty[T any]() Vector[T] {
	return Vector[T]{
		shift: bits,
		root:  emptyInner[T](),
		tail:  emptyLeaf[T](),
	}
}

// Len returns the number of elements held by v.
func (v Vector[T]) Len() int {
	return v.size
}

// IsEmpty reports whether v holds no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// tailOffset is the smallest logical index held in the tail;
// equivalently, the number of elements held in the main tree (spec §3
// "Derived quantity").
func (v Vector[T]) tailOffset() int {
	if v.size < width {
		return 0
	}
	return ((v.size - 1) >> bits) << bits
}

// leafFor returns the leaf block containing logical index i (spec
// §4.2 array_for). i must satisfy 0 <= i < v.size.
func (v Vector[T]) leafFor(i int) *node[T] {
	assertThat(i >= 0 && i < v.size, "index %d out of range [0,%d)", i, v.size)

	if i >= v.tailOffset() {
		return v.tail
	}

	n := v.root
	for level := v.shift; level > 0; level -= bits {
		n = n.children[(i>>level)&mask]
	}
	return n
}

// At returns the element at logical index i. It panics if i is out of
// range — per spec §7 this is a precondition violation, not a
// recoverable error.
func (v Vector[T]) At(i int) T {
	return v.leafFor(i).values[i&mask]
}

// Last returns the final element of v and true, or the zero value and
// false if v is empty.
func (v Vector[T]) Last() (T, bool) {
	if v.size == 0 {
		return option.None[T]().Get()
	}
	return option.Some(v.At(v.size - 1)).Get()
}

// PushBack returns a new Vector with x appended, sharing every
// subtree of v that the append does not touch (spec §4.3).
func (v Vector[T]) PushBack(x T) Vector[T] {
	tailSize := v.size - v.tailOffset()

	if tailSize < width {
		tracer().Debugf("tail has room (%d/%d): appending in place", tailSize, width)
		newTail := v.tail.clone()
		newTail.values[tailSize] = x
		return Vector[T]{size: v.size + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	tracer().Debugf("tail full at %d: grafting into main tree", width)

	var newRoot *node[T]
	newShift := v.shift

	if (v.size >> bits) > (1 << v.shift) {
		tracer().Debugf("root overflow: growing shift from %d to %d", v.shift, v.shift+bits)
		r := emptyInner[T]()
		r.children[0] = v.root
		r.children[1] = newPath(v.shift, v.tail)
		newRoot = r
		newShift = v.shift + bits
	} else {
		newRoot = pushTail(v.shift, v.root, v.tail, v.size)
	}

	newTail := emptyLeaf[T]()
	newTail.values[0] = x

	return Vector[T]{size: v.size + 1, shift: newShift, root: newRoot, tail: newTail}
}

// Dump renders the tree shape of v — its size, shift and tail offset,
// which child slots of each inner node are occupied, the leaf
// contents, and the tail — for use in tests and ad hoc debugging. It
// does not mark which subtrees are shared with other Vector values. It
// never affects the behavior of v.
func (v Vector[T]) Dump() string {
	printer := treeprint.New()
	header := fmt.Sprintf("Vector(size=%d, shift=%d, tailOffset=%d)", v.size, v.shift, v.tailOffset())
	top := printer.AddBranch(header)
	dumpNode(top.AddBranch("root"), v.root, v.shift)
	dumpNode(top.AddBranch("tail"), v.tail, 0)
	return printer.String()
}

func dumpNode[T any](printer treeprint.Tree, n *node[T], level int) {
	if n == nil {
		printer.AddNode("nil")
		return
	}
	if n.leaf || level == 0 {
		printer.AddNode(n.String())
		return
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		dumpNode(printer.AddBranch(fmt.Sprintf("[%d]%s", i, c.String())), c, level-bits)
	}
}
