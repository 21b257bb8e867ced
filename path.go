package vector

// newPath builds a fresh spine of inner nodes, one per remaining
// level, whose sole leaf descendant is leaf (spec §4.3: "a fresh spine
// of depth shift/L whose sole leaf descendant is the old tail").
// level is the shift value at the level the returned node occupies;
// level == 0 means leaf itself is the (already-a-leaf) result, so
// level == bits yields one inner node whose slot 0 holds leaf.
func newPath[T any](level int, leaf *node[T]) *node[T] {
	if level == 0 {
		return leaf
	}
	n := emptyInner[T]()
	n.children[0] = newPath(level-bits, leaf)
	return n
}

// pushTail grafts tail into the main tree rooted at parent at the
// given level, cloning exactly the nodes along the affected spine and
// sharing every sibling subtree (spec §4.3 Case B, "root does not
// overflow" branch). size is the vector's element count *before* the
// element that triggered the graft is counted.
func pushTail[T any](level int, parent *node[T], tail *node[T], size int) *node[T] {
	idx := ((size - 1) >> level) & mask
	ret := parent.clone()

	var toInsert *node[T]
	switch {
	case level == bits:
		toInsert = tail
	case parent.children[idx] != nil:
		toInsert = pushTail(level-bits, parent.children[idx], tail, size)
	default:
		toInsert = newPath(level-bits, tail)
	}

	ret.children[idx] = toInsert
	return ret
}
