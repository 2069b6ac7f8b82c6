// SPDX-License-Identifier: MIT

package lzss

// treeNode is one intrusive binary-search-tree record, addressed by window
// position rather than by pointer. All three fields default to unusedPos
// ("no link"), which is why detachment just means zeroing the record.
type treeNode struct {
	parent, small, large int
}

// PositionTree is the intrusive BST over window positions, ordered by the
// byte suffix of length Lookahead starting at each position (component B).
// It owns WindowSize+1 node records: one per window slot plus the sentinel
// at rootPos. Window position 0 is never a real node (see constants.go);
// it is also the target of the harmless self-write deleteNode performs when
// asked to remove a position that was never inserted (see the driver's
// early-stream deletes, documented in DESIGN.md).
type PositionTree struct {
	win   *slidingWindow
	nodes [WindowSize + 1]treeNode
}

// Init establishes the tree with a single real node at first. Always
// succeeds; it is a reset, not an incremental operation.
func (t *PositionTree) Init(first int) {
	t.nodes[rootPos] = treeNode{parent: unusedPos, small: unusedPos, large: first}
	t.nodes[first] = treeNode{parent: rootPos, small: unusedPos, large: unusedPos}
}

// contractNode splices a single surviving child into old's slot in the
// tree, then detaches old. Used when old has at most one child.
func (t *PositionTree) contractNode(old, child int) {
	parent := t.nodes[old].parent
	t.nodes[child].parent = parent
	if t.nodes[parent].large == old {
		t.nodes[parent].large = child
	} else {
		t.nodes[parent].small = child
	}
	t.nodes[old] = treeNode{}
}

// replaceNode moves newNode into old's position in the tree: newNode
// inherits old's parent edge and both of old's children, and those
// children's parent links are repointed at newNode. old is detached.
func (t *PositionTree) replaceNode(old, newNode int) {
	parent := t.nodes[old].parent
	if t.nodes[parent].small == old {
		t.nodes[parent].small = newNode
	} else {
		t.nodes[parent].large = newNode
	}

	t.nodes[newNode] = t.nodes[old]
	if t.nodes[newNode].small != unusedPos {
		t.nodes[t.nodes[newNode].small].parent = newNode
	}
	if t.nodes[newNode].large != unusedPos {
		t.nodes[t.nodes[newNode].large].parent = newNode
	}

	t.nodes[old] = treeNode{}
}

// predecessor returns the in-order predecessor of p: the rightmost
// descendant reached by going once to p's small child, then following
// large links to the end. Assumes p has a small child.
func (t *PositionTree) predecessor(p int) int {
	n := t.nodes[p].small
	for t.nodes[n].large != unusedPos {
		n = t.nodes[n].large
	}
	return n
}

// DeleteNode removes p from the tree. Precondition: p is currently in the
// tree, except for the one documented exception (deleting a position never
// inserted is harmless: it degrades to a no-op write against the reserved
// position-0 slot, exploited deliberately by the encoder driver during the
// first WindowSize-Lookahead steps of a stream).
func (t *PositionTree) DeleteNode(p int) {
	switch {
	case t.nodes[p].large == unusedPos:
		t.contractNode(p, t.nodes[p].small)
	case t.nodes[p].small == unusedPos:
		t.contractNode(p, t.nodes[p].large)
	default:
		r := t.predecessor(p)
		t.contractNode(r, t.nodes[r].small)
		t.replaceNode(p, r)
	}
}

// AddNode inserts newPos as a new leaf along its comparison path and
// returns the longest common-prefix length and position encountered during
// the descent (component C's only operation: search and insert are fused).
// If newPos is the reserved EndOfStream sentinel, the tree is left
// untouched and (0, 0) is returned.
func (t *PositionTree) AddNode(newPos int) (matchLen, matchPos int) {
	if newPos == EndOfStream {
		return 0, 0
	}

	testNode := t.nodes[rootPos].large
	bestLen := 0
	bestPos := 0

	for {
		i := 0
		for i < Lookahead && t.win.byteAt(newPos+i) == t.win.byteAt(testNode+i) {
			i++
		}

		var delta int
		if i < Lookahead {
			delta = int(t.win.byteAt(newPos+i)) - int(t.win.byteAt(testNode+i))
		}

		// Non-strict: a later node with an equal-length match overwrites the
		// earlier bestPos. Required for bit-identical output.
		if i >= bestLen {
			bestLen = i
			bestPos = testNode
		}

		if i == Lookahead {
			// Exact match of the whole look-ahead: fold the older copy out
			// of the tree in favor of the newer one.
			t.replaceNode(testNode, newPos)
			return bestLen, bestPos
		}

		var child *int
		if delta >= 0 {
			child = &t.nodes[testNode].large
		} else {
			child = &t.nodes[testNode].small
		}

		if *child == unusedPos {
			*child = newPos
			t.nodes[newPos] = treeNode{parent: testNode, small: unusedPos, large: unusedPos}
			return bestLen, bestPos
		}

		testNode = *child
	}
}
