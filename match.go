// SPDX-License-Identifier: MIT
// Adapted from: github.com/woozymasta/lzo (match.go)

package lzss

// matchEngine is the thin facade of component C: given the current window
// position, it inserts that position into the tree and returns the result
// of that insertion. There is no separate search-only operation — search
// and insertion are fused to amortise the tree descent, the same role the
// teacher's advanceMatchFinder plays for its hash-chain dictionary.
type matchEngine struct {
	tree *PositionTree
}

// searchAndInsert queries the dictionary for the longest match against the
// look-ahead starting at pos, inserting pos into the tree in the process.
func (m *matchEngine) searchAndInsert(pos int) (matchLen, matchPos int) {
	return m.tree.AddNode(pos)
}
