// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present, tree is then unchanged
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	return added
}

// internal routine for insert
func (tree *Tree) insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return tree.newNode(key), true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case -1: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default: // duplicate
		return p, false
	}

	if !added {
		return p, false
	}

	updateHeight(p)

	// only the sub-tree containing key grew, so comparing key with
	// the heavy child selects between single and double rotation
	balance := balanceFactor(p)
	switch {
	case balance > 1:
		if 1 == p.left.key.Compare(key) {
			// single LL rotation
			return rotateRight(p), true
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true

	case balance < -1:
		if -1 == p.right.key.Compare(key) {
			// single RR rotation
			return rotateLeft(p), true
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}
