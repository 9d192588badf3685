// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the key was not present, tree is then unchanged
func (tree *Tree) Delete(key Item) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	return removed
}

// internal delete routine
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case -1: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.freeNode(p)
			return child, true
		}

		// two children: take over the in-order successor's key, then
		// remove the successor node itself from the right sub-tree
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = tree.delete(successor.key, p.right)
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// delete: restore the balance at p after one of its sub-trees shrank
//
// the key that caused the change is gone, so the shape of the heavy
// child decides between single and double rotation
func rebalance(p *Node) *Node {
	updateHeight(p)

	balance := balanceFactor(p)
	switch {
	case balance > 1:
		if balanceFactor(p.left) >= 0 {
			// single LL rotation
			return rotateRight(p)
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case balance < -1:
		if balanceFactor(p.right) <= 0 {
			// single RR rotation
			return rotateLeft(p)
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
