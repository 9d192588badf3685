// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 for a leaf, nil sub-tree counts as 0
}

// allocate a new leaf node and account for it in the tree
func (tree *Tree) newNode(key Item) *Node {
	tree.count += 1
	return &Node{
		key:    key,
		height: 1,
	}
}

// release a node that has been unlinked from the tree
//
// all links are cleared so a stale reference can never reach back
// into the live tree
func (tree *Tree) freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.key = nil
	node.height = 0
	tree.count -= 1
}
