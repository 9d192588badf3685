// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

// Contains - true if an equal key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	for nil != tree {
		switch tree.key.Compare(key) {
		case +1: // tree.key > key
			tree = tree.left
		case -1: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}
