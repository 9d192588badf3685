// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// InOrder - sequence of all keys in ascending order
//
// each range over the result walks the tree afresh, so the sequence
// can be restarted; the tree must not be modified during a walk
func (tree *Tree) InOrder() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		inOrder(tree.root, yield)
	}
}

// PreOrder - sequence of keys with each node before its sub-trees
func (tree *Tree) PreOrder() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		preOrder(tree.root, yield)
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	return collect(tree.count, tree.InOrder())
}

// PreOrderKeys - all keys in pre-order
func (tree *Tree) PreOrderKeys() []Item {
	return collect(tree.count, tree.PreOrder())
}

func collect(n int, seq iter.Seq[Item]) []Item {
	keys := make([]Item, 0, n)
	for key := range seq {
		keys = append(keys, key)
	}
	return keys
}

// internal walkers return false once yield has asked to stop
func inOrder(p *Node, yield func(Item) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, yield) && yield(p.key) && inOrder(p.right, yield)
}

func preOrder(p *Node, yield func(Item) bool) bool {
	if nil == p {
		return true
	}
	return yield(p.key) && preOrder(p.left, yield) && preOrder(p.right, yield)
}
