// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 when the item is respectively less
// than, equal to or greater than the argument
type Item interface {
	Compare(interface{}) int
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Balance - left height minus right height
func (p *Node) Balance() int {
	return balanceFactor(p)
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}
