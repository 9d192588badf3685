// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height, zero for an empty sub-tree
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func updateHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single right rotation, returns the new sub-tree root
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
func rotateRight(y *Node) *Node {
	x := y.left
	if nil == x {
		fault.Panicf("avl: %s: right rotation at: %v", fault.ErrRotationPrecondition, y.key)
	}

	y.left = x.right
	x.right = y

	// y is now below x so must be finalised first
	updateHeight(y)
	updateHeight(x)

	return x
}

// single left rotation, mirror of rotateRight
func rotateLeft(x *Node) *Node {
	y := x.right
	if nil == y {
		fault.Panicf("avl: %s: left rotation at: %v", fault.ErrRotationPrecondition, x.key)
	}

	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
