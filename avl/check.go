// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify every tree invariant without trusting cached data
//
// heights are recomputed from the leaves, key order is checked
// against the bounds inherited from all ancestors and the node count
// is compared with the number of reachable nodes
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// CheckHeightBound - verify the tree is no taller than an AVL tree
// of the same size can be
func (tree *Tree) CheckHeightBound() error {
	h := tree.Height()
	if limit := MaximumHeight(tree.count); h > limit {
		return fmt.Errorf("%w: height: %d  limit: %d  count: %d", fault.ErrHeightBoundExceeded, h, limit, tree.count)
	}
	return nil
}

// MaximumHeight - the worst case height of an AVL tree holding n keys
// i.e. floor(1.44·log₂(n+2))
func MaximumHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(1.44 * math.Log2(float64(n+2))))
}

// internal: returns node count and computed height of the sub-tree;
// low and high are the exclusive bounds set by the ancestors
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}

	if nil != low && low.Compare(p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, low)
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, high)
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if hl-hr > 1 || hr-hl > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrBalanceViolation, p.key, hl, hr)
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  cached: %d  computed: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}

	return 1 + nl + nr, h, nil
}
