// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a sorted set of unique
// keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of the sub-tree it roots and the tree
// is rebalanced by rotations as the recursive insert and delete
// routines unwind.  There are no parent pointers: a rotation returns
// the new sub-tree root and the caller stores it in the slot it
// recursed through, so each node is owned by exactly one parent.
//
// Inserting a key that is already present and deleting a key that is
// absent are both no-ops; the boolean results of Insert and Delete
// report which case occurred.
package avl
