// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
)

// reporter - renders the outcome of each tree operation
type reporter interface {
	Added(key avl.Item, added bool)
	Removed(key avl.Item, removed bool)
	Contains(key avl.Item, present bool)
	Keys(title string, keys []avl.Item)
	Value(title string, value int)
	Tree(tree *avl.Tree)
	Checked(err error)
	Stressed(result stressResult)
}

type textReporter struct {
	w io.Writer
}

func newTextReporter(w io.Writer) reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Added(key avl.Item, added bool) {
	if added {
		fmt.Fprintf(r.w, "insert: %v\n", key)
	} else {
		fmt.Fprintf(r.w, "insert: %v already present\n", key)
	}
}

func (r *textReporter) Removed(key avl.Item, removed bool) {
	if removed {
		fmt.Fprintf(r.w, "remove: %v\n", key)
	} else {
		fmt.Fprintf(r.w, "remove: %v not present\n", key)
	}
}

func (r *textReporter) Contains(key avl.Item, present bool) {
	fmt.Fprintf(r.w, "contains: %v %t\n", key, present)
}

func (r *textReporter) Keys(title string, keys []avl.Item) {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	fmt.Fprintf(r.w, "%s traversal: %s\n", title, strings.Join(s, " "))
}

func (r *textReporter) Value(title string, value int) {
	fmt.Fprintf(r.w, "%s: %d\n", title, value)
}

func (r *textReporter) Tree(tree *avl.Tree) {
	if tree.IsEmpty() {
		fmt.Fprintf(r.w, "empty tree\n")
		return
	}
	tree.Print(r.w)
}

func (r *textReporter) Checked(err error) {
	if nil == err {
		fmt.Fprintf(r.w, "check: ok\n")
	} else {
		fmt.Fprintf(r.w, "check: failed: %s\n", err)
	}
}

func (r *textReporter) Stressed(result stressResult) {
	fmt.Fprintf(r.w, "stress: operations: %d  seed: %d\n", result.operations, result.seed)
	fmt.Fprintf(r.w, "  inserted: %d  duplicates: %d\n", result.inserted, result.duplicates)
	fmt.Fprintf(r.w, "  removed: %d  absent: %d\n", result.removed, result.absent)
	fmt.Fprintf(r.w, "  final count: %d  maximum height: %d\n", result.count, result.maximumHeight)
}
