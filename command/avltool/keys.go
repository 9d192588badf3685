// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// supported key types
const (
	integerKeyType = "integer"
	stringKeyType  = "string"
)

// keys ordered numerically
type integerKey int64

// Compare - integer key comparison for AVL interface
func (k integerKey) Compare(x interface{}) int {
	j := x.(integerKey)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

func (k integerKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// keys ordered by byte-wise string comparison
type stringKey string

// Compare - string key comparison for AVL interface
func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

func (k stringKey) String() string {
	return string(k)
}

// convert command-line text to a tree key
type keyParser func(string) (avl.Item, error)

func newKeyParser(keyType string) (keyParser, error) {
	switch keyType {
	case integerKeyType:
		return parseIntegerKey, nil
	case stringKeyType:
		return parseStringKey, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func parseIntegerKey(s string) (avl.Item, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
	}
	return integerKey(n), nil
}

func parseStringKey(s string) (avl.Item, error) {
	return stringKey(s), nil
}
