// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

const scriptText = `
# build the example tree
insert 10 20 30 40 50 25

contains 25
remove 30
   inorder
check
`

func TestScript(t *testing.T) {
	var b strings.Builder
	s := setupSession(newTextReporter(&b), testConfiguration())

	err := s.runScript(strings.NewReader(scriptText))
	require.NoError(t, err, "script")

	assert.Equal(t, integerKeys(10, 20, 25, 40, 50), s.tree.Keys(), "keys")
	assert.Contains(t, b.String(), "contains: 25 true\n", "contains output")
	assert.Contains(t, b.String(), "in-order traversal: 10 20 25 40 50\n", "traversal output")
	assert.Contains(t, b.String(), "check: ok\n", "check output")
}

func TestScriptFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(fileName, []byte(scriptText), 0600), "write script")

	var b strings.Builder
	s := setupSession(newTextReporter(&b), testConfiguration())

	require.NoError(t, s.run("script", []string{fileName}), "script file")
	assert.Equal(t, 5, s.tree.Count(), "count")

	err := s.run("script", []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.True(t, os.IsNotExist(err), "missing script: %v", err)
}

func TestScriptStopsAtFailure(t *testing.T) {
	var b strings.Builder
	s := setupSession(newTextReporter(&b), testConfiguration())

	text := "insert 1 2 3\nrotate 2\ninsert 4\n"
	err := s.runScript(strings.NewReader(text))

	assert.True(t, errors.Is(err, fault.ErrScriptLine), "line error: %v", err)
	assert.True(t, errors.Is(err, fault.ErrNoSuchCommand), "cause: %v", err)
	assert.Contains(t, err.Error(), "line: 2", "line number")
	assert.Equal(t, 3, s.tree.Count(), "lines after the failure were not run")
}

func TestScriptNotNested(t *testing.T) {
	var b strings.Builder
	s := setupSession(newTextReporter(&b), testConfiguration())

	err := s.runScript(strings.NewReader("script other.txt\n"))
	assert.True(t, errors.Is(err, fault.ErrNoSuchCommand), "nested script: %v", err)
}

func TestScriptQuotedKeys(t *testing.T) {
	var b strings.Builder
	config := testConfiguration()
	config.KeyType = stringKeyType
	s := setupSession(newTextReporter(&b), config)

	text := "insert \"two words\" single 'x y'\ncontains \"two words\"\n"
	require.NoError(t, s.runScript(strings.NewReader(text)), "script")

	assert.Equal(t, []avl.Item{stringKey("single"), stringKey("two words"), stringKey("x y")}, s.tree.Keys(), "keys")
	assert.Contains(t, b.String(), "contains: two words true\n", "contains output")

	err := s.runScript(strings.NewReader("insert \"unbalanced\n"))
	assert.True(t, errors.Is(err, fault.ErrScriptLine), "unbalanced quote: %v", err)
	assert.Contains(t, err.Error(), "line: 1", "line number")
}
