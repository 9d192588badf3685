// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type nested struct {
	Operations int `gluamapper:"operations" yaml:"operations"`
}

type testConfiguration struct {
	KeyType string            `gluamapper:"key_type" yaml:"key_type"`
	Keys    []string          `gluamapper:"keys" yaml:"keys"`
	Check   bool              `gluamapper:"check" yaml:"check"`
	Nested  nested            `gluamapper:"nested" yaml:"nested"`
	Levels  map[string]string `gluamapper:"levels" yaml:"levels"`
}

const luaText = `
local base = "str" .. "ing"
return {
    key_type = base,
    keys = { "10", "20", "30" },
    check = true,
    nested = {
        operations = 250,
    },
    levels = {
        main = "info",
        DEFAULT = "critical",
    },
}
`

const yamlText = `
key_type: string
keys: ["10", "20", "30"]
check: true
nested:
  operations: 250
levels:
  main: info
  DEFAULT: critical
`

func writeFile(t *testing.T, name string, text string) string {
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write: %s", name)
	return fileName
}

func expected() testConfiguration {
	return testConfiguration{
		KeyType: "string",
		Keys:    []string{"10", "20", "30"},
		Check:   true,
		Nested:  nested{Operations: 250},
		Levels: map[string]string{
			"main":    "info",
			"DEFAULT": "critical",
		},
	}
}

func TestParseLua(t *testing.T) {
	fileName := writeFile(t, "test.lua", luaText)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")
	assert.Equal(t, expected(), config, "lua result")
}

func TestParseYAML(t *testing.T) {
	for _, name := range []string{"test.yaml", "test.YML"} {
		fileName := writeFile(t, name, yamlText)

		config := testConfiguration{}
		err := configuration.ParseConfigurationFile(fileName, &config)
		require.NoError(t, err, "parse: %s", name)
		assert.Equal(t, expected(), config, "yaml result: %s", name)
	}
}

func TestDefaultsAreKept(t *testing.T) {
	fileName := writeFile(t, "partial.yaml", "check: true\n")

	config := testConfiguration{KeyType: "integer"}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")
	assert.Equal(t, "integer", config.KeyType, "default overwritten")
	assert.True(t, config.Check, "check")
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile("no-such-file.lua", &config)
	assert.Equal(t, fault.ErrNotFoundConfigurationFile, err, "missing file")

	fileName := writeFile(t, "test.toml", "a = 1\n")
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrUnknownConfigurationFormat, err, "unknown extension")

	fileName = writeFile(t, "test.lua", luaText)
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	s := "text"
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	fileName = writeFile(t, "number.lua", "return 42\n")
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrUnsupportedConfigurationRoot, err, "not a table")

	fileName = writeFile(t, "broken.lua", "return {\n")
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Error(t, err, "lua syntax error")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "./x/../log"), "cleaned")
}
