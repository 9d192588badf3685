// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to a configuration structure
//
// the format is selected by the file extension: .lua, .yaml or .yml
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ErrNotFoundConfigurationFile
		}
		return err
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua":
		return parseLua(fileName, config)
	case ".yaml", ".yml":
		return parseYAML(fileName, config)
	default:
		return fault.ErrUnknownConfigurationFormat
	}
}

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
