// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file, or current directory

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStressOperations = 10000
	defaultStressKeyRange   = 1000
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time so that decoding cannot alter the defaults
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

type LoggerType struct {
	Directory string      `gluamapper:"directory" yaml:"directory"`
	File      string      `gluamapper:"file" yaml:"file"`
	Size      int         `gluamapper:"size" yaml:"size"`
	Count     int         `gluamapper:"count" yaml:"count"`
	Console   bool        `gluamapper:"console" yaml:"console"`
	Levels    LoglevelMap `gluamapper:"levels" yaml:"levels"`
}

type StressType struct {
	Operations int   `gluamapper:"operations" yaml:"operations"`
	KeyRange   int   `gluamapper:"key_range" yaml:"key_range"`
	Seed       int64 `gluamapper:"seed" yaml:"seed"`
	Progress   bool  `gluamapper:"progress" yaml:"progress"`
}

type Configuration struct {
	DataDirectory       string     `gluamapper:"data_directory" yaml:"data_directory"`
	KeyType             string     `gluamapper:"key_type" yaml:"key_type"`
	InitialKeys         []string   `gluamapper:"initial_keys" yaml:"initial_keys"`
	CheckEveryOperation bool       `gluamapper:"check_every_operation" yaml:"check_every_operation"`
	Stress              StressType `gluamapper:"stress" yaml:"stress"`
	Logging             LoggerType `gluamapper:"logging" yaml:"logging"`
}

// will read decode and verify the configuration
// an empty file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory:       defaultDataDirectory,
		KeyType:             integerKeyType,
		InitialKeys:         nil,
		CheckEveryOperation: false,

		Stress: StressType{
			Operations: defaultStressOperations,
			KeyRange:   defaultStressKeyRange,
			Seed:       0, // zero selects a time based seed
			Progress:   true,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels(),
		},
	}

	// absolute path to the main directory
	baseDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if _, err := newKeyParser(options.KeyType); nil != err {
		return nil, fmt.Errorf("%w: %q", err, options.KeyType)
	}

	if options.Stress.Operations <= 0 || options.Stress.KeyRange <= 0 {
		return nil, fmt.Errorf("%w: operations: %d  key range: %d", fault.ErrInvalidOperationCount, options.Stress.Operations, options.Stress.KeyRange)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = configuration.EnsureAbsolute(baseDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	}

	// log file must not contain a path separator
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrNotPlainFileName, options.Logging.File)
	}

	// make absolute and create directory if it does not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// convert to the logger's own structure
func (l LoggerType) loggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    l.Levels,
	}
}
