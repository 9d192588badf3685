// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/avltree/fault"
)

// "-" reads from standard input
func (s *session) runScriptFile(fileName string) error {
	if "-" == fileName {
		return s.runScript(os.Stdin)
	}

	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	return s.runScript(f)
}

// execute one command per line, blank lines and lines starting with
// '#' are skipped; stops at the first failing line
//
// words are split with shell quoting rules so a string key may
// contain spaces: insert "two words"
func (s *session) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1

		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := shellwords.Parse(line)
		switch {
		case nil != err:
		case 0 == len(fields):
			continue
		case "script" == fields[0]:
			err = fmt.Errorf("%w: %q cannot be nested", fault.ErrNoSuchCommand, fields[0])
		default:
			err = s.run(fields[0], fields[1:])
		}
		if nil != err {
			s.log.Errorf("line: %d  %q  error: %s", lineNumber, line, err)
			return fmt.Errorf("%w: line: %d  %w", fault.ErrScriptLine, lineNumber, err)
		}
	}
	return scanner.Err()
}
