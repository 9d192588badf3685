// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// keys used by the demo command, the sequence from the classic
// rotation example
var demoKeys = []string{"10", "20", "30", "40", "50", "25"}

const demoRemove = "30"

// session - one tree and the settings applied to each command
type session struct {
	tree       *avl.Tree
	parse      keyParser
	report     reporter
	log        *logger.L
	checkEvery bool
	stress     StressType
	progress   io.Writer // nil for no progress bar
}

func newSession(tree *avl.Tree, parse keyParser, report reporter, log *logger.L, config *Configuration) *session {
	return &session{
		tree:       tree,
		parse:      parse,
		report:     report,
		log:        log,
		checkEvery: config.CheckEveryOperation,
		stress:     config.Stress,
	}
}

// run a single command with its arguments
func (s *session) run(command string, arguments []string) error {

	s.log.Debugf("command: %s  arguments: %q", command, arguments)

	switch command {
	case "insert", "add", "i":
		return s.eachKey(command, arguments, func(key avl.Item) {
			added := s.tree.Insert(key)
			s.log.Tracef("insert: %v  added: %t  count: %d", key, added, s.tree.Count())
			s.report.Added(key, added)
		})

	case "remove", "delete", "d":
		return s.eachKey(command, arguments, func(key avl.Item) {
			removed := s.tree.Delete(key)
			s.log.Tracef("remove: %v  removed: %t  count: %d", key, removed, s.tree.Count())
			s.report.Removed(key, removed)
		})

	case "contains", "c":
		if 0 == len(arguments) {
			return fmt.Errorf("%w: %s", fault.ErrMissingArguments, command)
		}
		for _, a := range arguments {
			key, err := s.parse(a)
			if nil != err {
				return err
			}
			s.report.Contains(key, s.tree.Contains(key))
		}

	case "inorder", "in":
		s.report.Keys("in-order", s.tree.Keys())

	case "preorder", "pre":
		s.report.Keys("pre-order", s.tree.PreOrderKeys())

	case "print", "p":
		s.report.Tree(s.tree)

	case "height":
		s.report.Value("height", s.tree.Height())

	case "count", "n":
		s.report.Value("count", s.tree.Count())

	case "check":
		err := s.check()
		s.report.Checked(err)
		return err

	case "demo":
		return s.demo()

	case "script":
		if 1 != len(arguments) {
			return fmt.Errorf("%w: %s FILE", fault.ErrMissingArguments, command)
		}
		return s.runScriptFile(arguments[0])

	case "stress":
		return s.runStress(arguments)

	default:
		return fmt.Errorf("%w: %q", fault.ErrNoSuchCommand, command)
	}
	return nil
}

// parse all keys first so that a bad key leaves the tree unchanged
func (s *session) eachKey(command string, arguments []string, f func(avl.Item)) error {
	if 0 == len(arguments) {
		return fmt.Errorf("%w: %s", fault.ErrMissingArguments, command)
	}

	keys := make([]avl.Item, 0, len(arguments))
	for _, a := range arguments {
		key, err := s.parse(a)
		if nil != err {
			return err
		}
		keys = append(keys, key)
	}

	for _, key := range keys {
		f(key)
		if s.checkEvery {
			if err := s.check(); nil != err {
				fault.Criticalf("%s: %v: %s", command, key, err)
				return err
			}
		}
	}
	return nil
}

func (s *session) check() error {
	if err := s.tree.Check(); nil != err {
		return err
	}
	return s.tree.CheckHeightBound()
}

// insert the demo keys, show both traversals, remove one key and show
// the traversals again
func (s *session) demo() error {
	steps := []struct {
		command   string
		arguments []string
	}{
		{"insert", demoKeys},
		{"inorder", nil},
		{"preorder", nil},
		{"remove", []string{demoRemove}},
		{"inorder", nil},
		{"preorder", nil},
	}
	for _, step := range steps {
		if err := s.run(step.command, step.arguments); nil != err {
			return err
		}
	}
	return nil
}

// print usage
func printHelp(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")
	fmt.Fprintf(w, "  insert KEY...              (i)      - add keys, duplicates are ignored\n\n")
	fmt.Fprintf(w, "  remove KEY...              (d)      - remove keys, absent keys are ignored\n\n")
	fmt.Fprintf(w, "  contains KEY...            (c)      - show whether keys are present\n\n")
	fmt.Fprintf(w, "  inorder                    (in)     - list keys in ascending order\n\n")
	fmt.Fprintf(w, "  preorder                   (pre)    - list keys in pre-order\n\n")
	fmt.Fprintf(w, "  print                      (p)      - draw the tree\n\n")
	fmt.Fprintf(w, "  height                              - show tree height\n\n")
	fmt.Fprintf(w, "  count                      (n)      - show number of keys\n\n")
	fmt.Fprintf(w, "  check                               - verify balance, order and height bound\n\n")
	fmt.Fprintf(w, "  demo                                - insert %v then remove %s\n\n", demoKeys, demoRemove)
	fmt.Fprintf(w, "  script FILE|-                       - run one command per line\n\n")
	fmt.Fprintf(w, "  stress [OPS [RANGE [SEED]]]         - random inserts and removes, checked after each\n\n")
}

// handle commands that do not need a tree
// returns true if the command was processed
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		printHelp(os.Stdout, program)

	default:
		return false
	}
	return true
}
