// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stressResult struct {
	operations    int
	seed          int64
	inserted      int
	duplicates    int
	removed       int
	absent        int
	count         int
	maximumHeight int
}

// stress [operations [key-range [seed]]]
func (s *session) runStress(arguments []string) error {
	options := s.stress

	if len(arguments) > 3 {
		return fmt.Errorf("%w: stress [operations [key-range [seed]]]", fault.ErrMissingArguments)
	}
	values := []*int{&options.Operations, &options.KeyRange}
	for i, a := range arguments {
		n, err := strconv.ParseInt(a, 10, 64)
		if nil != err {
			return fmt.Errorf("%w: %q", fault.ErrInvalidOperationCount, a)
		}
		if i < len(values) {
			*values[i] = int(n)
		} else {
			options.Seed = n
		}
	}

	if 0 == options.Seed {
		options.Seed = time.Now().UnixNano()
	}

	result, err := stress(options, s.progress)
	if nil != err {
		fault.Criticalf("stress: seed: %d  error: %s", options.Seed, err)
		return err
	}

	s.log.Infof("stress: %+v", result)
	s.report.Stressed(result)
	return nil
}

// apply random inserts and deletes of integer keys to a fresh tree,
// checking every invariant and the height bound after each one
func stress(options StressType, progress io.Writer) (stressResult, error) {

	result := stressResult{
		operations: options.Operations,
		seed:       options.Seed,
	}

	if options.Operations <= 0 || options.KeyRange <= 0 {
		return result, fmt.Errorf("%w: operations: %d  key range: %d", fault.ErrInvalidOperationCount, options.Operations, options.KeyRange)
	}

	var bar *progressbar.ProgressBar
	if nil != progress {
		bar = progressbar.NewOptions(options.Operations,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("stress"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n")
			}),
		)
	}

	r := rand.New(rand.NewSource(options.Seed))
	tree := avl.New()

	for i := 0; i < options.Operations; i += 1 {
		key := integerKey(r.Intn(options.KeyRange))

		// bias towards insertion so the tree grows
		if 0 == r.Intn(3) {
			if tree.Delete(key) {
				result.removed += 1
			} else {
				result.absent += 1
			}
		} else {
			if tree.Insert(key) {
				result.inserted += 1
			} else {
				result.duplicates += 1
			}
		}

		if err := tree.Check(); nil != err {
			return result, fmt.Errorf("operation: %d  key: %v  %w", i, key, err)
		}
		if err := tree.CheckHeightBound(); nil != err {
			return result, fmt.Errorf("operation: %d  key: %v  %w", i, key, err)
		}
		if h := tree.Height(); h > result.maximumHeight {
			result.maximumHeight = h
		}

		if nil != bar {
			_ = bar.Add(1)
		}
	}

	result.count = tree.Count()
	return result, nil
}
