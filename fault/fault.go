// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrBalanceViolation             = InvariantError("subtree heights differ by more than one")
	ErrCountMismatch                = InvariantError("node count does not match reachable nodes")
	ErrHeightBoundExceeded          = InvariantError("tree height exceeds AVL bound")
	ErrHeightMismatch               = InvariantError("cached height differs from computed height")
	ErrInvalidKey                   = InvalidError("invalid key")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidOperationCount        = InvalidError("invalid operation count")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrMissingArguments             = InvalidError("missing arguments")
	ErrNoSuchCommand                = NotFoundError("no such command")
	ErrNotADirectory                = InvalidError("path is not a directory")
	ErrNotFoundConfigurationFile    = NotFoundError("configuration file is not found")
	ErrNotPlainFileName             = InvalidError("file is not a plain name")
	ErrOrderViolation               = InvariantError("keys are not in strictly ascending order")
	ErrRotationPrecondition         = ProcessError("rotation pivot is missing")
	ErrScriptLine                   = ProcessError("script line failed")
	ErrUnknownConfigurationFormat   = InvalidError("unknown configuration format")
	ErrUnsupportedConfigurationRoot = InvalidError("configuration did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, including errors that wrap one
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrInvariant(e error) bool { var x InvariantError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
