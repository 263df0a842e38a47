// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBalanceFactor           = InvalidError("balance factor out of range")
	ErrBalanceMismatch         = InvalidError("stored balance does not match subtree heights")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet        = NotFoundError("database is not set")
	ErrInvalidCommand          = InvalidError("invalid command")
	ErrInvalidDataDirectory    = InvalidError("invalid data directory")
	ErrInvalidKey              = InvalidError("invalid key")
	ErrInvalidKeyEncoding      = InvalidError("invalid key encoding")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidPrefix           = InvalidError("prefix must be a single character")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyNotFound             = NotFoundError("key not found")
	ErrKeyOrder                = InvalidError("keys are not in ascending order")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotPlainFileName        = InvalidError("not a plain file name")
	ErrParentLink              = InvalidError("parent link is inconsistent")
	ErrWatchedFileDoesNotExist = NotFoundError("watched file does not exist")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
