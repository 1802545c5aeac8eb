// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceViolation      = InvalidError("balance factor out of range")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("entry count does not match tree contents")
	ErrCursorDetached        = InvalidError("cursor is not reachable from root")
	ErrCustomerExists        = ExistsError("customer already exists")
	ErrCustomerNotFound      = NotFoundError("customer not found")
	ErrEmptyList             = InvalidError("cursor operation on empty list")
	ErrHeightMismatch        = InvalidError("cached height is incorrect")
	ErrInvalidDate           = RecordError("invalid date")
	ErrInvalidFieldCount     = RecordError("invalid field count")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNumber         = RecordError("invalid number")
	ErrInvalidPrice          = InvalidError("invalid price")
	ErrInvalidRating         = InvalidError("rating must be between 1 and 5")
	ErrInvalidStock          = InvalidError("invalid stock")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyOrder              = InvalidError("key out of search order")
	ErrMissingDataDirectory  = NotFoundError("data directory is not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrOrderExists           = ExistsError("order already exists")
	ErrOrderNotFound         = NotFoundError("order not found")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrProductExists         = ExistsError("product already exists")
	ErrProductNotFound       = NotFoundError("product not found")
	ErrRenumberFailed        = ProcessError("renumber failed")
	ErrReviewExists          = ExistsError("review already exists")
	ErrReviewNotFound        = NotFoundError("review not found")
	ErrUnknownCommand        = InvalidError("unknown command")
	ErrUnknownIndex          = NotFoundError("unknown index")
	ErrWrongArgumentCount    = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
