// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package list - a circular singly linked sequence with a cursor
//
// Elements are always inserted immediately after the cursor, so a
// series of inserts into a fresh list appends in order.  The cursor
// is the only way to read or change an element.
//
// Cursor reads and writes on an empty list are programming errors
// and panic with fault.ErrEmptyList.
//
// Note: a list is not thread safe.
package list
