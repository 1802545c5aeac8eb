// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keyed by int with parent
// pointers and a cursor
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree.  After an insert the
// ancestors are rebalanced by comparing the new key with the key of
// the heavy child; after a delete they are rebalanced using the
// balance factor of the heavy child.
//
// The tree carries a cursor that Search, Insert and Navigate move.
// A Search that misses leaves the cursor on the node below which the
// missing key would attach and a directly following Insert of that
// key links there without descending from the root again.  Any
// Delete resets the cursor to the root.
//
// Delete of a node with two children copies the successor's key and
// value into that node, so a *Node held across a Delete may carry a
// different key afterwards.
package avl
