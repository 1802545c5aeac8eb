// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// Check - verify the structure of the tree
//
// returns the first problem found: wrong parent link, out of order
// key, stale height, balance outside -1..+1, count disagreeing with
// the nodes present or a cursor that is not in the tree
func (tree *Tree[V]) Check() error {
	n, err := check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	if nil != tree.current && !tree.reachable(tree.current) {
		return fault.ErrCursorDetached
	}
	return nil
}

// internal: consistency checker, lo and hi are exclusive key bounds
// returns the number of nodes in the sub-tree
func check[V any](p *Node[V], up *Node[V], lo *int, hi *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fault.ErrParentLink
	}
	if (nil != lo && p.key <= *lo) || (nil != hi && p.key >= *hi) {
		return 0, fault.ErrKeyOrder
	}
	nl, err := check(p.left, p, lo, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p, &p.key, hi)
	if nil != err {
		return 0, err
	}
	hl := height(p.left)
	hr := height(p.right)
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if p.height != h {
		return 0, fault.ErrHeightMismatch
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, fault.ErrBalanceViolation
	}
	return 1 + nl + nr, nil
}
