// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a key from the tree
//
// returns true if the key was present; the cursor is reset to the
// root in either case
func (tree *Tree[V]) Delete(key int) bool {
	tree.hint = nil
	p, _ := tree.descend(key)
	if nil == p {
		tree.current = tree.root
		return false
	}

	// two children: take over the successor and remove that instead
	if nil != p.left && nil != p.right {
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p = s
	}

	child := p.left
	if nil == child {
		child = p.right
	}
	parent := p.up
	tree.relink(parent, p, child)
	p.up = nil
	p.left = nil
	p.right = nil
	tree.count -= 1

	tree.rebalanceDelete(parent)
	tree.current = tree.root
	return true
}
