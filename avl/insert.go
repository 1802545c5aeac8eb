// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns false and leaves the tree unchanged if key is already
// present, otherwise the cursor is left on the new node
func (tree *Tree[V]) Insert(key int, value V) bool {
	parent, ok := tree.attachPoint(key)
	tree.hint = nil
	if !ok {
		return false
	}

	p := &Node[V]{
		key:    key,
		value:  value,
		up:     parent,
		height: 1,
	}
	switch {
	case nil == parent:
		tree.root = p
	case key < parent.key:
		parent.left = p
	default:
		parent.right = p
	}
	tree.count += 1

	tree.rebalanceInsert(parent, key)
	tree.current = p
	return true
}

// Update - replace the entry at the cursor with a new key and value
//
// the old entry is removed first, so if newKey belongs to a different
// entry the insert is refused and false is returned with the old
// entry gone
func (tree *Tree[V]) Update(newKey int, value V) bool {
	if nil == tree.current {
		return false
	}
	tree.Delete(tree.current.key)
	return tree.Insert(newKey, value)
}
