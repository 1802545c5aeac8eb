// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key
//
// on a hit the cursor moves to the matching node; on a miss it is
// left on the last node visited, the parent an insert of key would
// attach to
func (tree *Tree[V]) Search(key int) (V, bool) {
	p, last := tree.descend(key)
	if nil != p {
		tree.current = p
		tree.hint = nil
		return p.value, true
	}
	tree.current = last
	tree.hint = last
	tree.hintKey = key
	var zero V
	return zero, false
}

// walk down from root, returns the match or nil and the last node visited
func (tree *Tree[V]) descend(key int) (*Node[V], *Node[V]) {
	tree.descents += 1
	var last *Node[V]
	p := tree.root
	for nil != p {
		last = p
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p, last
		}
	}
	return nil, last
}

// parent for a new key: the hint left by the preceding search miss
// if it still has a free slot on the correct side
func (tree *Tree[V]) attachPoint(key int) (*Node[V], bool) {
	if p := tree.hint; nil != p && key == tree.hintKey {
		if (key < p.key && nil == p.left) || (key > p.key && nil == p.right) {
			return p, true
		}
	}
	match, last := tree.descend(key)
	if nil != match {
		return nil, false
	}
	return last, true
}
