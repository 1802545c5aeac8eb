// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[V]) First() *Node[V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[V]) first() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[V]) Last() *Node[V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[V]) last() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[V]) Next() *Node[V] {
	if nil != p.right {
		return p.right.first()
	}
	key := p.key
	for {
		p = p.up
		if nil == p {
			return nil
		}
		if p.key > key {
			return p
		}
	}
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[V]) Prev() *Node[V] {
	if nil != p.left {
		return p.left.last()
	}
	key := p.key
	for {
		p = p.up
		if nil == p {
			return nil
		}
		if p.key < key {
			return p
		}
	}
}
