// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single right rotation: p's left child replaces p
// returns the new sub-tree root
func (tree *Tree[V]) rotateRight(p *Node[V]) *Node[V] {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.relink(p.up, p, p1)
	p1.right = p
	p.up = p1

	p.fix()
	p1.fix()
	return p1
}

// single left rotation: p's right child replaces p
// returns the new sub-tree root
func (tree *Tree[V]) rotateLeft(p *Node[V]) *Node[V] {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.relink(p.up, p, p1)
	p1.left = p
	p.up = p1

	p.fix()
	p1.fix()
	return p1
}

// rebalance from p to the root after inserting key
func (tree *Tree[V]) rebalanceInsert(p *Node[V], key int) {
	for ; nil != p; p = p.up {
		p.fix()
		b := p.Balance()
		switch {
		case b > 1 && key < p.left.key: // LL
			p = tree.rotateRight(p)
		case b < -1 && key > p.right.key: // RR
			p = tree.rotateLeft(p)
		case b > 1 && key > p.left.key: // LR
			tree.rotateLeft(p.left)
			p = tree.rotateRight(p)
		case b < -1 && key < p.right.key: // RL
			tree.rotateRight(p.right)
			p = tree.rotateLeft(p)
		}
	}
}

// rebalance from p to the root after a node below it was removed
func (tree *Tree[V]) rebalanceDelete(p *Node[V]) {
	for ; nil != p; p = p.up {
		p.fix()
		b := p.Balance()
		switch {
		case b > 1 && p.left.Balance() >= 0: // LL
			p = tree.rotateRight(p)
		case b > 1: // LR
			tree.rotateLeft(p.left)
			p = tree.rotateRight(p)
		case b < -1 && p.right.Balance() <= 0: // RR
			p = tree.rotateLeft(p)
		case b < -1: // RL
			tree.rotateRight(p.right)
			p = tree.rotateLeft(p)
		}
	}
}
