// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// DetachCurrentSubtree - cut the sub-tree rooted at the cursor out of
// the tree and return it as a separate tree
//
// returns nil if there is no cursor.  The cursor is reset to the root
// which is nil if the whole tree was detached.  Ancestors of the cut
// are rebuilt where the removal left them out of balance.
func (tree *Tree[V]) DetachCurrentSubtree() *Tree[V] {
	p := tree.current
	if nil == p {
		return nil
	}
	tree.hint = nil

	parent := p.up
	tree.relink(parent, p, nil)
	p.up = nil

	n := p.size()
	tree.count -= n

	for a := parent; nil != a; a = a.up {
		a.fix()
		if b := a.Balance(); b > 1 || b < -1 {
			a = tree.rebuild(a)
		}
	}
	tree.current = tree.root

	return &Tree[V]{
		root:    p,
		current: p,
		count:   n,
	}
}

// replace a sub-tree by a perfectly balanced one made of the same nodes
func (tree *Tree[V]) rebuild(p *Node[V]) *Node[V] {
	parent := p.up
	nodes := make([]*Node[V], 0, p.size())
	nodes = collect(p, nodes)
	r := build(nodes, parent)
	tree.relink(parent, p, r)
	return r
}

// in-order list of a sub-tree's nodes
func collect[V any](p *Node[V], nodes []*Node[V]) []*Node[V] {
	if nil == p {
		return nodes
	}
	nodes = collect(p.left, nodes)
	nodes = append(nodes, p)
	return collect(p.right, nodes)
}

// link sorted nodes into a balanced sub-tree
func build[V any](nodes []*Node[V], up *Node[V]) *Node[V] {
	if 0 == len(nodes) {
		return nil
	}
	m := len(nodes) / 2
	p := nodes[m]
	p.up = up
	p.left = build(nodes[:m], p)
	p.right = build(nodes[m+1:], p)
	p.fix()
	return p
}
