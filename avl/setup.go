// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a single entry
type Node[V any] struct {
	left   *Node[V]
	right  *Node[V]
	up     *Node[V]
	key    int
	value  V
	height int
}

// Tree - type to hold the root node of a tree and its cursor
type Tree[V any] struct {
	root    *Node[V]
	current *Node[V]
	count   int

	// set by a search miss: the node the missing key attaches below
	hint    *Node[V]
	hintKey int

	// number of searches started from root
	descents int
}

// New - create an initially empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[V]) Size() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Current - the node at the cursor, nil if there is none
func (tree *Tree[V]) Current() *Node[V] {
	return tree.current
}

// Retrieve - value at the cursor
func (tree *Tree[V]) Retrieve() (V, bool) {
	if nil == tree.current {
		var zero V
		return zero, false
	}
	return tree.current.value, true
}

// Key - read the key from a node item
func (p *Node[V]) Key() int {
	return p.key
}

// Value - read the value from a node item
func (p *Node[V]) Value() V {
	return p.value
}

// Height - height of the sub-tree rooted here, a leaf is 1
func (p *Node[V]) Height() int {
	return height(p)
}

// Balance - left height minus right height
func (p *Node[V]) Balance() int {
	return height(p.left) - height(p.right)
}

// Parent - return parent node of a node
func (p *Node[V]) Parent() *Node[V] {
	return p.up
}

// Left - return the left child
func (p *Node[V]) Left() *Node[V] {
	return p.left
}

// Right - return the right child
func (p *Node[V]) Right() *Node[V] {
	return p.right
}

// Depth - get the depth of a node, root is zero
func (p *Node[V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// height of a possibly empty sub-tree
func height[V any](p *Node[V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node[V]) fix() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// number of nodes in a sub-tree
func (p *Node[V]) size() int {
	if nil == p {
		return 0
	}
	return 1 + p.left.size() + p.right.size()
}

// point parent's link to old at n instead
func (tree *Tree[V]) relink(parent *Node[V], old *Node[V], n *Node[V]) {
	if nil != n {
		n.up = parent
	}
	switch {
	case nil == parent:
		tree.root = n
	case parent.left == old:
		parent.left = n
	default:
		parent.right = n
	}
}

// true if p is in this tree
func (tree *Tree[V]) reachable(p *Node[V]) bool {
	if nil == p {
		return false
	}
	for nil != p.up {
		p = p.up
	}
	return p == tree.root
}
