// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Relative - direction of a cursor move
type Relative int

// cursor moves
const (
	ToRoot Relative = iota
	ToParent
	ToLeftChild
	ToRightChild
)

// String - name of a move
func (rel Relative) String() string {
	switch rel {
	case ToRoot:
		return "root"
	case ToParent:
		return "parent"
	case ToLeftChild:
		return "left"
	case ToRightChild:
		return "right"
	default:
		return "unknown"
	}
}

// Navigate - move the cursor
//
// ToRoot always succeeds, on an empty tree the cursor becomes nil;
// the other moves fail and leave the cursor alone if there is no node
// in that direction
func (tree *Tree[V]) Navigate(rel Relative) bool {
	p, ok := tree.Move(tree.current, rel)
	if ok {
		tree.current = p
	}
	return ok
}

// Move - the node in direction rel from p without touching the cursor
func (tree *Tree[V]) Move(p *Node[V], rel Relative) (*Node[V], bool) {
	if ToRoot == rel {
		return tree.root, true
	}
	if nil == p {
		return nil, false
	}
	var n *Node[V]
	switch rel {
	case ToParent:
		n = p.up
	case ToLeftChild:
		n = p.left
	case ToRightChild:
		n = p.right
	}
	return n, nil != n
}

// Seek - put the cursor on a node previously obtained from this tree
//
// refused if the node is no longer part of the tree
func (tree *Tree[V]) Seek(p *Node[V]) bool {
	if !tree.reachable(p) {
		return false
	}
	tree.current = p
	return true
}
