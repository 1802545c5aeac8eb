// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/list"
)

// RangeQuery - values with min <= key <= max in ascending key order
//
// sub-trees that cannot hold keys in range are not visited
func (tree *Tree[V]) RangeQuery(min int, max int) *list.List[V] {
	result := list.New[V]()
	rangeQuery(tree.root, min, max, result)
	return result
}

func rangeQuery[V any](p *Node[V], min int, max int, result *list.List[V]) {
	if nil == p {
		return
	}
	if p.key > min {
		rangeQuery(p.left, min, max, result)
	}
	if min <= p.key && p.key <= max {
		result.Insert(p.value)
	}
	if p.key < max {
		rangeQuery(p.right, min, max, result)
	}
}

// InOrderTraversal - all values in ascending key order
func (tree *Tree[V]) InOrderTraversal() *list.List[V] {
	result := list.New[V]()
	for p := tree.First(); nil != p; p = p.Next() {
		result.Insert(p.value)
	}
	return result
}

// SortedKeys - all keys in ascending order
func (tree *Tree[V]) SortedKeys() *list.List[int] {
	result := list.New[int]()
	for p := tree.First(); nil != p; p = p.Next() {
		result.Insert(p.key)
	}
	return result
}

// Min - value with the lowest key
func (tree *Tree[V]) Min() (V, bool) {
	return valueOf(tree.First())
}

// Max - value with the highest key
func (tree *Tree[V]) Max() (V, bool) {
	return valueOf(tree.Last())
}

func valueOf[V any](p *Node[V]) (V, bool) {
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}
