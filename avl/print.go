// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the height of the tree
func (tree *Tree[V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, tree.current, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[V any](w io.Writer, p *Node[V], cursor *Node[V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, cursor, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	mark := ""
	if p == cursor {
		mark = " *"
	}
	if printData {
		fmt.Fprintf(w, "%d → %v ^%v %+2d/h%d%s\n", p.key, p.value, up, p.Balance(), p.height, mark)
	} else {
		fmt.Fprintf(w, "%d ^%v%s\n", p.key, up, mark)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, cursor, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dot - render the tree as a Graphviz digraph, edges labelled l/r
func (tree *Tree[V]) Dot() string {
	graph := dot.NewGraph(dot.Directed)

	var traverse func(p *Node[V], parent *dot.Node, direction string)
	traverse = func(p *Node[V], parent *dot.Node, direction string) {
		n := graph.Node(fmt.Sprintf("%d", p.key))
		n.Label(fmt.Sprintf("K:%d H:%d", p.key, p.height))
		if p == tree.current {
			n.Attr("style", "bold")
		}
		if nil != parent {
			parent.Edge(n, direction)
		}
		if nil != p.left {
			traverse(p.left, &n, "l")
		}
		if nil != p.right {
			traverse(p.right, &n, "r")
		}
	}
	if nil != tree.root {
		traverse(tree.root, nil, "")
	}
	return graph.String()
}
