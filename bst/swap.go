// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// NodeSwap - exchange the positions of two nodes in the tree
//
// each node keeps its own key and value, all links move, so a node
// pointer held by a caller stays attached to its key.  Balance
// fields are not exchanged.  Handles one node being the direct child
// of the other.
func (tree *Tree) NodeSwap(n1 *Node, n2 *Node) {
	if nil == n1 || nil == n2 || n1 == n2 {
		return
	}

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	n1IsLeft := nil != p1 && p1.left == n1
	n2IsLeft := nil != p2 && p2.left == n2

	n1.up, n1.left, n1.right = p2, l2, r2
	n2.up, n2.left, n2.right = p1, l1, r1

	// adjacent nodes would now point at themselves
	if p2 == n1 {
		n1.up = n2
		if l1 == n2 {
			n2.left = n1
		} else {
			n2.right = n1
		}
	} else if p1 == n2 {
		n2.up = n1
		if l2 == n1 {
			n1.left = n2
		} else {
			n1.right = n2
		}
	}

	// children point back to their new parents
	for _, p := range []*Node{n1, n2} {
		if nil != p.left {
			p.left.up = p
		}
		if nil != p.right {
			p.right.up = p
		}
	}

	// former parents point down to the exchanged nodes
	if nil == n1.up {
		tree.root = n1
	} else if n1.up != n2 {
		if n2IsLeft {
			n1.up.left = n1
		} else {
			n1.up.right = n1
		}
	}
	if nil == n2.up {
		tree.root = n2
	} else if n2.up != n1 {
		if n1IsLeft {
			n2.up.left = n2
		} else {
			n2.up.right = n2
		}
	}
}
