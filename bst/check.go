// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkUp(p.left, p) && checkUp(p.right, p)
}

// CheckOrder - check that an in-order walk yields strictly
// increasing keys and that the count matches
func (tree *Tree) CheckOrder() bool {
	ok := true
	n := 0
	var previous *Node
	tree.InOrder(func(node *Node) bool {
		if nil != previous && previous.key.Compare(node.key) >= 0 {
			ok = false
			return false
		}
		previous = node
		n += 1
		return true
	})
	return ok && n == tree.count
}

// Height - height of the tree, an empty tree has height zero
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// Height - height of a sub-tree: nil is 0 and a leaf is 1
func Height(p *Node) int {
	if nil == p {
		return 0
	}
	hl := Height(p.left)
	hr := Height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}
