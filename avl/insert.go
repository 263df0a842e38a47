// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// if the key is already present
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if tree.IsEmpty() {
		tree.SetRoot(tree.NewNode(key, value, nil))
		updateHeightAndBalance(tree.Root())
		return true
	}

	var parent *Node
	p := tree.Root()
	for nil != p {
		parent = p
		c := p.Key().Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.Left()
		case c < 0: // p.key < key
			p = p.Right()
		default:
			p.SetValue(value)
			return false
		}
	}

	node := tree.NewNode(key, value, parent)
	if parent.Key().Compare(key) > 0 {
		parent.SetLeft(node)
	} else {
		parent.SetRight(node)
	}

	tree.rebalance(parent)
	updateHeightAndBalance(tree.Root())
	return true
}
