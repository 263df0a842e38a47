// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - removes a specific item from the tree without rebalancing
//
// returns the removed value and true, or nil and false if key was
// not present
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	z := tree.Find(key)
	if nil == z {
		return nil, false
	}

	if nil != z.left && nil != z.right {
		tree.NodeSwap(z, Predecessor(z))
	}
	tree.splice(z)

	value := z.value
	tree.Release(z)
	return value, true
}

// replace a node having at most one child by that child
func (tree *Tree) splice(z *Node) {
	child := z.left
	if nil == child {
		child = z.right
	}
	if nil != child {
		child.up = z.up
	}
	tree.ReplaceChild(z.up, z, child)
}

// ReplaceChild - make parent link to node where it linked to old,
// a nil parent means node becomes the root
func (tree *Tree) ReplaceChild(parent *Node, old *Node, node *Node) {
	switch {
	case nil == parent:
		tree.root = node
	case parent.left == old:
		parent.left = node
	default:
		parent.right = node
	}
}
