// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a new node, or overwrite the value of an existing key
//
// no rebalancing is done; returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	p, parent := tree.locate(key)
	if nil != p {
		p.value = value
		return false
	}

	n := tree.NewNode(key, value, parent)
	tree.Attach(parent, n)
	return true
}

// Attach - link an unlinked node below parent on the side selected
// by key order, or as the root when parent is nil
func (tree *Tree) Attach(parent *Node, node *Node) {
	node.up = parent
	switch {
	case nil == parent:
		tree.root = node
	case parent.key.Compare(node.key) > 0:
		parent.left = node
	default:
		parent.right = node
	}
}
