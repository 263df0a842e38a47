// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
//
// the zero value is an empty tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// SetRoot - make node the root; its parent link is cleared
func (tree *Tree) SetRoot(node *Node) {
	tree.root = node
	if nil != node {
		node.up = nil
	}
}

// NewNode - allocate a node that will belong to this tree
//
// only the new node's parent link is set, the caller must link it
// from the parent (or make it the root)
func (tree *Tree) NewNode(key Item, value interface{}, parent *Node) *Node {
	tree.count += 1
	return newNode(key, value, parent)
}

// Release - return a node that has already been unlinked from this
// tree to the allocator
func (tree *Tree) Release(node *Node) {
	tree.count -= 1
	freeNode(node)
}
